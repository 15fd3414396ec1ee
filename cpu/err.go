package cpu

import (
	"errors"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrUnknownCommand = errors.New(f("unknown command"))
	ErrStopped        = errors.New(f("competitor stopped"))

	// Program errors
	ErrProgramFormat = errors.New(f("The AI commands do not match the required format."))
	ErrProgramEmpty  = errors.New(f("program empty"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
)

// ErrOpcode reports the cell that could not be executed.
type ErrOpcode core.Cell

func (eo ErrOpcode) Error() string {
	return f("Command '%v' not found", core.Cell(eo).Opcode)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrOpcodeInvalid reports an unknown opcode name in program text.
type ErrOpcodeInvalid string

func (err ErrOpcodeInvalid) Error() string {
	return f("There is no AI command named '%v'.", string(err))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a 32-bit integer", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
