package shell

import (
	"errors"

	"github.com/ezrec/codefight/emulator"
	"github.com/ezrec/codefight/translate"
)

var f = translate.From

var (
	ErrNumber       = errors.New(f("The specified number must be an integer."))
	ErrCellIndex    = errors.New(f("The given memory cell index either exceeds the memory size or is negative."))
	ErrAiInactive   = errors.New(f("AI with this name is not active and therefore the status cannot be displayed."))
	ErrAiUnknown    = errors.New(f("There is at least one name that does not correspond to a registered AI."))
	ErrAiNotRemoved = errors.New(f("AI with this name is not registered and therefore cannot be removed."))
)

// ErrCommandMissing reports an unknown shell command.
type ErrCommandMissing string

func (err ErrCommandMissing) Error() string {
	return f("Command '%v' not found", string(err))
}

// ErrArgumentCount reports a command given the wrong number of arguments.
type ErrArgumentCount string

func (err ErrArgumentCount) Error() string {
	return f("wrong number of arguments for command '%v'!", string(err))
}

// ErrInitModeArgs reports a seed given to, or missing from, an init mode.
type ErrInitModeArgs string

func (err ErrInitModeArgs) Error() string {
	return f("Wrong number of arguments for initialisation mode '%v'!", string(err))
}

// ErrPhase reports a command used outside of its game phase.
type ErrPhase emulator.Phase

func (err ErrPhase) Error() string {
	return f("The game is not in the %v phase", emulator.Phase(err))
}

func (err ErrPhase) Unwrap() error {
	return emulator.ErrPhase
}
