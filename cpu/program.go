package cpu

import (
	"slices"

	"github.com/ezrec/codefight/core"
)

// Program is the source code of a competitor.
type Program struct {
	Name string
	Code []core.Cell
}

// NewProgram creates a program from a copy of the code.
func NewProgram(name string, code []core.Cell) *Program {
	return &Program{
		Name: name,
		Code: slices.Clone(code),
	}
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Code)
}

// Fits returns true if two instances of a program of count instructions
// could share a core of the given size without overlapping.
func Fits(count int, size int) bool {
	return count-1 <= size/2
}

// Fits returns true if two instances of the program could share a core of
// the given size without overlapping.
func (prog *Program) Fits(size int) bool {
	return Fits(len(prog.Code), size)
}
