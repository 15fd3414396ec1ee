package cpu

import (
	"github.com/ezrec/codefight/core"
)

// IP_STOPPED is the instruction pointer of a competitor that executed STOP.
const IP_STOPPED = int64(-1)

// Competitor is the per-match state of one running program.
type Competitor struct {
	Verbose bool // If set, logs every executed instruction.

	Name    string       // Display name, unique within the match.
	Program *Program     // Shared, read-only.
	Symbols core.Symbols // Display tags stamped on written cells.

	Ip    int64  // Current instruction pointer.
	Alive bool   // Cleared by STOP.
	Steps uint32 // Executed instructions, including the final STOP.
}

// NewCompetitor creates a live competitor for a program.
func NewCompetitor(name string, prog *Program, sym core.Symbols) *Competitor {
	return &Competitor{
		Name:    name,
		Program: prog,
		Symbols: sym,
		Alive:   true,
	}
}

// Position returns the instruction pointer resolved into the core,
// or -1 once the competitor has stopped.
func (comp *Competitor) Position(cr *core.Core) int {
	if !comp.Alive {
		return -1
	}

	return cr.Resolve(comp.Ip)
}
