// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package core

import (
	"fmt"
)

// Symbols is the pair of display tags owned by one competitor.
type Symbols struct {
	Standard string // Tag for ordinary cells.
	Bomb     string // Tag for cells that halt or trap whoever runs them.
}

// Cell is a single instruction slot of the core.
// Cells are plain values; the core never hands out references to its own.
type Cell struct {
	Opcode Opcode
	A      int32  // First operand.
	B      int32  // Second operand.
	Owner  string // Display tag of the last writer, empty if untouched.
}

// IsBomb returns true for STOP, a JMP to itself, or a JMZ to itself
// that tests itself.
func (cell Cell) IsBomb() bool {
	switch cell.Opcode {
	case OP_STOP:
		return true
	case OP_JMP:
		return cell.A == 0
	case OP_JMZ:
		return cell.A == 0 && cell.B == 0
	}

	return false
}

// Stamp returns a copy of the cell owned by the symbol pair.
func (cell Cell) Stamp(sym Symbols) Cell {
	if cell.IsBomb() {
		cell.Owner = sym.Bomb
	} else {
		cell.Owner = sym.Standard
	}

	return cell
}

// String returns the cell as NAME|A|B.
func (cell Cell) String() string {
	return fmt.Sprintf("%v|%d|%d", cell.Opcode, cell.A, cell.B)
}
