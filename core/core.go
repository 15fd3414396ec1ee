// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package core implements the circular memory shared by all competitors.
//
// Every address handed to the core is an arbitrary signed offset; the core
// resolves it into [0, size) with floor modulo, so callers never deal with
// wraparound themselves.
package core

import (
	"iter"
	"log"
	"math/rand"
	"slices"

	"github.com/ezrec/codefight/internal"
)

// Core is a fixed-size circular array of cells.
type Core struct {
	Verbose bool // If set, logs initialization.

	cell []Cell
}

// NewCore creates a new core filled with STOP cells.
func NewCore(size uint) (cr *Core) {
	if size == 0 {
		panic("core: size must be positive")
	}

	cr = &Core{
		cell: make([]Cell, size),
	}

	cr.Initialize(INIT_MODE_STOP, 0)

	return
}

// Size of the core in cells.
func (cr *Core) Size() int {
	return len(cr.cell)
}

// Resolve maps any address, negative or larger than the core, into [0, size).
func (cr *Core) Resolve(addr int64) int {
	size := int64(len(cr.cell))
	index := addr % size
	if index < 0 {
		index += size
	}

	return int(index)
}

// Read returns a copy of the cell at the address.
func (cr *Core) Read(addr int64) Cell {
	return cr.cell[cr.Resolve(addr)]
}

// Write replaces the cell at the address with a copy of the given cell.
func (cr *Core) Write(addr int64, cell Cell) {
	cr.cell[cr.Resolve(addr)] = cell
}

// Initialize fills every cell according to the mode.
// INIT_MODE_RANDOM is reproducible: the same seed and size always
// produce the same core.
func (cr *Core) Initialize(mode InitMode, seed int64) {
	if cr.Verbose {
		log.Printf("core: initialize %v seed %v size %v", mode, seed, len(cr.cell))
	}

	switch mode {
	case INIT_MODE_RANDOM:
		rands := rand.New(rand.NewSource(seed))
		for n := range cr.cell {
			op := Opcodes[rands.Intn(len(Opcodes))]
			a := int32(rands.Uint32())
			b := int32(rands.Uint32())
			cr.cell[n] = Cell{Opcode: op, A: a, B: b}
		}
	default:
		clear(cr.cell)
		for n := range cr.cell {
			cr.cell[n].Opcode = OP_STOP
		}
	}
}

// Cells returns an iterator over every cell, in address order.
func (cr *Core) Cells() iter.Seq2[int, Cell] {
	return slices.All(slices.Clone(cr.cell))
}

// Range returns an iterator over count cells starting at the address,
// wrapping past the end of the core. At most one full lap is returned.
func (cr *Core) Range(addr int64, count int) iter.Seq2[int, Cell] {
	count = max(0, min(count, len(cr.cell)))
	start := cr.Resolve(addr)
	end := start + count

	cells := slices.Clone(cr.cell)
	if end <= len(cells) {
		return internal.IterSeq2Indexed(start, cells[start:end])
	}

	return internal.IterSeq2Concat(
		internal.IterSeq2Indexed(start, cells[start:]),
		internal.IterSeq2Indexed(0, cells[:end-len(cells)]),
	)
}

// Snapshot returns a copy of the whole core.
func (cr *Core) Snapshot() []Cell {
	return slices.Clone(cr.cell)
}
