// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/cpu"
)

// Layout returns the start address of each of the programs, spread evenly
// around a core of the given size. Program k of n starts at k*size/n, and
// must end at or before the start of program k+1. The last program may wrap
// into the first one; it is truncated at the end of the core when loaded.
func Layout(size int, lengths []int) (starts []int, err error) {
	n := len(lengths)
	starts = make([]int, n)
	for k := range n {
		starts[k] = k * size / n
	}

	for k := range n - 1 {
		if starts[k]+lengths[k] > starts[k+1] {
			starts = nil
			err = ErrOverlap
			return
		}
	}

	return
}

// DisplayNames disambiguates the program names of a match. A name used
// once is kept as is; every use of a repeated name is numbered by
// occurrence as "name#0", "name#1", ...
func DisplayNames(names []string) (display []string) {
	count := map[string]int{}
	for _, name := range names {
		count[name]++
	}

	seen := map[string]int{}
	display = make([]string, len(names))
	for n, name := range names {
		if count[name] == 1 {
			display[n] = name
			continue
		}
		display[n] = fmt.Sprintf("%s#%d", name, seen[name])
		seen[name]++
	}

	return
}

// load writes the programs at their start addresses, and creates the
// competitors. Cells past the end of the core are dropped.
func (emu *Emulator) load(progs []*cpu.Program, names []string, starts []int) (comps []*cpu.Competitor) {
	cr := emu.core
	size := cr.Size()

	emu.core.Verbose = emu.Verbose
	cr.Initialize(emu.initMode, emu.seed)

	comps = make([]*cpu.Competitor, len(progs))
	for k, prog := range progs {
		sym := emu.config.AiSymbols[k]
		for n, cell := range prog.Code {
			addr := starts[k] + n
			if addr >= size {
				break
			}
			cell.Owner = sym.Standard
			cr.Write(int64(addr), cell)
		}

		comp := cpu.NewCompetitor(names[k], prog, sym)
		comp.Verbose = emu.Verbose
		comp.Ip = int64(starts[k])
		comps[k] = comp

		if emu.Verbose {
			log.Printf("emulator: %v loaded at %d", comp.Name, starts[k])
		}
	}

	// Skip leading STOPs, once every program is in place.
	for _, comp := range comps {
		for range size {
			if cr.Read(comp.Ip).Opcode != core.OP_STOP {
				break
			}
			comp.Ip = int64(cr.Resolve(comp.Ip + 1))
		}
	}

	return
}
