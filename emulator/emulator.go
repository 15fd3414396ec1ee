// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs codefight matches: it keeps the registered
// programs, loads a match into the core, and schedules the competitors.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/cpu"
	"github.com/ezrec/codefight/internal"
)

var _emulator_defines = map[string]string{
	"SEED_MIN": fmt.Sprintf("%v", SEED_MIN),
	"SEED_MAX": fmt.Sprintf("%v", SEED_MAX),
}

// Emulator state. Core + registered programs + the current match.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	config   Config
	core     *core.Core
	programs []*cpu.Program

	initMode core.InitMode
	seed     int64

	phase       Phase
	competitors []*cpu.Competitor
	cursor      int
}

// NewEmulator creates a new emulator in the setup phase.
func NewEmulator(cfg Config) (emu *Emulator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	cfg.AiSymbols = slices.Clone(cfg.AiSymbols)

	emu = &Emulator{
		config: cfg,
		core:   core.NewCore(uint(cfg.CoreSize)),
		phase:  PHASE_SETUP,
		cursor: NEXT_NONE,
	}

	return
}

// Config returns the emulator configuration.
func (emu *Emulator) Config() Config {
	cfg := emu.config
	cfg.AiSymbols = slices.Clone(cfg.AiSymbols)
	return cfg
}

// Size of the core.
func (emu *Emulator) Size() int {
	return emu.core.Size()
}

// MaxAis returns the most competitors a match may have.
func (emu *Emulator) MaxAis() int {
	return emu.config.MaxAis()
}

// Defines returns an iterator over the assembler equates describing the
// emulator.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	size := emu.core.Size()
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		maps.All(map[string]string{
			"CORE_SIZE":        fmt.Sprintf("%v", size),
			"PROGRAM_SIZE_MAX": fmt.Sprintf("%v", size/2+1),
			"MAX_AIS":          fmt.Sprintf("%v", emu.MaxAis()),
		}),
	)
}

// Phase returns the current game phase.
func (emu *Emulator) Phase() Phase {
	return emu.phase
}

func (emu *Emulator) findProgram(name string) int {
	return slices.IndexFunc(emu.programs, func(prog *cpu.Program) bool {
		return prog.Name == name
	})
}

// Register adds a program to the set that may be started.
func (emu *Emulator) Register(prog *cpu.Program) (err error) {
	if emu.phase != PHASE_SETUP {
		return ErrPhase
	}

	if prog.Len() == 0 {
		return cpu.ErrProgramEmpty
	}

	if emu.findProgram(prog.Name) >= 0 {
		return ErrProgramDuplicate
	}

	if !prog.Fits(emu.core.Size()) {
		return ErrProgramTooLarge
	}

	emu.programs = append(emu.programs, cpu.NewProgram(prog.Name, prog.Code))

	return
}

// Deregister removes a registered program.
func (emu *Emulator) Deregister(name string) (err error) {
	if emu.phase != PHASE_SETUP {
		return ErrPhase
	}

	n := emu.findProgram(name)
	if n < 0 {
		return ErrProgramMissing
	}

	emu.programs = slices.Delete(emu.programs, n, n+1)

	return
}

// Program returns the registered program with the given name.
func (emu *Emulator) Program(name string) (prog *cpu.Program, ok bool) {
	n := emu.findProgram(name)
	if n < 0 {
		return
	}

	prog = emu.programs[n]
	ok = true
	return
}

// Programs returns the registered programs in registration order.
func (emu *Emulator) Programs() []*cpu.Program {
	return slices.Clone(emu.programs)
}

// InitMode returns the core initialization mode, and its seed.
func (emu *Emulator) InitMode() (mode core.InitMode, seed int64) {
	return emu.initMode, emu.seed
}

// SetInitMode sets the core initialization mode used by the next Start.
// The seed must be in [SEED_MIN, SEED_MAX]. Unseeded modes ignore it, and
// store a seed of zero.
func (emu *Emulator) SetInitMode(mode core.InitMode, seed int64) (changed bool, err error) {
	if emu.phase != PHASE_SETUP {
		err = ErrPhase
		return
	}

	switch mode {
	case core.INIT_MODE_STOP, core.INIT_MODE_RANDOM:
	default:
		err = ErrInitMode
		return
	}

	if seed < SEED_MIN || seed > SEED_MAX {
		err = ErrSeedRange
		return
	}

	if !mode.Seeded() {
		seed = 0
	}

	changed = mode != emu.initMode || seed != emu.seed
	emu.initMode = mode
	emu.seed = seed

	return
}

// Start a match between the named programs, in placement order.
// A name may be given more than once.
func (emu *Emulator) Start(names []string) (err error) {
	if emu.phase != PHASE_SETUP {
		return ErrPhase
	}

	if len(names) < 2 || len(names) > emu.MaxAis() {
		return ErrCompetitorCount
	}

	progs := make([]*cpu.Program, len(names))
	lengths := make([]int, len(names))
	for n, name := range names {
		prog, ok := emu.Program(name)
		if !ok {
			return ErrProgramMissing
		}
		progs[n] = prog
		lengths[n] = prog.Len()
	}

	// Placement is checked before the core is touched.
	starts, err := Layout(emu.core.Size(), lengths)
	if err != nil {
		return
	}

	emu.competitors = emu.load(progs, DisplayNames(names), starts)
	emu.cursor = 0
	emu.phase = PHASE_FIGHT

	if emu.Verbose {
		log.Printf("emulator: match started, %d competitors, core %v", len(emu.competitors), emu.Digest())
	}

	return
}

// Reset ends the current match, and returns to the setup phase.
// Registered programs and the init mode are kept.
func (emu *Emulator) Reset() {
	if emu.Verbose && emu.phase == PHASE_FIGHT {
		log.Printf("emulator: match ended, core %v", emu.Digest())
	}

	emu.competitors = nil
	emu.cursor = NEXT_NONE
	emu.phase = PHASE_SETUP

	if emu.Verbose {
		log.Printf("emulator: reset")
	}
}

// Cursor returns the placement index of the competitor to execute next,
// or NEXT_NONE.
func (emu *Emulator) Cursor() int {
	return emu.cursor
}

// Competitor returns a copy of the state of the named competitor.
func (emu *Emulator) Competitor(name string) (comp cpu.Competitor, ok bool) {
	for _, c := range emu.competitors {
		if c.Name == name {
			comp = *c
			ok = true
			return
		}
	}

	return
}

// Competitors returns a copy of the competitor states, in placement order.
func (emu *Emulator) Competitors() (comps []cpu.Competitor) {
	comps = make([]cpu.Competitor, len(emu.competitors))
	for n, comp := range emu.competitors {
		comps[n] = *comp
	}

	return
}

func (emu *Emulator) namesOf(alive bool) (names []string) {
	for _, comp := range emu.competitors {
		if comp.Alive == alive {
			names = append(names, comp.Name)
		}
	}

	return
}

// Running returns the names of the live competitors.
func (emu *Emulator) Running() []string {
	return emu.namesOf(true)
}

// Stopped returns the names of the stopped competitors.
func (emu *Emulator) Stopped() []string {
	return emu.namesOf(false)
}

// Cell returns a copy of the cell at the address.
func (emu *Emulator) Cell(addr int64) core.Cell {
	return emu.core.Read(addr)
}

// Range returns an iterator over copies of count cells from the address,
// wrapping at the end of the core.
func (emu *Emulator) Range(addr int64, count int) iter.Seq2[int, core.Cell] {
	return emu.core.Range(addr, count)
}

// Snapshot returns a copy of the whole core.
func (emu *Emulator) Snapshot() []core.Cell {
	return emu.core.Snapshot()
}

// Digest returns the fingerprint of the core contents.
func (emu *Emulator) Digest() core.Digest {
	return emu.core.Digest()
}
