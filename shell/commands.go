package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/cpu"
	"github.com/ezrec/codefight/display"
	"github.com/ezrec/codefight/emulator"
)

func (sh *Shell) register(prog *cpu.Program) (text string, err error) {
	err = sh.Emulator.Register(prog)
	if err != nil {
		return
	}

	text = prog.Name
	return
}

func (sh *Shell) addAi(args []string) (text string, err error) {
	name := args[0]
	if _, ok := sh.Emulator.Program(name); ok {
		err = emulator.ErrProgramDuplicate
		return
	}

	// The size limit is checked before the words are parsed.
	words, err := cpu.SplitList(args[1])
	if err != nil {
		return
	}
	if !cpu.Fits(len(words)/cpu.LIST_WORDS, sh.Emulator.Size()) {
		err = emulator.ErrProgramTooLarge
		return
	}

	prog, err := cpu.ParseList(name, args[1])
	if err != nil {
		return
	}

	return sh.register(prog)
}

func (sh *Shell) loadAi(args []string) (text string, err error) {
	name := args[0]
	if _, ok := sh.Emulator.Program(name); ok {
		err = emulator.ErrProgramDuplicate
		return
	}

	inf, err := sh.open(args[1])
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: sh.Verbose}
	for key, value := range sh.Emulator.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(name, inf)
	if err != nil {
		return
	}

	return sh.register(prog)
}

func (sh *Shell) removeAi(args []string) (text string, err error) {
	err = sh.Emulator.Deregister(args[0])
	if errors.Is(err, emulator.ErrProgramMissing) {
		err = ErrAiNotRemoved
	}
	if err != nil {
		return
	}

	text = args[0]
	return
}

func describeInitMode(mode core.InitMode, seed int64) string {
	if mode.Seeded() {
		return fmt.Sprintf("%v %d", mode, seed)
	}

	return mode.String()
}

func (sh *Shell) setInitMode(args []string) (text string, err error) {
	mode, ok := core.ParseInitMode(args[0])
	if !ok {
		err = emulator.ErrInitMode
		return
	}

	if mode.Seeded() != (len(args) == 2) {
		err = ErrInitModeArgs(args[0])
		return
	}

	var seed int64
	if len(args) == 2 {
		seed, err = strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			err = ErrNumber
			return
		}
	}

	oldMode, oldSeed := sh.Emulator.InitMode()

	changed, err := sh.Emulator.SetInitMode(mode, seed)
	if err != nil || !changed {
		return
	}

	text = fmt.Sprintf("Changed init mode from %s to %s",
		describeInitMode(oldMode, oldSeed), describeInitMode(mode, seed))
	return
}

func (sh *Shell) startGame(args []string) (text string, err error) {
	err = sh.Emulator.Start(args)
	switch {
	case errors.Is(err, emulator.ErrCompetitorCount):
		err = ErrArgumentCount("start-game")
	case errors.Is(err, emulator.ErrProgramMissing):
		err = ErrAiUnknown
	}
	if err != nil {
		return
	}

	text = f("Game started.")
	return
}

func (sh *Shell) next(args []string) (text string, err error) {
	count := 1
	if len(args) == 1 {
		var count64 int64
		count64, err = strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			err = ErrNumber
			return
		}
		count = int(count64)
	}

	notices, err := sh.Emulator.Next(count)

	lines := make([]string, len(notices))
	for n, notice := range notices {
		lines[n] = notice.String()
	}
	text = strings.Join(lines, "\n")

	return
}

func (sh *Shell) showMemory(args []string) (text string, err error) {
	if len(args) == 0 {
		text = sh.Display.Memory(sh.Emulator)
		return
	}

	index, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		err = ErrNumber
		return
	}
	if index < 0 || index >= int64(sh.Emulator.Size()) {
		err = ErrCellIndex
		return
	}

	text = sh.Display.Range(sh.Emulator, int(index))
	return
}

func (sh *Shell) showAi(args []string) (text string, err error) {
	text, ok := display.Competitor(sh.Emulator, args[0])
	if !ok {
		err = ErrAiInactive
	}

	return
}

func (sh *Shell) endGame(args []string) (text string, err error) {
	text = display.Summary(sh.Emulator)
	sh.Emulator.Reset()

	return
}

func (sh *Shell) help(args []string) (text string, err error) {
	phase := sh.Emulator.Phase()

	var lines []string
	for _, cmd := range commands {
		if cmd.anyPhase || cmd.phase == phase {
			lines = append(lines, fmt.Sprintf("%s: %s", cmd.name, cmd.description))
		}
	}
	text = strings.Join(lines, "\n")

	return
}
