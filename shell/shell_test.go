package shell

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/cpu"
	"github.com/ezrec/codefight/display"
	"github.com/ezrec/codefight/emulator"
)

type testShell struct {
	*Shell
	output bytes.Buffer
	error  bytes.Buffer
}

func newTestShell(t *testing.T) (ts *testShell) {
	emu, err := emulator.NewEmulator(emulator.Config{
		CoreSize: 10,
		AiSymbols: []core.Symbols{
			{Standard: "a", Bomb: "A"},
			{Standard: "b", Bomb: "B"},
		},
	})
	require.NoError(t, err)

	ts = &testShell{}
	ts.Shell = &Shell{
		Emulator: emu,
		Display: display.Display{
			Symbols: display.Symbols{
				Unchanged:    ".",
				RangeLimit:   "|",
				NextOfNext:   "*",
				NextOfOthers: "+",
			},
		},
		Output: &ts.output,
		Error:  &ts.error,
	}

	return
}

func (ts *testShell) run(t *testing.T, lines ...string) (output []string, errors []string) {
	ts.output.Reset()
	ts.error.Reset()

	err := ts.Run(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)

	if ts.output.Len() > 0 {
		output = strings.Split(strings.TrimSuffix(ts.output.String(), "\n"), "\n")
	}
	if ts.error.Len() > 0 {
		errors = strings.Split(strings.TrimSuffix(ts.error.String(), "\n"), "\n")
	}

	return
}

func TestHelp(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	output, errors := ts.run(t, "help")
	assert.Empty(errors)
	assert.Equal([]string{
		"add-ai: Registers an AI with the specified name and the specified AI commands.",
		"help: Displays a short line-by-line description of the commands available in the current phase of the game.",
		"load-ai: Registers an AI with the specified name, assembled from the specified file.",
		"quit: Quits the game.",
		"remove-ai: Removes the AI with the specified name.",
		"set-init-mode: Sets the mode with which the memory is initialised.",
		"start-game: Starts the game. The game can only be started if at least two AIs are selected.",
	}, output)

	output, errors = ts.run(t,
		"add-ai imp MOV_R,0,1",
		"start-game imp imp",
		"help",
	)
	assert.Empty(errors)
	assert.Equal([]string{
		"imp",
		"Game started.",
		"end-game: Ends the game.",
		"help: Displays a short line-by-line description of the commands available in the current phase of the game.",
		"next: Executes the next commands of the AIs. The number of commands is specified by the given value.",
		"quit: Quits the game.",
		"show-ai: Displays the current status of an AI.",
		"show-memory: Shows the current state of the memory.",
	}, output)
}

func TestSession(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	output, errors := ts.run(t,
		"add-ai imp MOV_R,0,1",
		"add-ai loop JMP,0,0",
		"add-ai tmp STOP,0,0",
		"remove-ai tmp",
		"set-init-mode INIT_MODE_RANDOM 42",
		"set-init-mode INIT_MODE_STOP",
		"set-init-mode INIT_MODE_STOP",
		"start-game imp loop",
		"show-memory",
		"next 2",
		"show-ai imp",
		"show-memory 8",
		"end-game",
		"quit",
		"help",
	)
	assert.Empty(errors)
	assert.Equal([]string{
		"imp",
		"loop",
		"tmp",
		"tmp",
		"Changed init mode from INIT_MODE_STOP to INIT_MODE_RANDOM 42",
		"Changed init mode from INIT_MODE_RANDOM 42 to INIT_MODE_STOP",
		"Game started.",
		"*....+....",
		"imp (RUNNING@1)",
		"Next Command: MOV_R|0|1 @1",
		"a*...+..|..",
		". 8:  STOP | 0 | 0",
		". 9:  STOP | 0 | 0",
		"a 0: MOV_R | 0 | 1",
		"* 1: MOV_R | 0 | 1",
		". 2:  STOP | 0 | 0",
		". 3:  STOP | 0 | 0",
		". 4:  STOP | 0 | 0",
		"+ 5:   JMP | 0 | 0",
		". 6:  STOP | 0 | 0",
		". 7:  STOP | 0 | 0",
		"Running AIs: imp, loop",
	}, output)
	assert.Equal(emulator.PHASE_SETUP, ts.Emulator.Phase())
}

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	_, errors := ts.run(t,
		"frobnicate",
		"",
		"add-ai imp",
		"add-ai imp MOV_R,0,1",
		"add-ai imp MOV_R,0,1",
		"add-ai bad FOO,1,2",
		"add-ai bad MOV_R,0",
		"add-ai bad MOV_R,x,1",
		"add-ai big ADD,0,0,ADD,0,0,ADD,0,0,ADD,0,0,ADD,0,0,ADD,0,0,ADD,0,0",
		"remove-ai nope",
		"set-init-mode INIT_MODE_FOO",
		"set-init-mode INIT_MODE_RANDOM",
		"set-init-mode INIT_MODE_STOP 5",
		"set-init-mode INIT_MODE_RANDOM x",
		"set-init-mode INIT_MODE_RANDOM 1338",
		"next",
		"show-memory",
		"start-game imp",
		"start-game imp nope",
		"start-game imp imp imp",
	)
	assert.Equal([]string{
		"Error, Command 'frobnicate' not found",
		"Error, Command '' not found",
		"Error, wrong number of arguments for command 'add-ai'!",
		"Error, AI with this name is already registered.",
		"Error, There is no AI command named 'FOO'.",
		"Error, The AI commands do not match the required format.",
		"Error, 'x' is not a 32-bit integer",
		"Error, The AI commands overlap",
		"Error, AI with this name is not registered and therefore cannot be removed.",
		"Error, The specified initialisation mode is invalid.",
		"Error, Wrong number of arguments for initialisation mode 'INIT_MODE_RANDOM'!",
		"Error, Wrong number of arguments for initialisation mode 'INIT_MODE_STOP'!",
		"Error, The specified number must be an integer.",
		"Error, The specified seed is invalid.",
		"Error, The game is not in the FIGHT phase",
		"Error, The game is not in the FIGHT phase",
		"Error, wrong number of arguments for command 'start-game'!",
		"Error, There is at least one name that does not correspond to a registered AI.",
		"Error, wrong number of arguments for command 'start-game'!",
	}, errors)

	_, errors = ts.run(t,
		"start-game imp imp",
		"add-ai other MOV_R,0,1",
		"next 1 2",
		"next x",
		"show-memory 10",
		"show-memory -1",
		"show-ai nope",
		"show-ai imp",
	)
	assert.Equal([]string{
		"Error, The game is not in the SETUP phase",
		"Error, wrong number of arguments for command 'next'!",
		"Error, The specified number must be an integer.",
		"Error, The given memory cell index either exceeds the memory size or is negative.",
		"Error, The given memory cell index either exceeds the memory size or is negative.",
		"Error, AI with this name is not active and therefore the status cannot be displayed.",
		"Error, AI with this name is not active and therefore the status cannot be displayed.",
	}, errors)
}

func TestAddAiSizeFirst(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	big := strings.Repeat("ADD,x,0,", 6) + "FOO,0,0"
	output, errors := ts.run(t,
		"add-ai big "+big,
		"add-ai max "+strings.Repeat("FOO,0,0,", 6),
		"add-ai tail STOP,0,0,",
	)
	assert.Equal([]string{"tail"}, output)
	assert.Equal([]string{
		"Error, The AI commands overlap",
		"Error, There is no AI command named 'FOO'.",
	}, errors)
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	_, err := ts.Execute("next")
	assert.ErrorIs(err, emulator.ErrPhase)
	assert.ErrorIs(err, ErrPhase(emulator.PHASE_FIGHT))

	_, err = ts.Execute("nope")
	assert.ErrorIs(err, ErrCommandMissing("nope"))

	text, err := ts.Execute("  add-ai   imp   MOV_R,0,1  ")
	assert.NoError(err)
	assert.Equal("imp", text)
}

func TestNextNotices(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	output, errors := ts.run(t,
		"add-ai short ADD,1,1,STOP,0,0",
		"start-game short short",
		"next 3",
		"next 0",
		"next -5",
		"next",
		"next 10",
		"show-ai short#0",
		"end-game",
	)
	assert.Empty(errors)
	assert.Equal([]string{
		"short",
		"Game started.",
		"short#0 executed 1 steps until stopping.",
		"short#1 executed 1 steps until stopping.",
		"short#0 (STOPPED@2)",
		"Stopped AIs: short#0, short#1",
	}, output)
}

func TestRuntimeError(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)

	bad := cpu.NewProgram("bad", []core.Cell{{Opcode: core.Opcode(42)}})
	require.NoError(t, ts.Emulator.Register(bad))

	output, errors := ts.run(t,
		"add-ai loop JMP,0,0",
		"start-game loop bad",
		"next 5",
	)
	assert.Equal([]string{"loop", "Game started."}, output)
	assert.Equal([]string{"Error, Command 'Opcode(42)' not found"}, errors)

	comp, ok := ts.Emulator.Competitor("loop")
	assert.True(ok)
	assert.Equal(uint32(1), comp.Steps)
}

func TestLoadAi(t *testing.T) {
	assert := assert.New(t)

	ts := newTestShell(t)
	ts.FS = fstest.MapFS{
		"dwarf.cf": &fstest.MapFile{Data: []byte(strings.Join([]string{
			"; bombs every fourth cell",
			".equ STEP 4",
			"loop:   ADD   STEP, bomb",
			"        MOV_R bomb, $(bomb + 1)",
			"        JMP   loop",
			"bomb:   STOP",
			"        JMP   $(CORE_SIZE + 1)",
		}, "\n"))},
		"broken.cf": &fstest.MapFile{Data: []byte("STOP\nJMP nowhere\n")},
	}

	output, errors := ts.run(t,
		"load-ai dwarf dwarf.cf",
		"load-ai dwarf dwarf.cf",
		"load-ai broken broken.cf",
		"load-ai missing missing.cf",
	)
	assert.Equal([]string{"dwarf"}, output)
	if assert.Len(errors, 3) {
		assert.Equal("Error, AI with this name is already registered.", errors[0])
		assert.Equal("Error, line 2 'JMP nowhere' label nowhere missing", errors[1])
		assert.True(strings.HasPrefix(errors[2], "Error, open missing.cf"), errors[2])
	}

	prog, ok := ts.Emulator.Program("dwarf")
	if assert.True(ok) {
		assert.Equal([]core.Cell{
			{Opcode: core.OP_ADD, A: 4, B: 3},
			{Opcode: core.OP_MOV_R, A: 2, B: 3},
			{Opcode: core.OP_JMP, A: -2},
			{Opcode: core.OP_STOP},
			{Opcode: core.OP_JMP, A: 11},
		}, prog.Code)
	}
}
