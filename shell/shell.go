// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package shell is the line oriented command interpreter of codefight.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/codefight/cpu"
	"github.com/ezrec/codefight/display"
	"github.com/ezrec/codefight/emulator"
)

// ERROR_PREFIX starts every line written to the error stream.
const ERROR_PREFIX = "Error, "

// Shell runs commands against an emulator.
type Shell struct {
	Verbose  bool               // If set, logs every command.
	Emulator *emulator.Emulator // Game being played.
	Display  display.Display    // Symbols for show-memory.
	FS       fs.FS              // Files for load-ai. If nil, the OS file system is used.

	Output io.Writer // Command results.
	Error  io.Writer // Command failures.

	quit bool
}

// command is one shell command.
type command struct {
	name        string
	description string
	phase       emulator.Phase
	anyPhase    bool // Usable in every phase.
	minArgs     int
	maxArgs     int // Negative for no limit.
	run         func(sh *Shell, args []string) (string, error)
}

// commands, sorted by name.
var commands []*command

func init() {
	commands = []*command{
		{
			name:        "add-ai",
			description: "Registers an AI with the specified name and the specified AI commands.",
			phase:       emulator.PHASE_SETUP,
			minArgs:     2, maxArgs: 2,
			run: (*Shell).addAi,
		},
		{
			name:        "end-game",
			description: "Ends the game.",
			phase:       emulator.PHASE_FIGHT,
			run:         (*Shell).endGame,
		},
		{
			name:        "help",
			description: "Displays a short line-by-line description of the commands available in the current phase of the game.",
			anyPhase:    true,
			run:         (*Shell).help,
		},
		{
			name:        "load-ai",
			description: "Registers an AI with the specified name, assembled from the specified file.",
			phase:       emulator.PHASE_SETUP,
			minArgs:     2, maxArgs: 2,
			run: (*Shell).loadAi,
		},
		{
			name:        "next",
			description: "Executes the next commands of the AIs. The number of commands is specified by the given value.",
			phase:       emulator.PHASE_FIGHT,
			minArgs:     0, maxArgs: 1,
			run: (*Shell).next,
		},
		{
			name:        "quit",
			description: "Quits the game.",
			anyPhase:    true,
			run: func(sh *Shell, args []string) (string, error) {
				sh.quit = true
				return "", nil
			},
		},
		{
			name:        "remove-ai",
			description: "Removes the AI with the specified name.",
			phase:       emulator.PHASE_SETUP,
			minArgs:     1, maxArgs: 1,
			run: (*Shell).removeAi,
		},
		{
			name:        "set-init-mode",
			description: "Sets the mode with which the memory is initialised.",
			phase:       emulator.PHASE_SETUP,
			minArgs:     1, maxArgs: 2,
			run: (*Shell).setInitMode,
		},
		{
			name:        "show-ai",
			description: "Displays the current status of an AI.",
			phase:       emulator.PHASE_FIGHT,
			minArgs:     1, maxArgs: 1,
			run: (*Shell).showAi,
		},
		{
			name:        "show-memory",
			description: "Shows the current state of the memory.",
			phase:       emulator.PHASE_FIGHT,
			minArgs:     0, maxArgs: 1,
			run: (*Shell).showMemory,
		},
		{
			name:        "start-game",
			description: "Starts the game. The game can only be started if at least two AIs are selected.",
			phase:       emulator.PHASE_SETUP,
			minArgs:     0, maxArgs: -1,
			run: (*Shell).startGame,
		},
	}
}

func findCommand(name string) *command {
	n, ok := slices.BinarySearchFunc(commands, name, func(cmd *command, name string) int {
		return strings.Compare(cmd.name, name)
	})
	if !ok {
		return nil
	}

	return commands[n]
}

// Execute runs one command line. It returns the text to show, which may
// be empty.
func (sh *Shell) Execute(line string) (text string, err error) {
	if sh.Verbose {
		log.Printf("shell: %v", line)
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		words = []string{""}
	}
	name, args := words[0], words[1:]

	cmd := findCommand(name)
	if cmd == nil {
		err = ErrCommandMissing(name)
		return
	}

	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		err = ErrArgumentCount(name)
		return
	}

	if !cmd.anyPhase && cmd.phase != sh.Emulator.Phase() {
		err = ErrPhase(cmd.phase)
		return
	}

	return cmd.run(sh, args)
}

// Run executes the lines of the input until it ends or a quit command.
func (sh *Shell) Run(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	sh.quit = false
	for !sh.quit && scanner.Scan() {
		text, err := sh.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintln(sh.Error, ERROR_PREFIX+Message(err))
			continue
		}
		if len(text) != 0 {
			fmt.Fprintln(sh.Output, text)
		}
	}

	return scanner.Err()
}

// Message returns the user facing text of an error.
func Message(err error) string {
	var op cpu.ErrOpcode
	if errors.As(err, &op) {
		return op.Error()
	}

	return err.Error()
}

func (sh *Shell) open(path string) (io.ReadCloser, error) {
	if sh.FS == nil {
		return os.Open(path)
	}

	return sh.FS.Open(path)
}
