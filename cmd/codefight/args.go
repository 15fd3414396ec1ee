package main

import (
	"errors"
	"strconv"

	"github.com/ezrec/codefight/core"
	"github.com/ezrec/codefight/display"
	"github.com/ezrec/codefight/emulator"
	"github.com/ezrec/codefight/shell"
	"github.com/ezrec/codefight/translate"
)

var f = translate.From

var ErrArgumentCount = errors.New(f("The number of command line arguments is invalid."))

const (
	ARGS_MIN         = 9 // Core size, display symbols, and two symbol pairs.
	DISPLAY_SYMBOLS  = 4
	SYMBOLS_PER_SLOT = 2
)

// parseArgs parses SIZE S1 S2 S3 S4 AI1STD AI1BOMB [AI2STD AI2BOMB ...]
func parseArgs(args []string) (cfg emulator.Config, sym display.Symbols, err error) {
	if len(args) == 0 {
		err = ErrArgumentCount
		return
	}

	size, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		err = shell.ErrNumber
		return
	}

	if len(args) < ARGS_MIN || len(args)%2 == 0 {
		err = ErrArgumentCount
		return
	}

	cfg.CoreSize = int(size)
	pairs := args[1+DISPLAY_SYMBOLS:]
	for n := 0; n < len(pairs); n += SYMBOLS_PER_SLOT {
		cfg.AiSymbols = append(cfg.AiSymbols, core.Symbols{
			Standard: pairs[n],
			Bomb:     pairs[n+1],
		})
	}

	err = cfg.Validate()
	if err != nil {
		return
	}

	seen := map[string]bool{}
	for _, symbol := range args[1:] {
		if seen[symbol] {
			err = emulator.ErrSymbolsDuplicate
			return
		}
		seen[symbol] = true
	}

	sym = display.Symbols{
		Unchanged:    args[1],
		RangeLimit:   args[2],
		NextOfNext:   args[3],
		NextOfOthers: args[4],
	}

	return
}
