// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/codefight/display"
	"github.com/ezrec/codefight/emulator"
	"github.com/ezrec/codefight/shell"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %v [-v] SIZE S1 S2 S3 S4 AI1STD AI1BOMB AI2STD AI2BOMB [...]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	log.SetFlags(0)

	cfg, sym, err := parseArgs(flag.Args())
	if err != nil {
		log.Fatalf("%v%v", shell.ERROR_PREFIX, err)
	}

	emu, err := emulator.NewEmulator(cfg)
	if err != nil {
		log.Fatalf("%v%v", shell.ERROR_PREFIX, err)
	}
	emu.Verbose = verbose

	sh := &shell.Shell{
		Verbose:  verbose,
		Emulator: emu,
		Display:  display.Display{Symbols: sym},
		Output:   os.Stdout,
		Error:    os.Stderr,
	}

	fmt.Println(f("Welcome to CodeFight 2024. Enter 'help' for more details."))

	err = sh.Run(os.Stdin)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
