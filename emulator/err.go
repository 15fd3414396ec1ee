package emulator

import (
	"errors"

	"github.com/ezrec/codefight/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrCoreSize         = errors.New(f("The size of the memory must be in the inclusive range of [7, 1337]."))
	ErrSymbolsDuplicate = errors.New(f("Symbols must be unique."))
	ErrSymbolsMissing   = errors.New(f("At least two pairs of AI symbols are required."))

	// Registration errors
	ErrProgramDuplicate = errors.New(f("AI with this name is already registered."))
	ErrProgramTooLarge  = errors.New(f("The AI commands overlap"))
	ErrProgramMissing   = errors.New(f("AI with this name is not registered."))

	// Setup errors
	ErrInitMode        = errors.New(f("The specified initialisation mode is invalid."))
	ErrSeedRange       = errors.New(f("The specified seed is invalid."))
	ErrCompetitorCount = errors.New(f("wrong number of competitors"))
	ErrPhase           = errors.New(f("wrong game phase"))

	// Placement errors
	ErrOverlap = errors.New(f("The AI commands overlap"))
)

// ErrRuntime indicates the competitor and address of a runtime error.
type ErrRuntime struct {
	Name    string
	Address int
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("%v @%v: %v", err.Name, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
