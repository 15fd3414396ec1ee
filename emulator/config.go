package emulator

import (
	"github.com/ezrec/codefight/core"
)

const (
	CORE_SIZE_MIN = 7    // Smallest playable core.
	CORE_SIZE_MAX = 1337 // Largest playable core.

	SEED_MIN = -1337 // Smallest INIT_MODE_RANDOM seed.
	SEED_MAX = 1337  // Largest INIT_MODE_RANDOM seed.
)

// Config is the fixed configuration of an emulator.
type Config struct {
	CoreSize  int            // Number of cells in the core.
	AiSymbols []core.Symbols // One symbol pair per competitor slot.
}

// MaxAis returns the most competitors a match may have.
func (cfg *Config) MaxAis() int {
	return len(cfg.AiSymbols)
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	if cfg.CoreSize < CORE_SIZE_MIN || cfg.CoreSize > CORE_SIZE_MAX {
		return ErrCoreSize
	}

	if len(cfg.AiSymbols) < 2 {
		return ErrSymbolsMissing
	}

	seen := map[string]bool{}
	for _, sym := range cfg.AiSymbols {
		for _, tag := range []string{sym.Standard, sym.Bomb} {
			if len(tag) == 0 {
				return ErrSymbolsMissing
			}
			if seen[tag] {
				return ErrSymbolsDuplicate
			}
			seen[tag] = true
		}
	}

	return nil
}
