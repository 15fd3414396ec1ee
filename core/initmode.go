package core

// InitMode selects how the core is filled before programs are loaded.
type InitMode int

//go:generate go tool stringer -linecomment -type=InitMode
const (
	INIT_MODE_STOP   = InitMode(0) // INIT_MODE_STOP
	INIT_MODE_RANDOM = InitMode(1) // INIT_MODE_RANDOM
)

// ParseInitMode returns the initialization mode with the given name.
func ParseInitMode(name string) (mode InitMode, ok bool) {
	for _, mode = range []InitMode{INIT_MODE_STOP, INIT_MODE_RANDOM} {
		if mode.String() == name {
			ok = true
			return
		}
	}

	mode = INIT_MODE_STOP
	return
}

// Seeded returns true if the mode uses a seed.
func (mode InitMode) Seeded() bool {
	return mode == INIT_MODE_RANDOM
}
