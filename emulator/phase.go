package emulator

// Phase of the game.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_SETUP = Phase(0) // SETUP
	PHASE_FIGHT = Phase(1) // FIGHT
)

// NEXT_NONE is the scheduler cursor once every competitor has stopped.
const NEXT_NONE = -1
