package emulator

import (
	"fmt"

	"github.com/ezrec/codefight/cpu"
)

// Notice reports a competitor that has just stopped.
type Notice struct {
	Name  string
	Steps uint32 // Executed instructions, not counting the STOP.
}

func (notice Notice) String() string {
	return fmt.Sprintf("%s executed %d steps until stopping.", notice.Name, notice.Steps)
}

// advance moves the cursor to the next live competitor after the
// current one, wrapping, or to NEXT_NONE.
func (emu *Emulator) advance() {
	n := len(emu.competitors)
	for i := 1; i <= n; i++ {
		next := (emu.cursor + i) % n
		if emu.competitors[next].Alive {
			emu.cursor = next
			return
		}
	}

	emu.cursor = NEXT_NONE
}

// Tick executes one instruction of the current competitor. It returns a
// notice if that competitor stopped. Once every competitor has stopped,
// Tick does nothing.
func (emu *Emulator) Tick() (notice *Notice, err error) {
	if emu.phase != PHASE_FIGHT {
		err = ErrPhase
		return
	}

	if emu.cursor == NEXT_NONE {
		return
	}

	comp := emu.competitors[emu.cursor]
	addr := emu.core.Resolve(comp.Ip)

	err = cpu.Execute(emu.core, emu.core.Read(comp.Ip), comp)
	if err != nil {
		err = &ErrRuntime{Name: comp.Name, Address: addr, Err: err}
		return
	}

	if !comp.Alive {
		notice = &Notice{Name: comp.Name, Steps: comp.Steps - 1}
	}

	emu.advance()

	return
}

// Next executes up to count ticks, and returns the notices in execution
// order. It stops at the first error, returning the notices so far.
func (emu *Emulator) Next(count int) (notices []Notice, err error) {
	if emu.phase != PHASE_FIGHT {
		err = ErrPhase
		return
	}

	for range count {
		var notice *Notice
		notice, err = emu.Tick()
		if err != nil {
			return
		}
		if notice != nil {
			notices = append(notices, *notice)
		}
	}

	return
}
