// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"log"

	"github.com/ezrec/codefight/core"
)

// Execute executes a single instruction, fetched from the competitor's
// instruction pointer, on behalf of the competitor.
//
// All operand addresses are relative to the competitor's instruction
// pointer. Written cells are stamped with the competitor's symbols.
// On success the step counter is incremented exactly once.
func Execute(cr *core.Core, cell core.Cell, comp *Competitor) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(cell), err)
		}
	}()

	if !comp.Alive {
		return ErrStopped
	}

	ip := comp.Ip
	if comp.Verbose {
		log.Printf("%v %04d: %v", comp.Name, cr.Resolve(ip), cell)
	}

	sym := comp.Symbols
	a := int64(cell.A)
	b := int64(cell.B)

	next_ip := ip + 1

	switch cell.Opcode {
	case core.OP_STOP:
		comp.Alive = false
	case core.OP_MOV_R:
		src := cr.Read(ip + a)
		cr.Write(ip+b, src.Stamp(sym))
	case core.OP_MOV_I:
		src := cr.Read(ip + a)
		via := ip + b
		dst := via + int64(cr.Read(via).B)
		cr.Write(dst, src.Stamp(sym))
	case core.OP_ADD:
		sum := cell
		sum.B = cell.A + cell.B
		cr.Write(ip, sum.Stamp(sym))
	case core.OP_ADD_R:
		dst := cr.Read(ip + b)
		dst.B += cell.A
		cr.Write(ip+b, dst.Stamp(sym))
	case core.OP_JMP:
		next_ip = ip + a
	case core.OP_JMZ:
		if cr.Read(ip+b).B == 0 {
			next_ip = ip + a
		}
	case core.OP_CMP:
		if cr.Read(ip+a).A != cr.Read(ip+b).B {
			next_ip = ip + 2
		}
	case core.OP_SWAP:
		if a == b {
			one := cr.Read(ip + a)
			one.A, one.B = one.B, one.A
			cr.Write(ip+a, one.Stamp(sym))
		} else {
			first := cr.Read(ip + a)
			second := cr.Read(ip + b)
			first.A, second.B = second.B, first.A
			// Offsets that alias the same cell leave the second write in place.
			cr.Write(ip+a, first.Stamp(sym))
			cr.Write(ip+b, second.Stamp(sym))
		}
	default:
		return ErrUnknownCommand
	}

	if comp.Alive {
		comp.Ip = int64(cr.Resolve(next_ip))
	} else {
		comp.Ip = IP_STOPPED
	}
	comp.Steps++

	return
}
