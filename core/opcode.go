package core

// Opcode is the instruction kind stored in a core cell.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_STOP  = Opcode(0) // STOP
	OP_MOV_R = Opcode(1) // MOV_R
	OP_MOV_I = Opcode(2) // MOV_I
	OP_ADD   = Opcode(3) // ADD
	OP_ADD_R = Opcode(4) // ADD_R
	OP_JMP   = Opcode(5) // JMP
	OP_JMZ   = Opcode(6) // JMZ
	OP_CMP   = Opcode(7) // CMP
	OP_SWAP  = Opcode(8) // SWAP
)

// Opcodes is the ordered opcode table. Seeded initialization draws from it
// by index, so the order is part of the reproducible memory layout.
var Opcodes = [...]Opcode{
	OP_STOP,
	OP_MOV_R,
	OP_MOV_I,
	OP_ADD,
	OP_ADD_R,
	OP_JMP,
	OP_JMZ,
	OP_CMP,
	OP_SWAP,
}

// Valid returns true if the opcode is one of the nine known opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_STOP && op <= OP_SWAP
}

// ParseOpcode returns the opcode with the given symbolic name.
func ParseOpcode(name string) (op Opcode, ok bool) {
	for _, op = range Opcodes {
		if op.String() == name {
			ok = true
			return
		}
	}

	op = Opcode(-1)
	return
}
