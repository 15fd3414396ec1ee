package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellStamp(t *testing.T) {
	assert := assert.New(t)

	sym := Symbols{Standard: "A", Bomb: "a"}

	tests := []struct {
		cell  Cell
		owner string
	}{
		{Cell{Opcode: OP_STOP, A: 4, B: 2}, "a"},
		{Cell{Opcode: OP_JMP, A: 0, B: 7}, "a"},
		{Cell{Opcode: OP_JMP, A: 1, B: 0}, "A"},
		{Cell{Opcode: OP_JMZ, A: 0, B: 0}, "a"},
		{Cell{Opcode: OP_JMZ, A: 0, B: 1}, "A"},
		{Cell{Opcode: OP_JMZ, A: 1, B: 0}, "A"},
		{Cell{Opcode: OP_ADD, A: 0, B: 0}, "A"},
		{Cell{Opcode: OP_MOV_R, A: 0, B: 1, Owner: "B"}, "A"},
	}

	for _, test := range tests {
		stamped := test.cell.Stamp(sym)
		assert.Equal(test.owner, stamped.Owner, test.cell.String())
		assert.Equal(test.cell.Opcode, stamped.Opcode)
		assert.Equal(test.cell.A, stamped.A)
		assert.Equal(test.cell.B, stamped.B)
	}
}

func TestCellString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("MOV_I|-3|12", Cell{Opcode: OP_MOV_I, A: -3, B: 12}.String())
	assert.Equal("STOP|0|0", Cell{}.String())
}

func TestParseOpcode(t *testing.T) {
	assert := assert.New(t)

	for n, op := range Opcodes {
		assert.Equal(Opcode(n), op)
		parsed, ok := ParseOpcode(op.String())
		assert.True(ok)
		assert.Equal(op, parsed)
		assert.True(op.Valid())
	}

	_, ok := ParseOpcode("NOP")
	assert.False(ok)
	_, ok = ParseOpcode("mov_r")
	assert.False(ok)

	assert.False(Opcode(9).Valid())
	assert.Equal("Opcode(9)", Opcode(9).String())
}

func TestParseInitMode(t *testing.T) {
	assert := assert.New(t)

	mode, ok := ParseInitMode("INIT_MODE_RANDOM")
	assert.True(ok)
	assert.Equal(INIT_MODE_RANDOM, mode)
	assert.True(mode.Seeded())

	mode, ok = ParseInitMode("INIT_MODE_STOP")
	assert.True(ok)
	assert.Equal(INIT_MODE_STOP, mode)
	assert.False(mode.Seeded())

	_, ok = ParseInitMode("INIT_MODE_ZERO")
	assert.False(ok)
}
