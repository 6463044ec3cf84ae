package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Opcode
		name     string
		operands int
		alu      bool
	}){
		{OP_HLT, "HLT", 0, false},
		{OP_LDI, "LDI", 2, false},
		{OP_PRN, "PRN", 1, false},
		{OP_PUSH, "PUSH", 1, false},
		{OP_POP, "POP", 1, false},
		{OP_ADD, "ADD", 2, true},
		{OP_SUB, "SUB", 2, true},
		{OP_MUL, "MUL", 2, true},
		{OP_DIV, "DIV", 2, true},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.op.String())
		assert.Equal(entry.operands, entry.op.Operands(), entry.name)
		assert.Equal(entry.alu, entry.op.IsAlu(), entry.name)
		assert.False(entry.op.SetsPc(), entry.name)
	}

	assert.Equal(ALU_OP_ADD, OP_ADD.AluDecode())
	assert.Equal(ALU_OP_SUB, OP_SUB.AluDecode())
	assert.Equal(ALU_OP_MUL, OP_MUL.AluDecode())
	assert.Equal(ALU_OP_DIV, OP_DIV.AluDecode())
	assert.Equal("mul", OP_MUL.AluDecode().String())
	assert.Equal("CodeAluOp(15)", CodeAluOp(15).String())

	assert.Equal("0x4f", Opcode(0x4f).String())
	assert.Equal(3, Opcode(0xff).Operands())
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]uint8{0x01}, Encode(OP_HLT))
	assert.Equal([]uint8{0x82, 0x03, 0x42}, Encode(OP_LDI, 3, 0x42))
	assert.Equal([]uint8{0xa2, 0x00, 0x01}, Encode(OP_MUL, 0, 1))
}

func TestMnemonicMap(t *testing.T) {
	assert := assert.New(t)

	for name, mn := range mnemonicMap {
		assert.Equal(name, mn.Op.String())
		assert.Equal(mn.Op.Operands(), len(mn.Args), name)
	}
	assert.Equal(len(opcodeNames), len(mnemonicMap))
}
