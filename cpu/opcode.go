package cpu

import (
	"fmt"
)

// Opcode is a single LS-8 instruction byte.
//
// The bit layout is AABCDDDD:
//   - AA: number of operand bytes following the opcode.
//   - B: set if the instruction is executed by the ALU.
//   - C: set if the instruction writes the PC.
//   - DDDD: instruction identifier.
type Opcode uint8

const (
	OP_HLT  = Opcode(0b0000_0001) // hlt
	OP_LDI  = Opcode(0b1000_0010) // ldi
	OP_PRN  = Opcode(0b0100_0111) // prn
	OP_PUSH = Opcode(0b0100_0101) // push
	OP_POP  = Opcode(0b0100_0110) // pop
	OP_ADD  = Opcode(0b1010_0000) // add
	OP_SUB  = Opcode(0b1010_0001) // sub
	OP_MUL  = Opcode(0b1010_0010) // mul
	OP_DIV  = Opcode(0b1010_0011) // div
)

const (
	OPCODE_OPERANDS_SHIFT = 6            // Shift of the operand count.
	OPCODE_ALU            = Opcode(0x20) // ALU class bit.
	OPCODE_SETS_PC        = Opcode(0x10) // PC writer bit.
	OPCODE_ID_MASK        = Opcode(0x0f) // Instruction identifier.
	OPCODE_OPERANDS_MAX   = 2            // Largest decodable operand count.
)

// CodeAluOp is an ALU operation selector.
type CodeAluOp int

const (
	ALU_OP_ADD = CodeAluOp(0) // add
	ALU_OP_SUB = CodeAluOp(1) // sub
	ALU_OP_MUL = CodeAluOp(2) // mul
	ALU_OP_DIV = CodeAluOp(3) // div
)

var aluOpNames = map[CodeAluOp]string{
	ALU_OP_ADD: "add",
	ALU_OP_SUB: "sub",
	ALU_OP_MUL: "mul",
	ALU_OP_DIV: "div",
}

func (op CodeAluOp) String() string {
	name, ok := aluOpNames[op]
	if !ok {
		return fmt.Sprintf("CodeAluOp(%d)", int(op))
	}
	return name
}

var opcodeNames = map[Opcode]string{
	OP_HLT:  "HLT",
	OP_LDI:  "LDI",
	OP_PRN:  "PRN",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
}

// Operands returns the number of operand bytes that follow the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// IsAlu returns true if the opcode is dispatched to the ALU.
func (op Opcode) IsAlu() bool {
	return (op & OPCODE_ALU) != 0
}

// SetsPc returns true if the opcode claims to write the PC.
func (op Opcode) SetsPc() bool {
	return (op & OPCODE_SETS_PC) != 0
}

// AluDecode returns the ALU operation selected by the identifier bits.
func (op Opcode) AluDecode() CodeAluOp {
	return CodeAluOp(op & OPCODE_ID_MASK)
}

// String returns the assembler mnemonic, or the hex value when unknown.
func (op Opcode) String() string {
	name, ok := opcodeNames[op]
	if !ok {
		return fmt.Sprintf("0x%02x", uint8(op))
	}
	return name
}

// Encode returns the bytes of a single instruction.
func Encode(op Opcode, operands ...uint8) (code []uint8) {
	code = make([]uint8, 0, 1+len(operands))
	code = append(code, uint8(op))
	code = append(code, operands...)
	return
}
