// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The CPU consists of a program counter (PC), 256 bytes of memory, eight
// 8-bit general-purpose registers (r0-r7), an ALU, and a full descending
// stack held in memory. Register r7 seeds the stack pointer at reset.
//
// Each Tick fetches the instruction byte at PC together with the two bytes
// that follow it, decodes the operand count from the top two bits, and
// executes the instruction either on the ALU or through the branch table.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting labels, equates, data bytes and compile-time expression
// evaluation.
package cpu
