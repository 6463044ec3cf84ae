package cpu

// alu executes an ALU class instruction on the registers indexed by reg_a
// and reg_b, storing the result in reg_a.
func (cpu *Cpu) alu(ir Opcode, reg_a, reg_b uint8) (err error) {
	// Only two-register forms exist, none of which write the PC.
	if ir.Operands() != 2 || ir.SetsPc() {
		err = ErrOpcodeAlu
		return
	}

	a, err := cpu.register(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.register(reg_b)
	if err != nil {
		return
	}

	output, err := doAlu(ir.AluDecode(), *a, *b)
	if err != nil {
		return
	}

	*a = output
	return
}

// doAlu performs the requested ALU action, and returns the output value.
// Results wrap at the 8-bit register width.
func doAlu(op CodeAluOp, input uint8, value uint8) (output uint8, err error) {
	switch op {
	case ALU_OP_ADD: // add
		output = input + value
	case ALU_OP_SUB: // sub
		output = input - value
	case ALU_OP_MUL: // mul
		output = input * value
	case ALU_OP_DIV: // div
		if value == 0 {
			err = ErrDivision
			return
		}
		output = input / value
	default:
		err = ErrOpcodeAlu
	}

	return
}
