package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"strings"

	log "github.com/sirupsen/logrus"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_BASE":  fmt.Sprintf("0x%x", STACK_BASE),
	"SP":          fmt.Sprintf("r%d", REGISTER_SP),
}

// branchTable maps the non-ALU opcodes to their handlers. Handlers read
// their operands relative to the PC of the executing instruction.
var branchTable = map[Opcode]func(cpu *Cpu) error{
	OP_HLT:  (*Cpu).handleHlt,
	OP_LDI:  (*Cpu).handleLdi,
	OP_PRN:  (*Cpu).handlePrn,
	OP_PUSH: (*Cpu).handlePush,
	OP_POP:  (*Cpu).handlePop,
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable per-instruction trace logging.

	Memory   Memory                // Main memory.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Pc       uint16                // Address of the next instruction.
	Ir       Opcode                // Most recently fetched instruction.
	Stack    Stack                 // Stack pointer state.
	Halted   bool                  // Set once HLT has executed.

	Ticks int // Instructions executed since reset.

	Output io.Writer // Destination of PRN output.
}

// NewCpu creates a new CPU in the reset state, discarding PRN output.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output: io.Discard,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears memory and the register bank.
// - Seeds r7 with the stack base, and empties the stack from it.
// - Sets the PC to address 0.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debugf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[REGISTER_SP] = STACK_BASE
	cpu.Stack.Reset(uint16(cpu.Register[REGISTER_SP]))

	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load copies a program image into memory at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	err = cpu.Memory.Load(0, image)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Debugf("cpu: loaded %d bytes", len(image))
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %02X %v\n", "ir", uint8(cpu.Ir), cpu.Ir)
	text += fmt.Sprintf("% 5s: %02X\n", "sp", cpu.Stack.Sp)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), val)
	}

	return
}

// Trace returns the PC, the three bytes at PC, and the register bank
// in a single line. Bytes beyond memory show as '--'.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Pc)
	for n := range uint16(3) {
		value, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			sb.WriteString(" --")
		} else {
			fmt.Fprintf(&sb, " %02X", value)
		}
	}
	sb.WriteString(" |")
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// FetchCode fetches the instruction at the PC, and the two bytes that
// follow it. The operand bytes are read whether or not the instruction
// uses them.
func (cpu *Cpu) FetchCode() (ir Opcode, operand_a, operand_b uint8, err error) {
	code, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}
	ir = Opcode(code)

	operand_a, err = cpu.Memory.Read(cpu.Pc + 1)
	if err != nil {
		return
	}

	operand_b, err = cpu.Memory.Read(cpu.Pc + 2)
	if err != nil {
		return
	}

	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrHalt once the CPU has halted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalt
		return
	}

	ir, operand_a, operand_b, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(ir, operand_a, operand_b)

	return
}

// Run ticks the CPU until it halts or faults.
// A halt is a normal termination, and returns nil.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrHalt) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Execute executes a single decoded instruction located at the PC.
//
// The PC advances past the instruction and its decoded operands, except
// for HLT, which leaves the PC unchanged and returns ErrHalt.
func (cpu *Cpu) Execute(ir Opcode, operand_a, operand_b uint8) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrHalt) {
			err = errors.Join(ErrOpcode(ir), err)
		}
	}()

	if cpu.Verbose {
		log.WithField("tick", cpu.Ticks).Debug(cpu.Trace())
	}

	cpu.Ir = ir

	operands := ir.Operands()
	if operands > OPCODE_OPERANDS_MAX {
		err = ErrOpcodeDecode
		return
	}

	if ir.IsAlu() {
		err = cpu.alu(ir, operand_a, operand_b)
	} else {
		handler, ok := branchTable[ir]
		if !ok {
			err = ErrOpcodeUnknown
			return
		}
		err = handler(cpu)
	}

	switch {
	case errors.Is(err, ErrHalt):
		cpu.Halted = true
		cpu.Ticks++
		return
	case err != nil:
		return
	}

	cpu.Pc += 1 + uint16(operands)
	cpu.Ticks++

	return
}

// operand reads the n'th byte following the instruction at the PC.
func (cpu *Cpu) operand(n uint16) (value uint8, err error) {
	return cpu.Memory.Read(cpu.Pc + n)
}

// register returns the register for an operand index.
func (cpu *Cpu) register(index uint8) (reg *uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	reg = &cpu.Register[index]
	return
}

// registerOperand returns the register named by the n'th operand byte.
func (cpu *Cpu) registerOperand(n uint16) (reg *uint8, err error) {
	index, err := cpu.operand(n)
	if err != nil {
		return
	}

	reg, err = cpu.register(index)
	return
}

func (cpu *Cpu) handleHlt() (err error) {
	if cpu.Verbose {
		log.Debugf("cpu: halt at 0x%02x", cpu.Pc)
	}

	return ErrHalt
}

// handleLdi sets a register to an immediate value.
func (cpu *Cpu) handleLdi() (err error) {
	reg, err := cpu.registerOperand(1)
	if err != nil {
		return
	}

	value, err := cpu.operand(2)
	if err != nil {
		return
	}

	*reg = value
	return
}

// handlePrn writes the decimal value of a register to the output.
func (cpu *Cpu) handlePrn() (err error) {
	reg, err := cpu.registerOperand(1)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(cpu.Output, "%d\n", *reg)
	return
}

func (cpu *Cpu) handlePush() (err error) {
	reg, err := cpu.registerOperand(1)
	if err != nil {
		return
	}

	err = cpu.Stack.Push(&cpu.Memory, *reg)
	return
}

func (cpu *Cpu) handlePop() (err error) {
	reg, err := cpu.registerOperand(1)
	if err != nil {
		return
	}

	value, err := cpu.Stack.Pop(&cpu.Memory)
	if err != nil {
		return
	}

	*reg = value
	return
}
