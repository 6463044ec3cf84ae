package emulator

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(0, emu.LineNo())

	defines := maps.Collect(emu.Defines())
	assert.Equal("0", defines["PROGRAM_BASE"])
	assert.Equal("256", defines["MEMORY_SIZE"])
	assert.Equal("0xf3", defines["STACK_BASE"])
	assert.Equal("r7", defines["SP"])
}

func doAssemble(emu *Emulator, program []string, t *testing.T) (output *bytes.Buffer) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	err = emu.Reset(nil)
	assert.NoError(err)

	output = &bytes.Buffer{}
	emu.Output = output
	return
}

func TestEmulatorSingle(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"; print 8",
		"LDI r0 8",
		"",
		"PRN r0",
		"HLT",
	}
	output := doAssemble(emu, program, t)

	for _, line := range emu.Program.Lines[:2] {
		assert.Equal(line.LineNo, emu.LineNo())
		assert.Equal(uint16(line.Addr), emu.Cpu.Pc)
		done, err := emu.Tick()
		assert.NoError(err, program[line.LineNo-1])
		assert.False(done, program[line.LineNo-1])
	}

	assert.Equal(5, emu.LineNo())
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Cpu.Halted)
	assert.Equal("8\n", output.String())
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		".equ A 10",
		"LDI r0 A",
		"LDI r1 $(A * 2)",
		"PUSH r0",
		"PUSH r1",
		"POP r0",
		"POP r1",
		"SUB r0 r1",
		"PRN r0",
		"HLT",
	}
	output := doAssemble(emu, program, t)

	assert.NoError(emu.Run())
	assert.Equal("10\n", output.String())
	assert.Equal(uint8(10), emu.Cpu.Register[0])
	assert.Equal(uint8(10), emu.Cpu.Register[1])
	assert.Equal(uint16(cpu.STACK_BASE), emu.Cpu.Stack.Sp)
	assert.Equal(9, emu.Cpu.Ticks)

	// Reset reloads the listing.
	assert.NoError(emu.Reset(nil))
	assert.False(emu.Cpu.Halted)
	assert.Equal(uint16(0), emu.Cpu.Pc)
	assert.Equal(uint8(0), emu.Cpu.Register[0])

	output.Reset()
	assert.NoError(emu.Run())
	assert.Equal("10\n", output.String())
}

func TestEmulatorImage(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = nil

	output := &bytes.Buffer{}
	emu.Output = output

	image := cpu.Encode(cpu.OP_LDI, 2, 5)
	image = append(image, cpu.Encode(cpu.OP_LDI, 3, 7)...)
	image = append(image, cpu.Encode(cpu.OP_MUL, 2, 3)...)
	image = append(image, cpu.Encode(cpu.OP_PRN, 2)...)
	image = append(image, cpu.Encode(cpu.OP_HLT)...)

	assert.NoError(emu.Reset(image))
	assert.Equal(0, emu.LineNo())
	assert.NoError(emu.Run())
	assert.Equal("35\n", output.String())

	err := emu.Reset(make([]uint8, cpu.MEMORY_SIZE+1))
	assert.ErrorIs(err, cpu.ErrMemoryBounds(0))
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		pc      uint16
		err     error
	}){
		{"division", []string{"LDI r0 1", "LDI r1 0", "DIV r0 r1"}, 3, 6, cpu.ErrDivision},
		{"underflow", []string{"LDI r0 1", "POP r0"}, 2, 3, cpu.ErrStackUnderflow},
		{"register", []string{"PRN r0", ".db 0x47 9"}, 2, 2, cpu.ErrRegisterInvalid},
		{"unknown", []string{"LDI r0 1", ".db 0x00"}, 2, 3, cpu.ErrOpcodeUnknown},
	}

	for _, entry := range table {
		emu := NewEmulator()
		doAssemble(emu, entry.program, t)

		err := emu.Run()
		assert.ErrorIs(err, entry.err, entry.name)

		var rt *ErrRuntime
		if assert.True(errors.As(err, &rt), entry.name) {
			assert.Equal(entry.lineno, rt.LineNo, entry.name)
			assert.Equal(entry.pc, rt.Pc, entry.name)
		}

		assert.Equal(entry.pc, emu.Cpu.Pc, entry.name)
		assert.False(emu.Cpu.Halted, entry.name)
	}
}

func TestEmulatorVerbose(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Verbose = true
	doAssemble(emu, []string{"HLT"}, t)

	assert.True(emu.Cpu.Verbose)
	assert.NoError(emu.Run())
	assert.Equal(1, emu.Cpu.Ticks)
}
