package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt            = errors.New(f("halted"))
	ErrStackOverflow   = errors.New(f("stack overflow"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrDivision        = errors.New(f("division by zero"))

	// Instruction decode errors
	ErrOpcodeDecode  = errors.New(f("decode"))
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrOpcodeAlu     = errors.New(f("alu operation unsupported"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrValueRange         = errors.New(f("value out of range"))
	ErrProgramSize        = errors.New(f("program exceeds memory"))
)

// ErrMemoryBounds is the address of an out of range memory access.
type ErrMemoryBounds int

func (em ErrMemoryBounds) Error() string {
	return f("address 0x%x out of bounds", int(em))
}

func (em ErrMemoryBounds) Is(err error) (ok bool) {
	_, ok = err.(ErrMemoryBounds)
	return
}

// ErrOpcode annotates an execution fault with the faulting instruction.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", uint8(eo), Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
