package cpu

// Stack is a full descending stack kept in Memory.
//
// Sp addresses the most recently pushed value. The stack is empty when Sp
// is at Base, and full when Sp has reached address 0.
type Stack struct {
	Sp   uint16 // Stack pointer.
	Base uint16 // Stack pointer of the empty stack.
}

// Push decrements the stack pointer, then writes value at the new address.
func (s *Stack) Push(mem *Memory, value uint8) (err error) {
	if s.Full() {
		err = ErrStackOverflow
		return
	}

	err = mem.Write(s.Sp-1, value)
	if err != nil {
		return
	}

	s.Sp--
	return
}

// Pop reads the value at the stack pointer, then increments it.
func (s *Stack) Pop(mem *Memory) (value uint8, err error) {
	if s.Empty() {
		err = ErrStackUnderflow
		return
	}

	value, err = mem.Read(s.Sp)
	if err != nil {
		return
	}

	s.Sp++
	return
}

// Peek returns the value on top of the stack without removing it.
func (s *Stack) Peek(mem *Memory) (value uint8, ok bool) {
	if s.Empty() {
		return
	}

	value, err := mem.Read(s.Sp)
	ok = err == nil
	return
}

func (s *Stack) Empty() bool {
	return s.Sp >= s.Base
}

func (s *Stack) Full() bool {
	return s.Sp == 0
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	if s.Empty() {
		return 0
	}
	return int(s.Base - s.Sp)
}

// Reset empties the stack at a new base address.
func (s *Stack) Reset(base uint16) {
	s.Base = base
	s.Sp = base
}
