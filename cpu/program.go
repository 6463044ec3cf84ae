package cpu

import (
	"iter"
)

// Line represents a line of assembled code with its source location and
// generated bytes.
type Line struct {
	LineNo    int      // Source line number.
	Addr      int      // Address of the first generated byte.
	Words     []string // Source words of the line.
	Bytes     []uint8  // Generated bytes.
	LinkLabel string   // Label to resolve into the last byte, if any.
}

// Program is an assembled listing.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug returns the listing line that generated the byte at addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(addr) >= line.Addr && int(addr) < line.Addr+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr) - line.Addr,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes spanned by the program.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Addr+len(line.Bytes))
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (image []uint8) {
	image = make([]uint8, prog.Size())
	for addr, value := range prog.Bytes() {
		image[addr] = value
	}

	return
}

// Bytes iterates over the address and value of each generated byte.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, value uint8) bool) {
		for _, line := range prog.Lines {
			addr := uint16(line.Addr)
			for n, value := range line.Bytes {
				if !yield(addr+uint16(n), value) {
					return
				}
			}
		}
	}
}
