package cpu

const (
	MEMORY_SIZE    = 256  // Bytes of addressable memory.
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_SP    = 7    // Register holding the stack pointer seed.
	STACK_BASE     = 0xf3 // Initial stack pointer.
)

// Memory is the byte addressable main memory.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint16) (value uint8, err error) {
	if int(addr) >= len(mem) {
		err = ErrMemoryBounds(addr)
		return
	}

	value = mem[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr uint16, value uint8) (err error) {
	if int(addr) >= len(mem) {
		err = ErrMemoryBounds(addr)
		return
	}

	mem[addr] = value
	return
}

// Load copies image into memory starting at base.
// Nothing is written if the image does not fit.
func (mem *Memory) Load(base uint16, image []uint8) (err error) {
	end := int(base) + len(image)
	if end > len(mem) {
		err = ErrMemoryBounds(len(mem))
		return
	}

	copy(mem[base:end], image)
	return
}
