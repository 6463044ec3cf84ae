package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Lines: []Line{
			{LineNo: 1, Addr: 0, Words: []string{"LDI", "r0", "8"},
				Bytes: Encode(OP_LDI, 0, 8)},
			{LineNo: 2, Addr: 3, Words: []string{"PRN", "r0"},
				Bytes: Encode(OP_PRN, 0)},
			{LineNo: 4, Addr: 5, Words: []string{"HLT"},
				Bytes: Encode(OP_HLT)},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	table := [](struct {
		addr   uint16
		lineno int
		index  int
	}){
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 0},
		{4, 2, 1},
		{5, 4, 0},
	}

	for _, entry := range table {
		dbg := prog.Debug(entry.addr)
		if assert.NotNil(dbg.Line) {
			assert.Equal(entry.lineno, dbg.LineNo)
			assert.Equal(entry.index, dbg.Index)
		}
	}
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(6)
	assert.Nil(dbg.Line)
	assert.Equal(0, dbg.Index)

	dbg = (&Program{}).Debug(0)
	assert.Nil(dbg.Line)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Equal(6, prog.Size())
	assert.Equal([]uint8{0x82, 0, 8, 0x47, 0, 0x01}, prog.Binary())
	assert.Equal([]uint8{}, (&Program{}).Binary())
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var addrs []uint16
	for addr, value := range prog.Bytes() {
		addrs = append(addrs, addr)
		if addr == 3 {
			assert.Equal(uint8(OP_PRN), value)
			break
		}
	}

	assert.Equal([]uint16{0, 1, 2, 3}, addrs)
}
