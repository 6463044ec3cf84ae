// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator couples the LS-8 CPU with the listing of the program it
// runs, so that faults can be reported against source lines.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
)

const (
	PROGRAM_BASE = 0 // Load address of program images.
)

var _emulator_defines = map[string]string{
	"PROGRAM_BASE": fmt.Sprintf("%v", PROGRAM_BASE),
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU, and load the image into memory.
// A nil image loads the binary of the program listing.
func (emu *Emulator) Reset(image []uint8) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	if image == nil && emu.Program != nil {
		image = emu.Program.Binary()
	}

	emu.Cpu.Reset()

	err = emu.Cpu.Load(image)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Debugf("emulator: reset with %d byte image", len(image))
	}

	return
}

// LineNo returns the source line number for the instruction at the PC,
// or 0 if the listing does not cover it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the CPU halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Debugf("emulator: halted after %d ticks", emu.Cpu.Ticks)
	}

	return
}
