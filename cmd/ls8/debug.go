package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

const debugHelp = `step (s)      execute one instruction
continue (c)  run until halt or fault
regs (r)      show the registers
trace (t)     show the trace line
mem (m)       dump memory
reset         reload the program
quit (q)      leave the debugger
`

var debugCmd = &cobra.Command{
	Use:   "debug FILE",
	Short: "Step through a program interactively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		emu, err := newEmulator(args[0], false)
		if err != nil {
			return err
		}

		return debugger(emu)
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}

// debugger runs the interactive prompt on the controlling terminal.
func debugger(emu *emulator.Emulator) (err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("invalid terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	terminal := term.NewTerminal(screen, "ls8> ")

	emu.Output = terminal
	image := emu.Cpu.Memory

	fmt.Fprint(terminal, debugHelp)

	var fault error
	for {
		var line string
		line, err = terminal.ReadLine()
		if err == io.EOF {
			err = fault
			return
		}
		if err != nil {
			return
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "s", "step":
			fault = debugTick(terminal, emu, 1)
		case "c", "continue":
			fault = debugTick(terminal, emu, -1)
		case "r", "regs":
			fmt.Fprint(terminal, emu.Cpu.String())
		case "t", "trace":
			fmt.Fprintln(terminal, emu.Cpu.Trace())
		case "m", "mem":
			fmt.Fprint(terminal, hex.Dump(emu.Cpu.Memory[:]))
		case "reset":
			fault = emu.Reset(image[:])
		case "q", "quit":
			err = fault
			return
		case "h", "help":
			fmt.Fprint(terminal, debugHelp)
		default:
			fmt.Fprintf(terminal, "%v: unknown command\n", words[0])
		}
	}
}

// debugTick runs up to count instructions, or until done when count is
// negative, reporting where the CPU stopped.
func debugTick(w io.Writer, emu *emulator.Emulator, count int) (err error) {
	for n := 0; count < 0 || n < count; n++ {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		if done {
			fmt.Fprintf(w, "halted at 0x%02x after %d ticks\n", emu.Cpu.Pc, emu.Cpu.Ticks)
			return
		}
	}

	fmt.Fprintf(w, "%v 0x%02x: %v\n", emu.LineNo(), emu.Cpu.Pc, cpu.Opcode(emu.Cpu.Memory[emu.Cpu.Pc%cpu.MEMORY_SIZE]))
	return
}
