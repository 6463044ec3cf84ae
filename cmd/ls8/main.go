// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/loader"
	"github.com/ezrec/ls8/translate"
)

// Process exit status, one per class of fault.
const (
	EXIT_OK       = 0
	EXIT_FAILURE  = 1
	EXIT_LOAD     = 2
	EXIT_OPCODE   = 3
	EXIT_ALU      = 4
	EXIT_DIVISION = 5
	EXIT_MEMORY   = 6
	EXIT_STACK    = 7
	EXIT_REGISTER = 8
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "ls8",
	Short:         "An emulator and assembler for the LS-8 CPU.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		lang, err := cmd.Flags().GetString("lang")
		if err == nil && len(lang) != 0 {
			translate.SetLanguage(lang)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("lang", "", "language of messages, as a BCP 47 tag")
}

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_FAILURE)
	}

	return r
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var el *loader.ErrLoad

	switch {
	case err == nil:
		return EXIT_OK
	case errors.As(err, &el):
		return EXIT_LOAD
	case errors.Is(err, cpu.ErrOpcodeUnknown), errors.Is(err, cpu.ErrOpcodeDecode):
		return EXIT_OPCODE
	case errors.Is(err, cpu.ErrOpcodeAlu):
		return EXIT_ALU
	case errors.Is(err, cpu.ErrDivision):
		return EXIT_DIVISION
	case errors.Is(err, cpu.ErrMemoryBounds(0)):
		return EXIT_MEMORY
	case errors.Is(err, cpu.ErrStackOverflow), errors.Is(err, cpu.ErrStackUnderflow):
		return EXIT_STACK
	case errors.Is(err, cpu.ErrRegisterInvalid):
		return EXIT_REGISTER
	default:
		return EXIT_FAILURE
	}
}

// newEmulator loads a program file into a freshly reset emulator.
func newEmulator(name string, verbose bool) (emu *emulator.Emulator, err error) {
	emu = emulator.NewEmulator()
	emu.Verbose = verbose

	asm := &cpu.Assembler{Verbose: verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	image, prog, err := loader.LoadFile(name, asm)
	if err != nil {
		return
	}
	if prog != nil {
		emu.Program = prog
	}

	err = emu.Reset(image)
	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}
}
