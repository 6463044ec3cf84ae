package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/loader"
)

var asmCmd = &cobra.Command{
	Use:   "asm FILE",
	Short: "Assemble a source file to a .ls8 binary text image.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		name := args[0]

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return
		}

		asm := &cpu.Assembler{Verbose: getFlag(cmd, "verbose")}
		for equ, value := range emulator.NewEmulator().Defines() {
			asm.Predefine(equ, value)
		}

		_, prog, err := loader.LoadFile(name, asm)
		if err != nil {
			return
		}
		if prog == nil {
			err = &loader.ErrLoad{Name: name, Err: loader.ErrFormat}
			return
		}

		var ouf io.Writer = os.Stdout
		if output != "-" {
			var file *os.File
			file, err = os.Create(output)
			if err != nil {
				return
			}
			defer func() {
				cerr := file.Close()
				if err == nil {
					err = cerr
				}
			}()
			ouf = file
		}

		err = loader.Write(ouf, prog)
		return
	},
}

func init() {
	asmCmd.Flags().StringP("output", "o", "-", "output .ls8 file")
	rootCmd.AddCommand(asmCmd)
}
