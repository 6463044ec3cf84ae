package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a program until it halts.",
	Long: `Run a program until it halts.
FILE is a .ls8 binary text image, a .bin raw image, or a .asm source.
PRN output is written to stdout, one value per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trace := getFlag(cmd, "trace")
		if trace {
			log.SetLevel(log.DebugLevel)
		}

		emu, err := newEmulator(args[0], trace)
		if err != nil {
			return err
		}
		emu.Output = os.Stdout

		return emu.Run()
	},
}

func init() {
	runCmd.Flags().BoolP("trace", "t", false, "log a trace line before each instruction")
	rootCmd.AddCommand(runCmd)
}
