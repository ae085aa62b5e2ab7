// Command nestrace is the terminal-first front door for the CPU core: a
// conformance run or a ROM inspection, with no GUI shell since there is
// nothing to draw without full PPU rendering.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "nestrace",
		Short:         "Run and inspect iNES ROMs against the 6502 core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTraceCmd())
	root.AddCommand(newInfoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nestrace:", err)
		os.Exit(2)
	}
}

func loadRom(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open rom: %w", err)
	}
	return f, nil
}
