package main

import (
	"fmt"

	"github.com/flga/nes6502/nes"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <rom>",
		Short: "Print an iNES header's parsed fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := loadRom(args[0])
			if err != nil {
				return err
			}
			defer rom.Close()

			cartridge, err := nes.LoadINES(rom)
			if err != nil {
				return fmt.Errorf("unable to load rom: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "mapper:      %d\n", cartridge.Mapper)
			fmt.Fprintf(cmd.OutOrStdout(), "mirroring:   %v\n", cartridge.MirrorMode)
			fmt.Fprintf(cmd.OutOrStdout(), "save ram:    %v\n", cartridge.SaveRAM)
			fmt.Fprintf(cmd.OutOrStdout(), "four screen: %v\n", cartridge.FourScreen)
			fmt.Fprintf(cmd.OutOrStdout(), "trainer:     %v\n", len(cartridge.Trainer) > 0)

			return nil
		},
	}

	return cmd
}
