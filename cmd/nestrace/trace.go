package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/flga/nes6502/internal/hostlog"
	"github.com/flga/nes6502/nes"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	var (
		pcFlag     string
		outPath    string
		goldenPath string
		logLevel   string
		steps      uint64
	)

	cmd := &cobra.Command{
		Use:   "trace <rom>",
		Short: "Run a ROM and emit a nestest-format instruction trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := hostlog.Init(hostlog.LevelFromString(logLevel), ""); err != nil {
				return err
			}
			defer hostlog.Close()

			var pc uint16
			if pcFlag != "" {
				v, err := strconv.ParseUint(pcFlag, 0, 16)
				if err != nil {
					return fmt.Errorf("invalid --pc %q: %w", pcFlag, err)
				}
				pc = uint16(v)
			}

			rom, err := loadRom(args[0])
			if err != nil {
				return err
			}
			defer rom.Close()

			cartridge, err := nes.LoadINES(rom)
			if err != nil {
				return fmt.Errorf("unable to load rom: %w", err)
			}
			hostlog.Info("loaded %s", args[0])

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("unable to create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			var golden *bufio.Scanner
			if goldenPath != "" {
				g, err := os.Open(goldenPath)
				if err != nil {
					return fmt.Errorf("unable to open golden log: %w", err)
				}
				defer g.Close()
				golden = bufio.NewScanner(g)
			}

			return runTrace(cartridge, pc, out, golden, steps)
		},
	}

	cmd.Flags().StringVar(&pcFlag, "pc", "", "force the program counter instead of using the reset vector (e.g. 0xC000)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the trace to this file instead of stdout")
	cmd.Flags().StringVar(&goldenPath, "golden", "", "diff the trace against this golden log, line by line")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "off, error, warn, info, or debug")
	cmd.Flags().Uint64Var(&steps, "steps", 5000, "instruction limit when no --golden log bounds the run (0 = unlimited)")

	return cmd
}

// runTrace drives the console one instruction at a time, writing a trace
// line per step to out as it is produced. When golden is non-nil, each line
// is also compared with the next golden line, so the run stops at the first
// mismatch and reports the line number instead of running to completion and
// dumping an unreadable full diff. Without a golden log the run is bounded by steps
// instead, since nothing else would ever stop it.
func runTrace(cartridge *nes.Cartridge, pc uint16, out io.Writer, golden *bufio.Scanner, steps uint64) error {
	buf := &bytes.Buffer{}
	console := nes.NewConsole(cartridge, pc, io.MultiWriter(out, buf))

	var lineNo uint64
	for {
		if golden != nil {
			if !golden.Scan() {
				break
			}
		} else if steps != 0 && lineNo >= steps {
			break
		}

		buf.Reset()
		console.Step()
		lineNo++

		if fault := console.Fault(); fault != nil {
			return fmt.Errorf("line %d: %w", lineNo, fault)
		}

		if golden != nil {
			want := append(golden.Bytes(), '\n')
			if !bytes.Equal(buf.Bytes(), want) {
				return fmt.Errorf("line %d: trace mismatch\n  want: %q\n  got:  %q", lineNo, want, buf.Bytes())
			}
		}
	}

	if golden != nil {
		if err := golden.Err(); err != nil {
			return fmt.Errorf("reading golden log: %w", err)
		}
	}

	return nil
}
