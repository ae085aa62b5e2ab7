package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/flga/nes6502/nes"
)

// buildNROM assembles a minimal one-bank iNES image (mapper 0, no CHR, no
// trainer) with the reset vector set to resetPC. The PRG bank mirrors across
// $8000-$FFFF, so $FFFC lands at offset len(prg)-4.
func buildNROM(resetPC uint16) []byte {
	const prgSize = 16 * 1024
	prg := make([]byte, prgSize)
	prg[prgSize-4] = byte(resetPC)
	prg[prgSize-3] = byte(resetPC >> 8)
	prg[0] = 0xEA // NOP, so a run without a golden log has something to step through

	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	return append(header, prg...)
}

func loadTestCartridge(t *testing.T, resetPC uint16) *nes.Cartridge {
	t.Helper()
	cart, err := nes.LoadINES(bytes.NewReader(buildNROM(resetPC)))
	if err != nil {
		t.Fatalf("LoadINES: %v", err)
	}
	return cart
}

func TestRunTrace_StepLimitWithoutGolden(t *testing.T) {
	cart := loadTestCartridge(t, 0x8000)

	var out bytes.Buffer
	if err := runTrace(cart, 0, &out, nil, 3); err != nil {
		t.Fatalf("runTrace: %v", err)
	}

	lines := bytes.Count(out.Bytes(), []byte("\n"))
	if lines != 3 {
		t.Fatalf("expected 3 trace lines, got %d:\n%s", lines, out.String())
	}
}

func TestRunTrace_GoldenMatch(t *testing.T) {
	cart := loadTestCartridge(t, 0x8000)

	var first bytes.Buffer
	if err := runTrace(cart, 0, &first, nil, 1); err != nil {
		t.Fatalf("runTrace (capture): %v", err)
	}

	cart = loadTestCartridge(t, 0x8000)
	golden := bufio.NewScanner(bytes.NewReader(first.Bytes()))
	var out bytes.Buffer
	if err := runTrace(cart, 0, &out, golden, 0); err != nil {
		t.Fatalf("runTrace (replay against its own capture): %v", err)
	}
	if out.String() != first.String() {
		t.Fatalf("replay diverged from capture:\n got:  %q\n want: %q", out.String(), first.String())
	}
}

func TestRunTrace_GoldenMismatch(t *testing.T) {
	cart := loadTestCartridge(t, 0x8000)
	golden := bufio.NewScanner(bytes.NewReader([]byte("this is not a real trace line\n")))

	var out bytes.Buffer
	err := runTrace(cart, 0, &out, golden, 0)
	if err == nil {
		t.Fatal("expected a trace mismatch error")
	}
}

func TestLoadRom_MissingFile(t *testing.T) {
	if _, err := loadRom(filepath.Join(t.TempDir(), "missing.nes")); err == nil {
		t.Fatal("expected an error opening a nonexistent rom")
	}
}

func TestLoadRom_OpensExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.nes")
	if err := os.WriteFile(path, buildNROM(0x8000), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := loadRom(path)
	if err != nil {
		t.Fatalf("loadRom: %v", err)
	}
	f.Close()
}
