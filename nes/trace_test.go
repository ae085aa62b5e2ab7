package nes

import (
	"bytes"
	"testing"
)

// TestDisassemble_LDAImmediate pins the nestest-format trace line for a
// single instruction against a literal expected string: address, raw bytes,
// mnemonic, operand, and the fixed-column register/PPU/cycle footer.
func TestDisassemble_LDAImmediate(t *testing.T) {
	bus := newSysBus(nil, nil, nil, nil, nil)
	bus.write(0x0001, 0x2A)

	var buf bytes.Buffer
	disassemble(&buf, bus, 0x0000, 0x00, 0x00, 0x00, 0x24, 0xFD, instructions[0xA9], 0, 0, 7, nil)

	want := "0000  A9 2A     LDA #$2A                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0,  0 CYC:7\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

// busAccess is one observed read or write, in the order the cpu issued it.
type busAccess struct {
	addr  uint16
	write bool
}

// accessRecorder wraps a memBank and appends every access it serves to a
// shared log, so a test can assert on the exact sequence of bus traffic an
// instruction generates instead of only its end state.
type accessRecorder struct {
	bank *memBank
	log  *[]busAccess
}

func (d accessRecorder) contains(addr uint16) bool { return d.bank.contains(addr) }

func (d accessRecorder) read(addr uint16) byte {
	v, _ := d.bank.read(addr)
	*d.log = append(*d.log, busAccess{addr: addr})
	return v
}

func (d accessRecorder) write(addr uint16, v byte) {
	_ = d.bank.write(addr, v)
	*d.log = append(*d.log, busAccess{addr: addr, write: true})
}

// LDA $13FF,X with X=1 crosses a page: the 6502 always pays for that crossing
// with a dummy read at the un-carried address before the real one lands on
// the carried address. This is the access sequence, not just the end state.
func TestBusAccessSequence_IndexedXPageCross(t *testing.T) {
	ppu := &PPU{ScanLine: 261}
	apu := &APU{}
	bus := newSysBus(nil, ppu, apu, nil, nil)

	var log []busAccess
	bus.devices[0] = accessRecorder{bank: bus.ram, log: &log}

	bus.write(0x0000, 0xBD) // LDA $13FF,X
	bus.write(0x0001, 0xFF)
	bus.write(0x0002, 0x13)
	log = nil // the writes above shouldn't count toward the traced instruction

	c := newCpu(nil, ppu, apu)
	c.x = 1
	c.pc = 0x0000
	c.execute(bus)

	want := []busAccess{
		{addr: 0x0000}, // opcode fetch
		{addr: 0x0001}, // operand low byte
		{addr: 0x0002}, // operand high byte
		{addr: 0x1300}, // dummy read at the un-carried address
		{addr: 0x1400}, // real read at the carried, page-crossed address
	}

	if len(log) != len(want) {
		t.Fatalf("got %d accesses, want %d: %+v", len(log), len(want), log)
	}
	for i, w := range want {
		if log[i] != w {
			t.Fatalf("access %d: got %+v, want %+v", i, log[i], w)
		}
	}
}
