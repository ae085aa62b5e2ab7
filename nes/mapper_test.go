package nes

import "testing"

func TestNROM_MirrorsSixteenKiBPRG(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xAA
	prg[0x3FFF] = 0xBB

	m := newNROM(prg, nil, horizontal, false)

	if got := m.cpuRead(0x8000); got != 0xAA {
		t.Fatalf("$8000: got %#x, want %#x", got, 0xAA)
	}
	if got := m.cpuRead(0xC000); got != 0xAA {
		t.Fatalf("$C000 should mirror $8000: got %#x, want %#x", got, 0xAA)
	}
	if got := m.cpuRead(0xFFFF); got != 0xBB {
		t.Fatalf("$FFFF should mirror $BFFF: got %#x, want %#x", got, 0xBB)
	}
}

func TestNROM_PRGRAM(t *testing.T) {
	m := newNROM(make([]byte, 0x4000), nil, horizontal, true)

	m.cpuWrite(0x6000, 0x42)
	if got := m.cpuRead(0x6000); got != 0x42 {
		t.Fatalf("prg ram roundtrip: got %#x, want %#x", got, 0x42)
	}

	disabled := newNROM(make([]byte, 0x4000), nil, horizontal, false)
	if disabled.cpuContains(0x6000) {
		t.Fatalf("expected $6000 not to be claimed when prg ram is disabled")
	}
}

func TestNROM_CHRRAMWhenNoCHRSupplied(t *testing.T) {
	m := newNROM(make([]byte, 0x4000), nil, horizontal, false)

	m.ppuWrite(0x0000, 0x11)
	if got := m.ppuRead(0x0000); got != 0x11 {
		t.Fatalf("chr ram roundtrip: got %#x, want %#x", got, 0x11)
	}
}

func TestUxROM_BankSwitch(t *testing.T) {
	prg := make([]byte, 0x4000*3) // 3 16KiB banks
	prg[0*0x4000] = 0x01
	prg[1*0x4000] = 0x02
	prg[2*0x4000] = 0x03

	m := newUxROM(prg, nil, horizontal, false)

	// $C000 is hardwired to the last bank regardless of the selected low bank.
	if got := m.cpuRead(0xC000); got != 0x03 {
		t.Fatalf("$C000 before bank switch: got %#x, want %#x", got, 0x03)
	}

	m.cpuWrite(0x8000, 1)
	if got := m.cpuRead(0x8000); got != 0x02 {
		t.Fatalf("$8000 after selecting bank 1: got %#x, want %#x", got, 0x02)
	}
	if got := m.cpuRead(0xC000); got != 0x03 {
		t.Fatalf("$C000 after bank switch: got %#x, want %#x", got, 0x03)
	}
}

func TestUxROM_BankWriteWraps(t *testing.T) {
	prg := make([]byte, 0x4000*2)
	m := newUxROM(prg, nil, horizontal, false)

	m.cpuWrite(0x8000, 5) // only 2 banks exist, so 5 must wrap
	if m.bank >= 2 {
		t.Fatalf("expected the selected bank to wrap into range, got %d", m.bank)
	}
}

func TestCNROM_CHRBankSwitch(t *testing.T) {
	chr := make([]byte, 0x2000*2)
	chr[0*0x2000] = 0xAA
	chr[1*0x2000] = 0xBB

	m := newCNROM(make([]byte, 0x4000), chr, horizontal, false)

	if got := m.ppuRead(0x0000); got != 0xAA {
		t.Fatalf("bank 0 before switch: got %#x, want %#x", got, 0xAA)
	}

	m.cpuWrite(0x8000, 1)
	if got := m.ppuRead(0x0000); got != 0xBB {
		t.Fatalf("bank 1 after switch: got %#x, want %#x", got, 0xBB)
	}
}

func TestCNROM_CHRIsReadOnly(t *testing.T) {
	chr := make([]byte, 0x2000)
	chr[0] = 0x7E
	m := newCNROM(make([]byte, 0x4000), chr, horizontal, false)

	m.ppuWrite(0x0000, 0xFF)
	if got := m.ppuRead(0x0000); got != 0x7E {
		t.Fatalf("expected CHR-ROM write to be discarded, got %#x", got)
	}
}

func TestNewMapper_UnsupportedID(t *testing.T) {
	_, err := newMapper(99, make([]byte, 0x4000), nil, horizontal, false)
	if err == nil {
		t.Fatal("expected an UnsupportedMapperError for an unregistered mapper id")
	}
	if _, ok := err.(*UnsupportedMapperError); !ok {
		t.Fatalf("got error of type %T, want *UnsupportedMapperError", err)
	}
}

func TestResolveNametable(t *testing.T) {
	tests := []struct {
		name       string
		mode       mirrorMode
		addr       uint16
		wantTable  int
		wantOffset uint16
	}{
		{"horizontal low-low", horizontal, 0x2000, 0, 0},
		{"horizontal low-high", horizontal, 0x2400, 0, 0},
		{"horizontal high-low", horizontal, 0x2800, 1, 0},
		{"horizontal high-high", horizontal, 0x2C00, 1, 0},
		{"vertical low-low", vertical, 0x2000, 0, 0},
		{"vertical low-high", vertical, 0x2400, 1, 0},
		{"vertical high-low", vertical, 0x2800, 0, 0},
		{"vertical high-high", vertical, 0x2C00, 1, 0},
		{"mirrors above $2FFF", horizontal, 0x3000, 0, 0},
		{"offset is preserved", horizontal, 0x2001, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, offset := resolveNametable(tt.mode, tt.addr)
			if table != tt.wantTable || offset != tt.wantOffset {
				t.Errorf("resolveNametable(%v, %#x) = (%d, %#x), want (%d, %#x)",
					tt.mode, tt.addr, table, offset, tt.wantTable, tt.wantOffset)
			}
		})
	}
}
