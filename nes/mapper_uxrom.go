package nes

// uxrom is mapper 2: PRG-ROM banked in 16KiB windows. $8000-$BFFF selects
// one of bankCount 16KiB banks via the low bits of any write to $8000-$FFFF;
// $C000-$FFFF is hardwired to the last bank. A UxROM board has no CHR-ROM
// pins, so CHR is RAM unless the header supplied a CHR-ROM image anyway.
type uxrom struct {
	prg       []byte
	bank      byte
	bankCount byte
	chr       []byte
	chrRAM    bool
	ram       prgRAM
	mode      mirrorMode
}

func newUxROM(prg, chr []byte, mode mirrorMode, hasPRGRAM bool) *uxrom {
	m := &uxrom{
		prg:       prg,
		bankCount: byte(len(prg) / 0x4000),
		mode:      mode,
		ram:       newPrgRAM(hasPRGRAM),
	}
	if len(chr) > 0 {
		// a handful of UxROM boards are wired with CHR-ROM in practice;
		// honor it read-only if the header supplied one.
		m.chr = chr
	} else {
		m.chr = newChrRAM()
		m.chrRAM = true
	}
	return m
}

func (m *uxrom) cpuContains(addr uint16) bool { return addr >= 0x6000 }

func (m *uxrom) cpuRead(addr uint16) byte {
	if m.ram.contains(addr) {
		return m.ram.read(addr)
	}
	if addr >= 0xC000 {
		last := m.bankCount - 1
		return m.prg[int(last)*0x4000+int(addr-0xC000)]
	}
	return m.prg[int(m.bank)*0x4000+int(addr-0x8000)]
}

func (m *uxrom) cpuWrite(addr uint16, v byte) {
	if m.ram.contains(addr) {
		m.ram.write(addr, v)
		return
	}
	if addr >= 0x8000 {
		m.bank = v % m.bankCount
	}
}

func (m *uxrom) ppuContains(addr uint16) bool { return addr < 0x2000 }

func (m *uxrom) ppuRead(addr uint16) byte { return m.chr[addr] }

func (m *uxrom) ppuWrite(addr uint16, v byte) {
	if m.chrRAM {
		m.chr[addr] = v
	}
}

func (m *uxrom) mirror() mirrorMode { return m.mode }
