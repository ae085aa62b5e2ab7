package nes

// nrom is mapper 0: no bank switching at all. PRG-ROM is either 16KiB,
// mirrored across both halves of $8000-$FFFF, or a full 32KiB filling it
// directly. CHR is a single fixed 8KiB bank, ROM or RAM.
type nrom struct {
	prg    []byte
	chr    []byte
	chrRAM bool
	ram    prgRAM
	mode   mirrorMode
}

func newNROM(prg, chr []byte, mode mirrorMode, hasPRGRAM bool) *nrom {
	m := &nrom{prg: prg, mode: mode, ram: newPrgRAM(hasPRGRAM)}
	if len(chr) == 0 {
		m.chr = newChrRAM()
		m.chrRAM = true
	} else {
		m.chr = chr
	}
	return m
}

func (m *nrom) cpuContains(addr uint16) bool {
	return addr >= 0x8000 || (m.ram.contains(addr))
}

func (m *nrom) cpuRead(addr uint16) byte {
	if m.ram.contains(addr) {
		return m.ram.read(addr)
	}
	return m.prg[int(addr-0x8000)%len(m.prg)]
}

func (m *nrom) cpuWrite(addr uint16, v byte) {
	if m.ram.contains(addr) {
		m.ram.write(addr, v)
	}
	// writes to $8000-$FFFF have no effect: NROM carries no registers.
}

func (m *nrom) ppuContains(addr uint16) bool { return addr < 0x2000 }

func (m *nrom) ppuRead(addr uint16) byte { return m.chr[addr] }

func (m *nrom) ppuWrite(addr uint16, v byte) {
	if m.chrRAM {
		m.chr[addr] = v
	}
}

func (m *nrom) mirror() mirrorMode { return m.mode }
