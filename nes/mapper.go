package nes

// mirrorMode selects how the two physical nametables are mapped onto the
// four logical nametable slots the PPU address space exposes.
type mirrorMode int

const (
	horizontal mirrorMode = iota
	vertical
	fourScreen
)

func (m mirrorMode) String() string {
	switch m {
	case horizontal:
		return "horizontal"
	case vertical:
		return "vertical"
	case fourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// resolveNametable maps a PPU nametable address ($2000-$3EFF; only its low 12
// bits are used, so $3000-$3EFF lands where $2000-$2EFF does) to a physical
// table index (0 or 1) and an offset within that table, per the mirroring mode. fourScreen is treated as
// horizontal here since this implementation does not carry the extra 2KiB of
// nametable RAM four-screen boards require; see DESIGN.md.
func resolveNametable(mode mirrorMode, addr uint16) (table int, offset uint16) {
	addr &= 0x0FFF
	logical := addr / 0x0400
	offset = addr % 0x0400

	switch mode {
	case vertical:
		table = int(logical) % 2
	default: // horizontal, fourScreen
		table = int(logical) / 2
	}
	return table, offset
}

// mapper is the cartridge's view of the world: it decides how CPU and PPU
// address-space accesses land in PRG-ROM, CHR-ROM/RAM, PRG-RAM, and the two
// physical nametables. Mapper variants form a closed set; each is a plain
// struct implementing this narrow capability set rather than a subclass of
// some shared cartridge base, per the flat tagged-variant design a 6502
// mapper bank is small enough to afford.
type mapper interface {
	cpuContains(addr uint16) bool
	cpuRead(addr uint16) byte
	cpuWrite(addr uint16, v byte)

	ppuContains(addr uint16) bool
	ppuRead(addr uint16) byte
	ppuWrite(addr uint16, v byte)

	mirror() mirrorMode
}

// newMapper builds the mapper implementation for the given iNES mapper id.
// Unknown ids fail construction with UnsupportedMapperError, matching the
// iNES loader's contract: a ROM naming a mapper this emulator does not carry
// must be rejected outright rather than silently treated as NROM.
func newMapper(id byte, prg, chr []byte, mirror mirrorMode, hasPRGRAM bool) (mapper, error) {
	switch id {
	case 0:
		return newNROM(prg, chr, mirror, hasPRGRAM), nil
	case 2:
		return newUxROM(prg, chr, mirror, hasPRGRAM), nil
	case 3:
		return newCNROM(prg, chr, mirror, hasPRGRAM), nil
	default:
		return nil, &UnsupportedMapperError{ID: id}
	}
}

// prgRAM is the 8KiB window at $6000-$7FFF most mappers expose when the
// header declares battery/work RAM. Shared by value across mapper structs
// since none of NROM/UxROM/CNROM bank it.
type prgRAM struct {
	data []byte
}

func newPrgRAM(enabled bool) prgRAM {
	if !enabled {
		return prgRAM{}
	}
	return prgRAM{data: make([]byte, 0x2000)}
}

func (r prgRAM) contains(addr uint16) bool {
	return len(r.data) > 0 && addr >= 0x6000 && addr < 0x8000
}

func (r prgRAM) read(addr uint16) byte {
	return r.data[addr-0x6000]
}

func (r prgRAM) write(addr uint16, v byte) {
	r.data[addr-0x6000] = v
}

// newChrRAM is what NROM and UxROM substitute for CHR-ROM when the header
// declares chr_rom_size==0; it is the only CHR storage they allow to be
// written. CNROM never substitutes it and its CHR is read-only.
func newChrRAM() []byte {
	return make([]byte, 0x2000)
}
