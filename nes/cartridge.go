package nes

import (
	"bytes"
	"encoding/binary"
	"io"
)

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

const (
	trainerLen = 512
	prgUnit    = 1024 * 16
	chrUnit    = 1024 * 8
)

const (
	flag6Mirror = 1 << iota
	flag6SaveRAM
	flag6Trainer
	flag6FourScreen
)

// inesHeader is the 16-byte header every iNES image opens with. The eight
// trailing bytes after Flags7 (PRG-RAM size, TV system, padding) are read
// but not interpreted; nothing in this emulator's scope depends on them.
type inesHeader struct {
	Magic    [4]byte
	PRGBanks byte
	CHRBanks byte
	Flags6   byte
	Flags7   byte
	_        [8]byte
}

// Cartridge owns the parsed contents of an iNES ROM image and the mapper
// selected for it. It carries no banking logic of its own: every CPU/PPU
// access is delegated to the mapper named by the header's mapper id.
type Cartridge struct {
	Mapper     byte
	MirrorMode mirrorMode
	SaveRAM    bool
	FourScreen bool
	Trainer    []byte

	m mapper
}

// LoadINES parses an iNES-format ROM image and constructs the mapper it
// names. The returned error is always one of InvalidHeaderError,
// InvalidPrgSizeError, InvalidChrSizeError, or UnsupportedMapperError; no
// other failure mode escapes this function.
func LoadINES(r io.Reader) (*Cartridge, error) {
	var h inesHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, &InvalidHeaderError{Reason: "short header: " + err.Error()}
	}
	if !bytes.Equal(h.Magic[:], inesMagic[:]) {
		return nil, &InvalidHeaderError{Reason: `missing "NES\x1A" magic`}
	}
	if h.PRGBanks == 0 {
		return nil, &InvalidHeaderError{Reason: "zero PRG-ROM banks"}
	}

	c := &Cartridge{
		Mapper:     h.Flags6>>4 | (h.Flags7 & 0xF0),
		SaveRAM:    h.Flags6&flag6SaveRAM != 0,
		FourScreen: h.Flags6&flag6FourScreen != 0,
	}
	switch {
	case c.FourScreen:
		c.MirrorMode = fourScreen
	case h.Flags6&flag6Mirror != 0:
		c.MirrorMode = vertical
	default:
		c.MirrorMode = horizontal
	}

	if h.Flags6&flag6Trainer != 0 {
		c.Trainer = make([]byte, trainerLen)
		if _, err := io.ReadFull(r, c.Trainer); err != nil {
			return nil, &InvalidHeaderError{Reason: "short trainer: " + err.Error()}
		}
	}

	prgWant := int(h.PRGBanks) * prgUnit
	prg := make([]byte, prgWant)
	if n, err := io.ReadFull(r, prg); err != nil {
		return nil, &InvalidPrgSizeError{Want: prgWant, Got: n}
	}

	var chr []byte
	if h.CHRBanks > 0 {
		chrWant := int(h.CHRBanks) * chrUnit
		chr = make([]byte, chrWant)
		if n, err := io.ReadFull(r, chr); err != nil {
			return nil, &InvalidChrSizeError{Want: chrWant, Got: n}
		}
	}

	m, err := newMapper(c.Mapper, prg, chr, c.MirrorMode, c.SaveRAM)
	if err != nil {
		return nil, err
	}
	c.m = m
	return c, nil
}

func (c *Cartridge) cpuContains(addr uint16) bool { return c.m.cpuContains(addr) }
func (c *Cartridge) cpuRead(addr uint16) byte     { return c.m.cpuRead(addr) }
func (c *Cartridge) cpuWrite(addr uint16, v byte) { c.m.cpuWrite(addr, v) }
func (c *Cartridge) ppuContains(addr uint16) bool { return c.m.ppuContains(addr) }
func (c *Cartridge) ppuRead(addr uint16) byte     { return c.m.ppuRead(addr) }
func (c *Cartridge) ppuWrite(addr uint16, v byte) { c.m.ppuWrite(addr, v) }
