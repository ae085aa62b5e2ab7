package nes

import "fmt"

// InvalidHeaderError reports a malformed iNES header.
type InvalidHeaderError struct {
	Reason string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("nes: invalid header: %s", e.Reason)
}

// UnsupportedMapperError reports a mapper id with no registered implementation.
type UnsupportedMapperError struct {
	ID byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("nes: unsupported mapper %d", e.ID)
}

// InvalidPrgSizeError reports a PRG-ROM body that disagrees with the header.
type InvalidPrgSizeError struct {
	Want, Got int
}

func (e *InvalidPrgSizeError) Error() string {
	return fmt.Sprintf("nes: invalid prg size: want %d, got %d", e.Want, e.Got)
}

// InvalidChrSizeError reports a CHR-ROM body that disagrees with the header.
type InvalidChrSizeError struct {
	Want, Got int
}

func (e *InvalidChrSizeError) Error() string {
	return fmt.Sprintf("nes: invalid chr size: want %d, got %d", e.Want, e.Got)
}

// AddressOutOfRangeError reports an access outside a bank's declared range.
// The MMU is responsible for never presenting such an address to a bank; seeing
// this error means a bank was probed directly, or the MMU's registration is wrong.
type AddressOutOfRangeError struct {
	Addr uint16
}

func (e *AddressOutOfRangeError) Error() string {
	return fmt.Sprintf("nes: address out of range: $%04X", e.Addr)
}

// BusFaultError reports an address with no responsible device on the bus.
type BusFaultError struct {
	Addr uint16
}

func (e *BusFaultError) Error() string {
	return fmt.Sprintf("nes: bus fault: no device at $%04X", e.Addr)
}

// UnknownOpcodeError reports an opcode byte with no decode table entry.
type UnknownOpcodeError struct {
	Byte byte
	PC   uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("nes: unknown opcode $%02X at $%04X", e.Byte, e.PC)
}

// UnstableOpcodeError reports an undocumented opcode whose real-hardware
// behavior depends on analog bus conditions this emulator does not model
// (AHX, TAS, SHX, SHY, LAS, immediate-mode LAX, KIL and friends). nestest
// never exercises these; a host that needs them has to supply its own
// best-effort semantics.
type UnstableOpcodeError struct {
	Family string
	Byte   byte
	PC     uint16
}

func (e *UnstableOpcodeError) Error() string {
	return fmt.Sprintf("nes: unstable opcode %s ($%02X) at $%04X has no modeled behavior", e.Family, e.Byte, e.PC)
}
