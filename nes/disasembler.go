package nes

import (
	"fmt"
	"io"
	"strings"
)

// disassemble writes one nestest-format trace line for the instruction about
// to execute: address, raw bytes, mnemonic with its resolved operand, and a
// fixed-column register/PPU/cycle footer. bus reads for display purposes
// only (showing an operand's effective value) must never be the reads that
// drive emulation, since those have already happened in resolveAddress.
func disassemble(out io.Writer, bus *sysBus,
	instPC uint16, a, x, y, p, sp byte,
	inst instruction, intermediateAddr, resolvedAddr uint16, cycles uint64, ppu *PPU) {
	var strlen int

	n, _ := fmt.Fprintf(out, "%04X  ", instPC)
	strlen += n

	switch inst.size {
	case 1:
		n, _ := fmt.Fprintf(out, "%02X      ", inst.opcode)
		strlen += n
	case 2:
		n, _ := fmt.Fprintf(out, "%02X %02X   ", inst.opcode, bus.read(instPC+1))
		strlen += n
	case 3:
		n, _ := fmt.Fprintf(out, "%02X %02X %02X", inst.opcode, bus.read(instPC+1), bus.read(instPC+2))
		strlen += n
	}

	if inst.illegal {
		n, _ := fmt.Fprint(out, " *")
		strlen += n
	} else {
		n, _ := fmt.Fprint(out, "  ")
		strlen += n
	}

	n, _ = fmt.Fprint(out, inst.name, " ")
	strlen += n

	switch inst.mode {
	case accumulator:
		n, _ := fmt.Fprint(out, "A")
		strlen += n
	case implied:
	default:
		var arg uint16
		switch inst.mode {
		case immediate, zeroPage, zeroPageIndexedX, zeroPageIndexedY, preIndexedIndirect, postIndexedIndirect:
			arg = uint16(bus.read(instPC + 1))
		case absolute, indirect, indexedX, indexedY:
			arg = uint16(bus.read(instPC+1)) | uint16(bus.read(instPC+2))<<8
		case relative:
			arg = resolvedAddr
		}

		n, _ := fmt.Fprintf(out, addressingFormats[inst.mode], arg)
		strlen += n

		switch inst.mode {
		case indirect:
			n, _ := fmt.Fprintf(out, " = %04X", resolvedAddr)
			strlen += n
		case zeroPage, absolute:
			if inst.name != "JMP" && inst.name != "JSR" {
				n, _ := fmt.Fprintf(out, " = %02X", peekForDisplay(bus, resolvedAddr))
				strlen += n
			}
		case indexedX, indexedY:
			n, _ := fmt.Fprintf(out, " @ %04X = %02X", resolvedAddr, peekForDisplay(bus, resolvedAddr))
			strlen += n
		case zeroPageIndexedX, zeroPageIndexedY:
			n, _ := fmt.Fprintf(out, " @ %02X = %02X", resolvedAddr, peekForDisplay(bus, resolvedAddr))
			strlen += n
		case preIndexedIndirect:
			n, _ := fmt.Fprintf(out, " @ %02X = %04X = %02X", intermediateAddr, resolvedAddr, peekForDisplay(bus, resolvedAddr))
			strlen += n
		case postIndexedIndirect:
			n, _ := fmt.Fprintf(out, " = %04X @ %04X = %02X", intermediateAddr, resolvedAddr, peekForDisplay(bus, resolvedAddr))
			strlen += n
		}
	}

	if strlen < 48 {
		fmt.Fprint(out, strings.Repeat(" ", 48-strlen))
	}

	var col, scanLine int
	if ppu != nil {
		col, scanLine = ppu.Dot, ppu.ScanLine
	}
	fmt.Fprintf(out, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n", a, x, y, p, sp, col, scanLine, cycles)
}

// peekForDisplay reads a byte purely to print it on a trace line. PPU
// registers are read-triggered: $2002 clears VBlank and the address-latch
// toggle, $2007 auto-increments v. A trace line must not cause any of that,
// so peeking a PPU-register address reports zero instead of touching it.
func peekForDisplay(bus *sysBus, addr uint16) byte {
	if addr >= 0x2000 && addr <= 0x3FFF {
		return 0
	}
	return bus.read(addr)
}

var addressingFormats = map[addressingMode]string{
	immediate:           "#$%02X",    // #aa
	absolute:            "$%04X",     // aaaa
	zeroPage:             "$%02X",     // aa
	implied:              "",          //
	indirect:             "($%04X)",   // (aaaa)
	indexedX:             "$%04X,X",   // aaaa,X
	indexedY:             "$%04X,Y",   // aaaa,Y
	zeroPageIndexedX:     "$%02X,X",   // aa,X
	zeroPageIndexedY:     "$%02X,Y",   // aa,Y
	preIndexedIndirect:   "($%02X,X)", // (aa,X)
	postIndexedIndirect:  "($%02X),Y", // (aa),Y
	relative:             "$%04X",     // aaaa
	accumulator:          "A",         // A
}
