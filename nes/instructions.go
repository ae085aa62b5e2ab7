package nes

// addressingMode identifies how an instruction's operand bytes are turned
// into the effective address (or value) the instruction acts on. The 6502
// has thirteen of these; each opcode in opcodeTable names exactly one.
//
// Two of them, indexedX and indexedY, carry a timing wrinkle worth calling
// out once instead of on every constant: resolving base+index can carry out
// of the base's page. Read instructions in that mode pay a one-cycle
// penalty only when the carry actually happens (the CPU speculatively reads
// the un-carried address first and throws the result away); write and
// read-modify-write instructions always pay it, since the bus access
// pattern is fixed regardless of whether the carry was needed. pageCycles
// on an instruction row records the speculative case; kind decides whether
// it's conditional.
type addressingMode byte

const (
	// immediate: the operand is the byte right after the opcode.
	immediate addressingMode = iota

	// zeroPage: a 1-byte operand addresses $0000-$00FF directly.
	zeroPage

	// absolute: a 2-byte little-endian operand addresses the full $0000-$FFFF range.
	absolute

	// relative: a signed 1-byte operand is added to the program counter;
	// used exclusively by the branch instructions.
	relative

	// implied: the instruction has no operand bytes; whatever it acts on is
	// fixed by the opcode itself (a register, a flag, the stack).
	implied

	// accumulator: like implied, but specifically targets A. Kept distinct
	// from implied so the disassembler can print "A" as the operand.
	accumulator

	// indexedX: absolute plus X, see the addressingMode doc for the page-cross rule.
	indexedX

	// indexedY: absolute plus Y, see the addressingMode doc for the page-cross rule.
	indexedY

	// zeroPageIndexedX: zeroPage plus X; the addition wraps within the zero page,
	// it never carries into page one.
	zeroPageIndexedX

	// zeroPageIndexedY: zeroPage plus Y, same zero-page wraparound as zeroPageIndexedX.
	// Used only by LDX/STX/LAX/SAX family opcodes.
	zeroPageIndexedY

	// indirect: the 2-byte operand points at a 2-byte pointer to the real
	// target. Used only by JMP, and only by JMP does the famous page-boundary
	// fetch bug apply (see resolveIndirect).
	indirect

	// preIndexedIndirect ("indexed indirect", (zp,X)): add X to a zero-page
	// operand first (wrapping in the zero page), then read a 2-byte pointer
	// from the result.
	preIndexedIndirect

	// postIndexedIndirect ("indirect indexed", (zp),Y): read a 2-byte pointer
	// from a zero-page operand first, then add Y to that pointer.
	postIndexedIndirect
)

type instructionKind byte

const (
	_ instructionKind = iota
	read
	write
	readModWrite
)

// instruction is one resolved row of the opcode table: everything the
// fetch/decode/execute loop needs to know about a single opcode byte.
type instruction struct {
	opcode     byte
	name       string
	mode       addressingMode
	kind       instructionKind
	size       byte
	cycles     byte
	pageCycles byte
	illegal    bool
}

// operandForm is one opcode's addressing-mode row within a mnemonicGroup:
// everything about a single (mnemonic, mode) pairing except the mnemonic
// itself, which the enclosing group supplies.
type operandForm struct {
	opcode     byte
	mode       addressingMode
	size       byte
	cycles     byte
	pageCycles byte
	kind       instructionKind
	illegal    bool
}

// mnemonicGroup gathers every opcode byte that shares a mnemonic. The 6502
// datasheet is organized this way - one entry per instruction, one row per
// addressing mode that instruction supports - and opcodeTable mirrors that
// rather than a flat, opcode-ordered listing.
type mnemonicGroup struct {
	name  string
	forms []operandForm
}

// opcodeTable is the full 256-entry 6502/2A03 instruction set, including the
// undocumented opcodes a handful of commercial ROMs rely on (SLO, RLA, SRE,
// RRA, SAX, LAX, DCP, ISB/ISC, ANC, ALR, ARR, AXS/SBX, XAA, AHX, TAS, SHX,
// SHY, LAS, and the illegal NOP/SBC duplicates). Every byte value appears
// in exactly one form across the table; init() below expands it into the
// flat, opcode-indexed array the CPU actually dispatches from.
var opcodeTable = []mnemonicGroup{
	{"ADC", []operandForm{
		{opcode: 0x69, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0x65, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0x75, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0x6D, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0x7D, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x79, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x61, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0x71, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"AHX", []operandForm{
		{opcode: 0x93, mode: postIndexedIndirect, cycles: 6, illegal: true},
		{opcode: 0x9F, mode: indexedY, cycles: 5, illegal: true},
	}},
	{"ALR", []operandForm{
		{opcode: 0x4B, mode: immediate, cycles: 2, illegal: true},
	}},
	{"ANC", []operandForm{
		{opcode: 0x0B, mode: immediate, cycles: 2, illegal: true},
		{opcode: 0x2B, mode: immediate, cycles: 2, illegal: true},
	}},
	{"AND", []operandForm{
		{opcode: 0x29, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0x25, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0x35, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0x2D, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0x3D, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x39, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x21, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0x31, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"ARR", []operandForm{
		{opcode: 0x6B, mode: immediate, cycles: 2, illegal: true},
	}},
	{"ASL", []operandForm{
		{opcode: 0x0A, mode: accumulator, size: 1, cycles: 2, kind: readModWrite},
		{opcode: 0x06, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite},
		{opcode: 0x16, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite},
		{opcode: 0x0E, mode: absolute, size: 3, cycles: 6, kind: readModWrite},
		{opcode: 0x1E, mode: indexedX, size: 3, cycles: 7, kind: readModWrite},
	}},
	{"AXS", []operandForm{
		{opcode: 0xCB, mode: immediate, cycles: 2, illegal: true},
	}},
	{"BCC", []operandForm{{opcode: 0x90, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BCS", []operandForm{{opcode: 0xB0, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BEQ", []operandForm{{opcode: 0xF0, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BIT", []operandForm{
		{opcode: 0x24, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0x2C, mode: absolute, size: 3, cycles: 4, kind: read},
	}},
	{"BMI", []operandForm{{opcode: 0x30, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BNE", []operandForm{{opcode: 0xD0, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BPL", []operandForm{{opcode: 0x10, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BRK", []operandForm{{opcode: 0x00, mode: implied, size: 2, cycles: 7}}},
	{"BVC", []operandForm{{opcode: 0x50, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"BVS", []operandForm{{opcode: 0x70, mode: relative, size: 2, cycles: 2, pageCycles: 1}}},
	{"CLC", []operandForm{{opcode: 0x18, mode: implied, size: 1, cycles: 2}}},
	{"CLD", []operandForm{{opcode: 0xD8, mode: implied, size: 1, cycles: 2}}},
	{"CLI", []operandForm{{opcode: 0x58, mode: implied, size: 1, cycles: 2}}},
	{"CLV", []operandForm{{opcode: 0xB8, mode: implied, size: 1, cycles: 2}}},
	{"CMP", []operandForm{
		{opcode: 0xC9, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0xC5, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0xD5, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0xCD, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0xDD, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0xD9, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0xC1, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0xD1, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"CPX", []operandForm{
		{opcode: 0xE0, mode: immediate, size: 2, cycles: 2},
		{opcode: 0xE4, mode: zeroPage, size: 2, cycles: 3},
		{opcode: 0xEC, mode: absolute, size: 3, cycles: 4},
	}},
	{"CPY", []operandForm{
		{opcode: 0xC0, mode: immediate, size: 2, cycles: 2},
		{opcode: 0xC4, mode: zeroPage, size: 2, cycles: 3},
		{opcode: 0xCC, mode: absolute, size: 3, cycles: 4},
	}},
	{"DCP", []operandForm{
		{opcode: 0xC3, mode: preIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0xC7, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite, illegal: true},
		{opcode: 0xCF, mode: absolute, size: 3, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0xD3, mode: postIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0xD7, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0xDB, mode: indexedY, size: 3, cycles: 7, kind: readModWrite, illegal: true},
		{opcode: 0xDF, mode: indexedX, size: 3, cycles: 7, kind: readModWrite, illegal: true},
	}},
	{"DEC", []operandForm{
		{opcode: 0xC6, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite},
		{opcode: 0xD6, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite},
		{opcode: 0xCE, mode: absolute, size: 3, cycles: 6, kind: readModWrite},
		{opcode: 0xDE, mode: indexedX, size: 3, cycles: 7, kind: readModWrite},
	}},
	{"DEX", []operandForm{{opcode: 0xCA, mode: implied, size: 1, cycles: 2}}},
	{"DEY", []operandForm{{opcode: 0x88, mode: implied, size: 1, cycles: 2}}},
	{"EOR", []operandForm{
		{opcode: 0x49, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0x45, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0x55, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0x4D, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0x5D, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x59, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x41, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0x51, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"INC", []operandForm{
		{opcode: 0xE6, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite},
		{opcode: 0xF6, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite},
		{opcode: 0xEE, mode: absolute, size: 3, cycles: 6, kind: readModWrite},
		{opcode: 0xFE, mode: indexedX, size: 3, cycles: 7, kind: readModWrite},
	}},
	{"INX", []operandForm{{opcode: 0xE8, mode: implied, size: 1, cycles: 2}}},
	{"INY", []operandForm{{opcode: 0xC8, mode: implied, size: 1, cycles: 2}}},
	{"ISB", []operandForm{
		{opcode: 0xE3, mode: preIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0xE7, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite, illegal: true},
		{opcode: 0xEF, mode: absolute, size: 3, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0xF3, mode: postIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0xF7, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0xFB, mode: indexedY, size: 3, cycles: 7, kind: readModWrite, illegal: true},
		{opcode: 0xFF, mode: indexedX, size: 3, cycles: 7, kind: readModWrite, illegal: true},
	}},
	{"JMP", []operandForm{
		{opcode: 0x4C, mode: absolute, size: 3, cycles: 3},
		{opcode: 0x6C, mode: indirect, size: 3, cycles: 5},
	}},
	{"JSR", []operandForm{{opcode: 0x20, mode: absolute, size: 3, cycles: 6}}},
	{"KIL", []operandForm{
		{opcode: 0x02, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x12, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x22, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x32, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x42, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x52, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x62, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x72, mode: implied, cycles: 2, illegal: true},
		{opcode: 0x92, mode: implied, cycles: 2, illegal: true},
		{opcode: 0xB2, mode: implied, cycles: 2, illegal: true},
		{opcode: 0xD2, mode: implied, cycles: 2, illegal: true},
		{opcode: 0xF2, mode: implied, cycles: 2, illegal: true},
	}},
	{"LAS", []operandForm{
		{opcode: 0xBB, mode: indexedY, cycles: 4, pageCycles: 1, illegal: true},
	}},
	{"LAX", []operandForm{
		{opcode: 0xA3, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read, illegal: true},
		{opcode: 0xA7, mode: zeroPage, size: 2, cycles: 3, kind: read, illegal: true},
		{opcode: 0xAF, mode: absolute, size: 3, cycles: 4, kind: read, illegal: true},
		{opcode: 0xB3, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0xB7, mode: zeroPageIndexedY, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0xBF, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0xAB, mode: immediate, cycles: 2, kind: read, illegal: true},
	}},
	{"LDA", []operandForm{
		{opcode: 0xA9, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0xA5, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0xB5, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0xAD, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0xBD, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0xB9, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0xA1, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0xB1, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"LDX", []operandForm{
		{opcode: 0xA2, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0xA6, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0xB6, mode: zeroPageIndexedY, size: 2, cycles: 4, kind: read},
		{opcode: 0xAE, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0xBE, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
	}},
	{"LDY", []operandForm{
		{opcode: 0xA0, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0xA4, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0xB4, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0xAC, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0xBC, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
	}},
	{"LSR", []operandForm{
		{opcode: 0x4A, mode: accumulator, size: 1, cycles: 2, kind: readModWrite},
		{opcode: 0x46, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite},
		{opcode: 0x56, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite},
		{opcode: 0x4E, mode: absolute, size: 3, cycles: 6, kind: readModWrite},
		{opcode: 0x5E, mode: indexedX, size: 3, cycles: 7, kind: readModWrite},
	}},
	{"NOP", []operandForm{
		{opcode: 0xEA, mode: implied, size: 1, cycles: 2, kind: read},
		{opcode: 0x04, mode: zeroPage, size: 2, cycles: 3, kind: read, illegal: true},
		{opcode: 0x44, mode: zeroPage, size: 2, cycles: 3, kind: read, illegal: true},
		{opcode: 0x64, mode: zeroPage, size: 2, cycles: 3, kind: read, illegal: true},
		{opcode: 0x0C, mode: absolute, size: 3, cycles: 4, kind: read, illegal: true},
		{opcode: 0x14, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0x34, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0x54, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0x74, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0xD4, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0xF4, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read, illegal: true},
		{opcode: 0x1A, mode: implied, size: 1, cycles: 2, kind: read, illegal: true},
		{opcode: 0x3A, mode: implied, size: 1, cycles: 2, kind: read, illegal: true},
		{opcode: 0x5A, mode: implied, size: 1, cycles: 2, kind: read, illegal: true},
		{opcode: 0x7A, mode: implied, size: 1, cycles: 2, kind: read, illegal: true},
		{opcode: 0xDA, mode: implied, size: 1, cycles: 2, kind: read, illegal: true},
		{opcode: 0xFA, mode: implied, size: 1, cycles: 2, kind: read, illegal: true},
		{opcode: 0x80, mode: immediate, size: 2, cycles: 2, kind: read, illegal: true},
		{opcode: 0x82, mode: immediate, cycles: 2, kind: read, illegal: true},
		{opcode: 0x89, mode: immediate, cycles: 2, kind: read, illegal: true},
		{opcode: 0xC2, mode: immediate, cycles: 2, kind: read, illegal: true},
		{opcode: 0xE2, mode: immediate, cycles: 2, kind: read, illegal: true},
		{opcode: 0x1C, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0x3C, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0x5C, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0x7C, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0xDC, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
		{opcode: 0xFC, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read, illegal: true},
	}},
	{"ORA", []operandForm{
		{opcode: 0x09, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0x05, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0x15, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0x0D, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0x1D, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x19, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0x01, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0x11, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"PHA", []operandForm{{opcode: 0x48, mode: implied, size: 1, cycles: 3}}},
	{"PHP", []operandForm{{opcode: 0x08, mode: implied, size: 1, cycles: 3}}},
	{"PLA", []operandForm{{opcode: 0x68, mode: implied, size: 1, cycles: 4}}},
	{"PLP", []operandForm{{opcode: 0x28, mode: implied, size: 1, cycles: 4}}},
	{"RLA", []operandForm{
		{opcode: 0x23, mode: preIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x27, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite, illegal: true},
		{opcode: 0x2F, mode: absolute, size: 3, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x33, mode: postIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x37, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x3B, mode: indexedY, size: 3, cycles: 7, kind: readModWrite, illegal: true},
		{opcode: 0x3F, mode: indexedX, size: 3, cycles: 7, kind: readModWrite, illegal: true},
	}},
	{"ROL", []operandForm{
		{opcode: 0x2A, mode: accumulator, size: 1, cycles: 2, kind: readModWrite},
		{opcode: 0x26, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite},
		{opcode: 0x36, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite},
		{opcode: 0x2E, mode: absolute, size: 3, cycles: 6, kind: readModWrite},
		{opcode: 0x3E, mode: indexedX, size: 3, cycles: 7, kind: readModWrite},
	}},
	{"ROR", []operandForm{
		{opcode: 0x6A, mode: accumulator, size: 1, cycles: 2, kind: readModWrite},
		{opcode: 0x66, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite},
		{opcode: 0x76, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite},
		{opcode: 0x6E, mode: absolute, size: 3, cycles: 6, kind: readModWrite},
		{opcode: 0x7E, mode: indexedX, size: 3, cycles: 7, kind: readModWrite},
	}},
	{"RRA", []operandForm{
		{opcode: 0x63, mode: preIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x67, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite, illegal: true},
		{opcode: 0x6F, mode: absolute, size: 3, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x73, mode: postIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x77, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x7B, mode: indexedY, size: 3, cycles: 7, kind: readModWrite, illegal: true},
		{opcode: 0x7F, mode: indexedX, size: 3, cycles: 7, kind: readModWrite, illegal: true},
	}},
	{"RTI", []operandForm{{opcode: 0x40, mode: implied, size: 1, cycles: 6}}},
	{"RTS", []operandForm{{opcode: 0x60, mode: implied, size: 1, cycles: 6}}},
	{"SAX", []operandForm{
		{opcode: 0x83, mode: preIndexedIndirect, size: 2, cycles: 6, kind: write, illegal: true},
		{opcode: 0x87, mode: zeroPage, size: 2, cycles: 3, kind: write, illegal: true},
		{opcode: 0x8F, mode: absolute, size: 3, cycles: 4, kind: write, illegal: true},
		{opcode: 0x97, mode: zeroPageIndexedY, size: 2, cycles: 4, kind: write, illegal: true},
	}},
	{"SBC", []operandForm{
		{opcode: 0xE9, mode: immediate, size: 2, cycles: 2, kind: read},
		{opcode: 0xEB, mode: immediate, size: 2, cycles: 2, kind: read, illegal: true},
		{opcode: 0xE5, mode: zeroPage, size: 2, cycles: 3, kind: read},
		{opcode: 0xF5, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: read},
		{opcode: 0xED, mode: absolute, size: 3, cycles: 4, kind: read},
		{opcode: 0xFD, mode: indexedX, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0xF9, mode: indexedY, size: 3, cycles: 4, pageCycles: 1, kind: read},
		{opcode: 0xE1, mode: preIndexedIndirect, size: 2, cycles: 6, kind: read},
		{opcode: 0xF1, mode: postIndexedIndirect, size: 2, cycles: 5, pageCycles: 1, kind: read},
	}},
	{"SEC", []operandForm{{opcode: 0x38, mode: implied, size: 1, cycles: 2}}},
	{"SED", []operandForm{{opcode: 0xF8, mode: implied, size: 1, cycles: 2}}},
	{"SEI", []operandForm{{opcode: 0x78, mode: implied, size: 1, cycles: 2}}},
	{"SHX", []operandForm{{opcode: 0x9E, mode: indexedY, cycles: 5, kind: write, illegal: true}}},
	{"SHY", []operandForm{{opcode: 0x9C, mode: indexedX, cycles: 5, kind: write, illegal: true}}},
	{"SLO", []operandForm{
		{opcode: 0x03, mode: preIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x07, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite, illegal: true},
		{opcode: 0x0F, mode: absolute, size: 3, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x13, mode: postIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x17, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x1B, mode: indexedY, size: 3, cycles: 7, kind: readModWrite, illegal: true},
		{opcode: 0x1F, mode: indexedX, size: 3, cycles: 7, kind: readModWrite, illegal: true},
	}},
	{"SRE", []operandForm{
		{opcode: 0x43, mode: preIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x47, mode: zeroPage, size: 2, cycles: 5, kind: readModWrite, illegal: true},
		{opcode: 0x4F, mode: absolute, size: 3, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x53, mode: postIndexedIndirect, size: 2, cycles: 8, kind: readModWrite, illegal: true},
		{opcode: 0x57, mode: zeroPageIndexedX, size: 2, cycles: 6, kind: readModWrite, illegal: true},
		{opcode: 0x5B, mode: indexedY, size: 3, cycles: 7, kind: readModWrite, illegal: true},
		{opcode: 0x5F, mode: indexedX, size: 3, cycles: 7, kind: readModWrite, illegal: true},
	}},
	{"STA", []operandForm{
		{opcode: 0x85, mode: zeroPage, size: 2, cycles: 3, kind: write},
		{opcode: 0x95, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: write},
		{opcode: 0x8D, mode: absolute, size: 3, cycles: 4, kind: write},
		{opcode: 0x9D, mode: indexedX, size: 3, cycles: 5, kind: write},
		{opcode: 0x99, mode: indexedY, size: 3, cycles: 5, kind: write},
		{opcode: 0x81, mode: preIndexedIndirect, size: 2, cycles: 6, kind: write},
		{opcode: 0x91, mode: postIndexedIndirect, size: 2, cycles: 6, kind: write},
	}},
	{"STX", []operandForm{
		{opcode: 0x86, mode: zeroPage, size: 2, cycles: 3, kind: write},
		{opcode: 0x96, mode: zeroPageIndexedY, size: 2, cycles: 4, kind: write},
		{opcode: 0x8E, mode: absolute, size: 3, cycles: 4, kind: write},
	}},
	{"STY", []operandForm{
		{opcode: 0x84, mode: zeroPage, size: 2, cycles: 3, kind: write},
		{opcode: 0x94, mode: zeroPageIndexedX, size: 2, cycles: 4, kind: write},
		{opcode: 0x8C, mode: absolute, size: 3, cycles: 4, kind: write},
	}},
	{"TAS", []operandForm{{opcode: 0x9B, mode: indexedY, cycles: 5, illegal: true}}},
	{"TAX", []operandForm{{opcode: 0xAA, mode: implied, size: 1, cycles: 2}}},
	{"TAY", []operandForm{{opcode: 0xA8, mode: implied, size: 1, cycles: 2}}},
	{"TSX", []operandForm{{opcode: 0xBA, mode: implied, size: 1, cycles: 2}}},
	{"TXA", []operandForm{{opcode: 0x8A, mode: implied, size: 1, cycles: 2}}},
	{"TXS", []operandForm{{opcode: 0x9A, mode: implied, size: 1, cycles: 2}}},
	{"TYA", []operandForm{{opcode: 0x98, mode: implied, size: 1, cycles: 2}}},
	{"XAA", []operandForm{{opcode: 0x8B, mode: immediate, cycles: 2, illegal: true}}},
}

// instructions is opcodeTable flattened into the array the fetch/decode
// step actually indexes: instructions[opCode] is O(1), opcodeTable grouped
// by mnemonic is not meant to be searched at run time.
var instructions [256]instruction

func init() {
	for _, group := range opcodeTable {
		for _, form := range group.forms {
			instructions[form.opcode] = instruction{
				opcode:     form.opcode,
				name:       group.name,
				mode:       form.mode,
				kind:       form.kind,
				size:       form.size,
				cycles:     form.cycles,
				pageCycles: form.pageCycles,
				illegal:    form.illegal,
			}
		}
	}
}
