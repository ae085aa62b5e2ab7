package nes

// ╔═════════════════╤═══════╤════════════════════════════╤════════════════╗
// ║ Address Range   │ Size  │ Purpose                    │ Kind           ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x0000 - 0x0FFF │ 4096  │ Pattern Table #0           │                ║
// ║╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤ Pattern Tables ║
// ║ 0x1000 - 0x1FFF │ 4096  │ Pattern Table #1           │                ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x2000 - 0x23BF │ 960   │ Name Table #0              │                ║
// ║ 0x2400 - 0x27BF │ 960   │ Name Table #1              │ Name Tables    ║
// ║ 0x2800 - 0x2BBF │ 960   │ Name Table #2              │                ║
// ║ 0x2C00 - 0x2FBF │ 960   │ Name Table #3              │                ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x3000 - 0x3EFF │ 3840  │ Mirror of 0x2000-0x2EFF    │ Mirror         ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x3F00 - 0x3F1F │ 32    │ Palette RAM indexes        │ Palette        ║
// ║ 0x3F20 - 0x3FFF │ 224   │ Mirrors of 0x3F00 - 0x3F1F │                ║
// ║ 0x4000 - 0xFFFF │ 49152 │ Mirrors of 0x0000 - 0x3FFF │                ║
// ╚═════════════════╧═══════╧════════════════════════════╧════════════════╝
//
// This models the register window and timing a game watches (VBlank, NMI,
// VRAM/palette/OAM access) without drawing anything; there is no
// framebuffer and no background/sprite fetch pipeline. Sprite0Hit and
// SpriteOverflow are never set, only cleared at the pre-render line.

const (
	PPUCTRL   uint16 = 0x2000
	PPUMASK   uint16 = 0x2001
	PPUSTATUS uint16 = 0x2002
	OAMADDR   uint16 = 0x2003
	OAMDATA   uint16 = 0x2004
	PPUSCROLL uint16 = 0x2005
	PPUADDR   uint16 = 0x2006
	PPUDATA   uint16 = 0x2007
	OAMDMA    uint16 = 0x4014
)

// VPHB SINN
// |||| ||||
// |||| ||++- Base nametable address
// |||| ||    (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
// |||| |+--- VRAM address increment per CPU read/write of PPUDATA
// |||| |     (0: add 1, going across; 1: add 32, going down)
// |||| +---- Sprite pattern table address for 8x8 sprites
// ||||       (0: $0000; 1: $1000; ignored in 8x16 mode)
// |||+------ Background pattern table address (0: $0000; 1: $1000)
// ||+------- Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
// |+-------- PPU master/slave select
// |          (0: read backdrop from EXT pins; 1: output color on EXT pins)
// +--------- Generate an NMI at the start of the
//            vertical blanking interval (0: off; 1: on)
type PpuCtrl byte

const (
	// NametableAddress - VRAM address
	// 0 = $2000
	// 1 = $2400
	// 2 = $2800
	// 3 = $2C00
	NametableAddress PpuCtrl = 3

	// AddressIncrement - PPU address increment
	// 0 = Increment by 1
	// 1 = Increment by 32
	AddressIncrement PpuCtrl = 1 << iota * 2

	// SpritePatternTableAddress - VRAM address
	// 0 = $0000
	// 1 = $1000
	SpritePatternTableAddress

	// BackgroundPatternTableAddress - VRAM address
	// 0 = $0000
	// 1 = $1000
	BackgroundPatternTableAddress

	// SpriteSize
	// 0 = 8x8
	// 1 = 8x16
	SpriteSize

	// MasterSlaveSelect - PPU Master/Slave Selection --+   Always write 0
	// 0 = Receive EXTBG                              +-- in unmodified
	// 1 = Send EXTBG                               --+   Control Deck
	MasterSlaveSelect

	// GenerateNMI - Execute NMI on VBlank
	// 0 = Disabled
	// 1 = Enabled
	GenerateNMI
)

// BGRs bMmG
// |||| ||||
// |||| |||+- Greyscale (0: normal color, 1: produce a greyscale display)
// |||| ||+-- 1: Show background in leftmost 8 pixels of screen, 0: Hide
// |||| |+--- 1: Show sprites in leftmost 8 pixels of screen, 0: Hide
// |||| +---- 1: Show background
// |||+------ 1: Show sprites
// ||+------- Emphasize red
// |+-------- Emphasize green
// +--------- Emphasize blue
type PpuMask byte

const (
	// Greyscale - Display Type
	// 0 = Colour display
	// 1 = Monochrome display (all palette values ANDed with $30)
	Greyscale PpuMask = 1 << iota

	// BackgroundClipping
	// 0 = BG invisible in left 8-pixel column
	// 1 = No clipping
	BackgroundClipping

	// SpriteClipping
	// 0 = Sprites invisible in left 8-pixel column
	// 1 = No clipping
	SpriteClipping

	// ShowBackground - Background Visibility
	// 0 = Background not displayed
	// 1 = Background visible
	ShowBackground

	// ShowSprites - Sprite Visibility
	// 0 = Sprites not displayed
	// 1 = Sprites visible
	ShowSprites

	EmphasizeRed
	EmphasizeGreen
	EmphasizeBlue
)

// VSO. ....
// |||| ||||
// |||+-++++- Least significant bits previously written into a PPU register
// |||        (due to register not being updated for this address)
// ||+------- Sprite overflow. The intent was for this flag to be set
// ||         whenever more than eight sprites appear on a scanline, but a
// ||         hardware bug causes the actual behavior to be more complicated
// ||         and generate false positives as well as false negatives.
// |+-------- Sprite 0 Hit. Set when a nonzero pixel of sprite 0 overlaps
// |          a nonzero background pixel; cleared at dot 1 of the pre-render
// |          line. Used for raster timing.
// +--------- Vertical blank has started (0: not in vblank; 1: in vblank).
//            Set at dot 1 of line 241 (the line *after* the post-render
//            line); cleared after reading $2002 and at dot 1 of the
//            pre-render line.
type PpuStatus byte

const (
	// SpriteOverflow - Scanline Sprite Count
	// 0 = No scanline with more than eight (8) sprites
	// 1 = At least one line with more than 8 sprites since end of VBlank
	SpriteOverflow PpuStatus = 0x20 << iota

	// Sprite0Hit
	// 0 = Sprite #0 not found
	// 1 = PPU has hit Sprite #0 since end of VBlank
	Sprite0Hit

	// VerticalBlank
	// 0 = Not occuring
	// 1 = In VBlank
	VerticalBlank
)

// PPU models the register window, VRAM/palette/OAM storage, and scanline
// timing a 2C02 exposes to the CPU and cartridge, without any pixel output.
// Nothing here produces a frame; Frame only counts rollovers so callers (and
// tests) can tell time has passed.
type PPU struct {
	Cartridge *Cartridge

	Ctrl       PpuCtrl   // 0x2000 PPUCTRL
	Mask       PpuMask   // 0x2001 PPUMASK
	Status     PpuStatus // 0x2002 PPUSTATUS
	OAMAddress byte      // 0x2003 OAMADDR
	oamData    [256]byte // 0x2004 OAMDATA

	readBuffer byte // 0x2007 PPUDATA

	Dot      int
	ScanLine int
	Frame    uint64

	paletteData [32]byte
	nametables  [2][1024]byte

	// Current VRAM address (15 bits)
	v uint16
	// Temporary VRAM address (15 bits); can also be thought of as the address
	// of the top left onscreen tile.
	t uint16
	// Fine X scroll (3 bits)
	x byte
	// First or second write toggle (1 bit)
	w byte

	registerBus byte
}

func newPPU(cart *Cartridge) *PPU {
	return &PPU{Cartridge: cart, ScanLine: 261}
}

// tick advances timing by one PPU dot: three dots per CPU cycle. It asserts
// the NMI line at (241, 1) when GenerateNMI is set, and clears the
// sprite-overflow/sprite-0/vblank status flags at (261, 1).
func (p *PPU) tick(c *cpu) {
	preRender := p.ScanLine == 261

	switch {
	case p.ScanLine == 241 && p.Dot == 1:
		p.Status |= VerticalBlank
		if p.Ctrl&GenerateNMI > 0 {
			c.trigger(nmi)
		}
	case preRender && p.Dot == 1:
		p.Status &^= SpriteOverflow
		p.Status &^= Sprite0Hit
		p.Status &^= VerticalBlank
	}

	switch {
	case p.Dot == 340 && preRender:
		p.Dot = 0
		p.ScanLine = 0
		p.Frame++
	case p.Dot == 340:
		p.Dot = 0
		p.ScanLine++
	default:
		p.Dot++
	}
}

// readRegister handles a CPU read from the $2000-$3FFF register window,
// mirrored every 8 bytes.
func (p *PPU) readRegister(address uint16) byte {
	address = (address-0x2000)%0x08 + 0x2000

	switch address {
	case PPUSTATUS: // $2002
		result := p.registerBus&0x1F | byte(p.Status)
		p.Status &^= VerticalBlank
		p.w = 0
		return result

	case OAMDATA: // $2004
		v := p.oamData[p.OAMAddress]
		p.registerBus = v
		return v

	case PPUDATA: // $2007
		var ret byte
		if p.v >= 0x3F00 && p.v <= 0x3FFF {
			ret = p.read(p.v)
			// Reading palette memory also refills the read buffer from the
			// nametable mirrored underneath it, since the palette range has
			// no buffering of its own.
			p.readBuffer = p.read(p.v - 0x1000)
		} else {
			ret = p.readBuffer
			p.readBuffer = p.read(p.v)
		}
		p.incrementV()
		p.registerBus = ret
		return ret
	}

	return p.registerBus
}

// writeRegister handles a CPU write into the $2000-$3FFF register window.
func (p *PPU) writeRegister(address uint16, value byte) {
	address = (address-0x2000)%0x08 + 0x2000
	p.registerBus = value

	switch address {
	case PPUCTRL: // $2000
		p.Ctrl = PpuCtrl(value)
		// t: ....BA.. ........ = d: ......BA
		d := uint16(value)
		p.t = p.t&0xF3FF | d&0x3<<10

	case PPUMASK: // $2001
		p.Mask = PpuMask(value)

	case OAMADDR: // $2003
		p.OAMAddress = value

	case OAMDATA: // $2004
		p.oamData[p.OAMAddress] = value
		p.OAMAddress++

	case PPUSCROLL: // $2005
		d := uint16(value)
		if p.w == 0 {
			// t: ........ ...HGFED = d: HGFED...
			// x:               CBA = d: .....CBA
			p.t = p.t&0xFFE0 | d>>3
			p.x = value & 0x07
			p.w = 1
		} else {
			// t: .CBA..HG FED..... = d: HGFEDCBA
			fineY := d & 0x07 << 12
			coarseY := d & 0xF8 << 2
			p.t = p.t&0x8C1F | fineY | coarseY
			p.w = 0
		}

	case PPUADDR: // $2006
		d := uint16(value)
		if p.w == 0 {
			// t: ..FEDCBA ........ = d: ..FEDCBA; t: .X...... ........ = 0
			p.t = p.t&0xC0FF | d&0x3F<<8
			p.t &^= 0x4000
			p.w = 1
		} else {
			// t: ........ HGFEDCBA = d: HGFEDCBA; v = t
			p.t = p.t&0xFF00 | d
			p.v = p.t
			p.w = 0
		}

	case PPUDATA: // $2007
		p.write(p.v, value)
		p.incrementV()
	}
}

// read is a VRAM-space access ($0000-$3FFF): pattern tables delegate to the
// cartridge, nametables apply the cartridge's mirroring, and palette
// entries the $3F10/$3F14/$3F18/$3F1C backdrop mirrors.
func (p *PPU) read(address uint16) byte {
	address %= 0x4000
	switch {
	case address < 0x2000:
		return p.Cartridge.ppuRead(address)
	case address < 0x3F00:
		return p.readNametable(address)
	default:
		return p.readPalette(address)
	}
}

func (p *PPU) write(address uint16, value byte) {
	address %= 0x4000
	switch {
	case address < 0x2000:
		p.Cartridge.ppuWrite(address, value)
	case address < 0x3F00:
		p.writeNametable(address, value)
	default:
		p.writePalette(address, value)
	}
}

func (p *PPU) readPalette(address uint16) byte {
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		address -= 0x10
	}
	return p.paletteData[address%32]
}

func (p *PPU) writePalette(address uint16, value byte) {
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		address -= 0x10
	}
	p.paletteData[address%32] = value
}

func (p *PPU) readNametable(addr uint16) byte {
	table, offset := resolveNametable(p.Cartridge.MirrorMode, addr)
	return p.nametables[table][offset]
}

func (p *PPU) writeNametable(addr uint16, val byte) {
	table, offset := resolveNametable(p.Cartridge.MirrorMode, addr)
	p.nametables[table][offset] = val
}

func (p *PPU) incrementV() {
	if p.Ctrl&AddressIncrement > 0 {
		p.v += 32
	} else {
		p.v += 1
	}
}
