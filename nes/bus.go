package nes

// ╔═════════════════╤═══════╤═════════════════════════╗
// ║ Address Range   │ Size  │ Purpose                 ║
// ╠═════════════════╪═══════╪═════════════════════════╣
// ║ 0x0000 - 0x1FFF │ 8192  │ 2KiB internal RAM, mirrored 4x ║
// ║ 0x2000 - 0x3FFF │ 8192  │ PPU registers, mirrored every 8 bytes ║
// ║ 0x4000 - 0x4013 │ 20    │ APU registers           ║
// ║ 0x4014          │ 1     │ OAM DMA                 ║
// ║ 0x4015          │ 1     │ APU status              ║
// ║ 0x4016          │ 1     │ controller port 1       ║
// ║ 0x4017          │ 1     │ controller port 2 / APU frame counter ║
// ║ 0x4020 - 0xFFFF │       │ cartridge space (mapper-owned) ║
// ╚═════════════════╧═══════╧═════════════════════════╝
//
// bus is the CPU's memory map: a small ordered list of devices, each
// claiming a range, probed in order on every access. Only the cartridge's
// range genuinely needs this (its true extent is mapper-dependent), but
// giving every device the same registration shape keeps the dispatch in
// one place instead of scattered range checks.
type busDevice interface {
	contains(addr uint16) bool
	read(addr uint16) byte
	write(addr uint16, v byte)
}

const (
	oamDmaAddr  = 0x4014
	oamDataAddr = 0x2004
)

type sysBus struct {
	ram     *memBank
	ppu     *PPU
	apu     *APU
	ctrl1   *Controller
	ctrl2   *Controller
	cart    *Cartridge
	devices []busDevice

	// fault records a BusFaultError from the most recent read or write that
	// no device claimed. execute() drains it into the cpu's own fault field
	// after every instruction; it is not cleared here so a fault from a
	// dummy read during address resolution is not lost before execute() gets
	// to look at it.
	fault error
}

func newSysBus(cart *Cartridge, ppu *PPU, apu *APU, ctrl1, ctrl2 *Controller) *sysBus {
	b := &sysBus{
		ram:   newMemBank(0x0000, 0x1FFF, 2048),
		ppu:   ppu,
		apu:   apu,
		ctrl1: ctrl1,
		ctrl2: ctrl2,
		cart:  cart,
	}
	b.devices = []busDevice{
		ramDevice{b.ram},
		ppuDevice{ppu},
		apuStatusDevice{apu},
		ctrl1Device{ctrl1, ctrl2},
		ctrl2FrameCounterDevice{ctrl2, apu},
		apuDevice{apu},
		cartDevice{cart},
	}
	return b
}

func (b *sysBus) read(addr uint16) byte {
	for _, d := range b.devices {
		if d.contains(addr) {
			return d.read(addr)
		}
	}
	b.fault = &BusFaultError{Addr: addr} // open bus: $4020-$5FFF on boards with no expansion hardware
	return 0
}

func (b *sysBus) write(addr uint16, v byte) {
	for _, d := range b.devices {
		if d.contains(addr) {
			d.write(addr, v)
			return
		}
	}
	b.fault = &BusFaultError{Addr: addr}
}

func (b *sysBus) readWord(addr uint16) uint16 {
	lo := b.read(addr)
	hi := b.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

type ramDevice struct{ bank *memBank }

func (d ramDevice) contains(addr uint16) bool { return d.bank.contains(addr) }
func (d ramDevice) read(addr uint16) byte     { v, _ := d.bank.read(addr); return v }
func (d ramDevice) write(addr uint16, v byte) { _ = d.bank.write(addr, v) }

type ppuDevice struct{ ppu *PPU }

func (d ppuDevice) contains(addr uint16) bool { return addr >= 0x2000 && addr <= 0x3FFF }
func (d ppuDevice) read(addr uint16) byte     { return d.ppu.readRegister(addr) }
func (d ppuDevice) write(addr uint16, v byte) { d.ppu.writeRegister(addr, v) }

// $4014 (OAM DMA) is never routed through a device: cpu.write intercepts it
// before reaching the bus at all, since triggering it needs to stall the
// CPU and walk the source page itself (see cpu.dmaTransfer).

type apuStatusDevice struct{ apu *APU }

func (d apuStatusDevice) contains(addr uint16) bool { return addr == 0x4015 }
func (d apuStatusDevice) read(addr uint16) byte     { return d.apu.readStatus() }
func (d apuStatusDevice) write(addr uint16, v byte) { d.apu.writeStatus(v) }

// ctrl1Device covers $4016: controller 1's data port on read, and the strobe
// shared by both controllers on write.
type ctrl1Device struct{ ctrl, ctrl2 *Controller }

func (d ctrl1Device) contains(addr uint16) bool { return addr == 0x4016 }
func (d ctrl1Device) read(addr uint16) byte     { return d.ctrl.Read() }
func (d ctrl1Device) write(addr uint16, v byte) {
	d.ctrl.Write(v)
	if d.ctrl2 != nil {
		d.ctrl2.Write(v)
	}
}

// ctrl2FrameCounterDevice covers $4017, which is controller 2's data port on
// read and the APU frame counter's control register on write; the two
// registers only share an address, not a storage cell.
type ctrl2FrameCounterDevice struct {
	ctrl *Controller
	apu  *APU
}

func (d ctrl2FrameCounterDevice) contains(addr uint16) bool { return addr == 0x4017 }
func (d ctrl2FrameCounterDevice) read(addr uint16) byte     { return d.ctrl.Read() }
func (d ctrl2FrameCounterDevice) write(addr uint16, v byte) { d.apu.writeFrameCounter(v) }

type apuDevice struct{ apu *APU }

func (d apuDevice) contains(addr uint16) bool {
	return addr >= 0x4000 && addr <= 0x4013
}
func (d apuDevice) read(addr uint16) byte     { return 0 } // write-only registers
func (d apuDevice) write(addr uint16, v byte) { d.apu.writeRegister(addr, v) }

type cartDevice struct{ cart *Cartridge }

func (d cartDevice) contains(addr uint16) bool { return addr >= 0x4020 && d.cart.cpuContains(addr) }
func (d cartDevice) read(addr uint16) byte     { return d.cart.cpuRead(addr) }
func (d cartDevice) write(addr uint16, v byte) { d.cart.cpuWrite(addr, v) }
