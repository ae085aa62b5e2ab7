package nes

import "io"

// Console wires a cartridge, CPU, PPU, APU, and two controller ports
// together into a runnable machine. It owns nothing a disassembler or test
// harness cannot also reach: Step runs exactly one CPU instruction (and the
// PPU/APU ticks that ride along with it), and Read lets a test peek at any
// address on the CPU bus, including the two memory cells nestest uses to
// report its own pass/fail status.
type Console struct {
	cartridge *Cartridge
	cpu       *cpu
	apu       *APU
	ppu       *PPU
	ctrl1     *Controller
	ctrl2     *Controller

	bus *sysBus
}

// NewConsole builds a console around cartridge and powers the CPU on. A
// nonzero pc overrides the reset vector, matching how conformance ROMs like
// nestest are started directly at a fixed entry point instead of going
// through their own reset handler. debugOut, if non-nil, receives one
// disassembly trace line per instruction executed.
func NewConsole(cartridge *Cartridge, pc uint16, debugOut io.Writer) *Console {
	ppu := newPPU(cartridge)
	apu := newAPU()
	cpu := newCpu(debugOut, ppu, apu)

	console := &Console{
		cartridge: cartridge,
		cpu:       cpu,
		apu:       apu,
		ppu:       ppu,
		ctrl1:     &Controller{},
		ctrl2:     &Controller{},
	}
	console.bus = newSysBus(cartridge, ppu, apu, console.ctrl1, console.ctrl2)

	cpu.init(console.bus)
	if pc != 0 {
		cpu.setPC(pc)
	}
	// Power-on leaves the CPU seven cycles into boot (the time the reset
	// sequence itself takes), which is what nestest's trace log counts from.
	cpu.cycles = 7

	return console
}

// Reset pulses the CPU's reset line, which re-reads the reset vector and
// restores status/stack-pointer state without clearing RAM.
func (c *Console) Reset() {
	c.cpu.reset(c.bus)
}

// Step executes exactly one CPU instruction and returns the number of CPU
// cycles it took.
func (c *Console) Step() uint64 {
	return c.cpu.execute(c.bus)
}

// Fault reports the UnstableOpcodeError or BusFaultError from the most
// recently executed instruction, or nil if it ran cleanly.
func (c *Console) Fault() error {
	return c.cpu.fault
}

func (c *Console) Press(port int, button Button) {
	switch port {
	case 0:
		c.ctrl1.Press(button)
	case 1:
		c.ctrl2.Press(button)
	}
}

func (c *Console) Release(port int, button Button) {
	switch port {
	case 0:
		c.ctrl1.Release(button)
	case 1:
		c.ctrl2.Release(button)
	}
}

func (c *Console) Read(addr uint16) byte {
	return c.bus.read(addr)
}

func (c *Console) Write(addr uint16, v byte) {
	c.bus.write(addr, v)
}
