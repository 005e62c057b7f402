// Package bus implements the PC-1500's 17-bit memory/MMIO address space:
// user RAM, system RAM (including VRAM), the embedded 16 KiB firmware ROM,
// and the LH5810 register file mapped into ME1.
package bus

import (
	_ "embed"
	"log"

	"github.com/sharplab/pc1500emu/internal/lh5810"
)

//go:embed firmware/pc1500.rom
var firmwareROM []byte

const (
	userRAMBegin = 0x4000
	userRAMEnd   = 0x57FF

	systemRAMBegin = 0x7600
	systemRAMEnd   = 0x7FFF

	mirrorBegin = 0x7000
	mirrorEnd   = 0x75FF

	romBegin = 0xC000
	romEnd   = 0xFFFF

	me1Mask = 0x10000
)

// Bus wires the CPU's 17-bit address space to RAM, ROM, and the LH5810.
type Bus struct {
	rom       []byte
	userRAM   [userRAMEnd - userRAMBegin + 1]byte
	systemRAM [systemRAMEnd - systemRAMBegin + 1]byte

	io *lh5810.Controller

	// timerState is snapshotted by the system aggregate before each bus
	// access so the LH5810 RESET register can stamp its divider restart
	// with the CPU's current cycle count, matching memory.rs's
	// `self.lh5801.timer_state()` argument to every set_reg call.
	timerState uint64

	// unmappedLogged suppresses repeat diagnostics for the same address.
	unmappedLogged map[uint32]bool
}

// New constructs a Bus with the embedded firmware ROM, wired to io.
func New(io *lh5810.Controller) *Bus {
	return &Bus{
		rom:            firmwareROM,
		io:             io,
		unmappedLogged: make(map[uint32]bool),
	}
}

// SetTimerState records the CPU's current cycle count for RESET-register
// divider bookkeeping; called once per system step before bus access.
func (b *Bus) SetTimerState(t uint64) { b.timerState = t }

func mirror(addr uint32) uint32 {
	if addr >= mirrorBegin && addr <= mirrorEnd {
		return addr&0x1FF | systemRAMBegin
	}
	return addr
}

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint32) byte {
	addr = mirror(addr)

	if addr&me1Mask != 0 {
		return b.readME1(addr &^ me1Mask)
	}

	switch {
	case addr >= userRAMBegin && addr <= userRAMEnd:
		return b.userRAM[addr-userRAMBegin]
	case addr >= systemRAMBegin && addr <= systemRAMEnd:
		return b.systemRAM[addr-systemRAMBegin]
	case addr >= romBegin && addr <= romEnd:
		return b.rom[addr-romBegin]
	default:
		b.logUnmappedOnce(addr, "read")
		return 0xFF
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint32, v byte) {
	addr = mirror(addr)

	if addr&me1Mask != 0 {
		b.writeME1(addr&^me1Mask, v)
		return
	}

	switch {
	case addr >= userRAMBegin && addr <= userRAMEnd:
		b.userRAM[addr-userRAMBegin] = v
	case addr >= systemRAMBegin && addr <= systemRAMEnd:
		b.systemRAM[addr-systemRAMBegin] = v
	case addr >= romBegin && addr <= romEnd:
		// ROM writes are idempotent no-ops.
	default:
		b.logUnmappedOnce(addr, "write")
	}
}

// logUnmappedOnce reports an out-of-range access the first time it is
// seen at a given address, matching memory.rs's read/write diagnostics
// without flooding the log on a hot unmapped loop.
func (b *Bus) logUnmappedOnce(addr uint32, op string) {
	if b.unmappedLogged[addr] {
		return
	}
	b.unmappedLogged[addr] = true
	log.Printf("bus: %s from unmapped address %#06x", op, addr)
}

func (b *Bus) readME1(off uint32) byte {
	switch off {
	case 0x1F005 &^ me1Mask:
		return b.io.GetReg(lh5810.U)
	case 0x1F006 &^ me1Mask:
		return b.io.GetReg(lh5810.L)
	case 0x1F007 &^ me1Mask:
		return b.io.GetReg(lh5810.F)
	case 0x1F008 &^ me1Mask:
		return b.io.GetReg(lh5810.OPC)
	case 0x1F009 &^ me1Mask:
		return b.io.GetReg(lh5810.G)
	case 0x1F00A &^ me1Mask:
		return b.io.GetReg(lh5810.MSK)
	case 0x1F00B &^ me1Mask:
		return b.io.GetReg(lh5810.IF)
	case 0x1F00C &^ me1Mask:
		return b.io.GetReg(lh5810.DDA)
	case 0x1F00D &^ me1Mask:
		return b.io.GetReg(lh5810.DDB)
	case 0x1F00E &^ me1Mask:
		return b.io.GetReg(lh5810.OPA)
	case 0x1F00F &^ me1Mask:
		return b.io.GetReg(lh5810.OPB)
	default:
		return 0xFF
	}
}

func (b *Bus) writeME1(off uint32, v byte) {
	switch off {
	case 0x1F004 &^ me1Mask:
		b.io.SetReg(lh5810.RESET, v, b.timerState)
	case 0x1F005 &^ me1Mask:
		b.io.SetReg(lh5810.U, v, b.timerState)
	case 0x1F006 &^ me1Mask:
		b.io.SetReg(lh5810.L, v, b.timerState)
	case 0x1F007 &^ me1Mask:
		b.io.SetReg(lh5810.F, v, b.timerState)
	case 0x1F008 &^ me1Mask:
		b.io.SetReg(lh5810.OPC, v, b.timerState)
	case 0x1F009 &^ me1Mask:
		b.io.SetReg(lh5810.G, v, b.timerState)
	case 0x1F00A &^ me1Mask:
		b.io.SetReg(lh5810.MSK, v, b.timerState)
	case 0x1F00B &^ me1Mask:
		b.io.SetReg(lh5810.IF, v, b.timerState)
	case 0x1F00C &^ me1Mask:
		b.io.SetReg(lh5810.DDA, v, b.timerState)
	case 0x1F00D &^ me1Mask:
		b.io.SetReg(lh5810.DDB, v, b.timerState)
	case 0x1F00E &^ me1Mask:
		b.io.SetReg(lh5810.OPA, v, b.timerState)
	case 0x1F00F &^ me1Mask:
		b.io.SetReg(lh5810.OPB, v, b.timerState)
	default:
		// unmapped ME1 write, silently dropped
	}
}
