// Package system wires the CPU, memory bus, LH5810 I/O controller,
// PD1990AC real-time clock, keyboard, and display into the star-topology
// aggregate the rest of the core is built around: every component is owned
// here and reached only through explicit calls, never a shared handle.
package system

import (
	"github.com/sharplab/pc1500emu/internal/bus"
	"github.com/sharplab/pc1500emu/internal/cpu"
	"github.com/sharplab/pc1500emu/internal/display"
	"github.com/sharplab/pc1500emu/internal/keyboard"
	"github.com/sharplab/pc1500emu/internal/lh5810"
	"github.com/sharplab/pc1500emu/internal/pd1990ac"
)

// ticksPerFrame bounds one StepFrame call, matching lib.rs::TICKS_PER_FRAME.
const ticksPerFrame = 15000

// Machine is the PC-1500 system aggregate.
type Machine struct {
	cpu *cpu.CPU
	bus *bus.Bus
	io  *lh5810.Controller
	rtc *pd1990ac.Clock
	kbd *keyboard.Keyboard
	lcd *display.Controller

	busAdapter cpuBus
}

// cpuBus satisfies cpu.Bus by combining the memory bus with the keyboard's
// input port, which is not memory-mapped on real hardware.
type cpuBus struct {
	*bus.Bus
	kbd *keyboard.Keyboard
}

func (a cpuBus) In() byte { return a.kbd.Input() }

// New constructs a fresh machine with its own embedded ROM image.
func New() *Machine {
	io := lh5810.New()
	m := &Machine{
		cpu: cpu.New(),
		bus: bus.New(io),
		io:  io,
		rtc: pd1990ac.New(),
		kbd: keyboard.New(),
		lcd: display.New(),
	}
	m.busAdapter = cpuBus{Bus: m.bus, kbd: m.kbd}
	return m
}

func readBit(b byte, pos uint) bool { return (b>>pos)&0x01 != 0 }

// run executes one CPU instruction (or interrupt/halt step) followed by
// one I/O-controller/RTC tick, per lib.rs::Pc1500::run.
func (m *Machine) run() {
	m.bus.SetTimerState(m.cpu.TimerState())
	m.cpu.Step(m.busAdapter)

	m.step()

	m.kbd.SetKS(m.io.GetReg(lh5810.DDA))

	if m.io.Int() {
		m.cpu.SetIR2(true)
	}
}

// step advances the LH5810 and PD1990AC by one tick and wires their signal
// lines together, per lib.rs::Pc1500::step.
func (m *Machine) step() {
	ts := m.cpu.TimerState()

	if m.io.NewOPC() {
		t := m.io.GetReg(lh5810.OPC)
		m.rtc.SetData(readBit(t, 0))
		m.rtc.SetSTB(readBit(t, 1))
		m.rtc.SetClk(readBit(t, 2))
		m.rtc.SetOutEnable(readBit(t, 3))
		m.rtc.SetC0(readBit(t, 3))
		m.rtc.SetC1(readBit(t, 4))
		m.rtc.SetC2(readBit(t, 5))

		m.rtc.Step(ts)
		m.io.SetNewOPC(false)
	}

	m.io.SetRegBit(lh5810.OPB, 5, m.rtc.GetTP(ts))
	m.io.SetRegBit(lh5810.OPB, 6, m.rtc.GetData())

	m.io.SetRegBit(lh5810.OPB, 3, true)  // export model vs domestic model
	m.io.SetRegBit(lh5810.OPB, 4, false) // PB4 tied to ground

	m.io.Step(ts)
}

// StepFrame runs CPU/IO steps until timer_state has advanced by
// ticksPerFrame, the fixed per-host-frame budget.
func (m *Machine) StepFrame() {
	start := m.cpu.TimerState()
	for m.cpu.TimerState()-start < ticksPerFrame {
		m.run()
	}
}

// Press/Release forward to the keyboard matrix.
func (m *Machine) Press(key keyboard.Key)   { m.kbd.Press(key) }
func (m *Machine) Release(key keyboard.Key) { m.kbd.Release(key) }

// Display refreshes and returns the display controller for the host to
// read the RGBA buffer and annunciator symbols from.
func (m *Machine) Display() *display.Controller {
	m.lcd.Update(m.busAdapter, m.cpu.State().DISP)
	return m.lcd
}

// CPUState exposes read-only CPU introspection for tests and tracing
// (spec's permitted between-frame introspection; see SPEC_FULL.md).
func (m *Machine) CPUState() cpu.Snapshot { return m.cpu.State() }

// Reset schedules a full machine reset on the next step.
func (m *Machine) Reset() { m.cpu.Reset() }
