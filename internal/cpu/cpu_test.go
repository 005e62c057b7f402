package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mockBus is a flat 17-bit address space for testing the CPU in isolation,
// independent of internal/bus's region decoding.
type mockBus struct {
	mem   [0x20000]byte
	input byte
}

func (m *mockBus) Read(addr uint32) byte     { return m.mem[addr&0x1FFFF] }
func (m *mockBus) Write(addr uint32, v byte) { m.mem[addr&0x1FFFF] = v }
func (m *mockBus) In() byte                  { return m.input }

func newTestBus() *mockBus {
	b := &mockBus{}
	// reset vector -> 0x0000
	b.mem[0xFFFE] = 0x00
	b.mem[0xFFFF] = 0x00
	return b
}

func load(b *mockBus, addr uint16, code ...byte) {
	for i, v := range code {
		b.mem[int(addr)+i] = v
	}
}

func TestReset_LoadsVectorIntoP(t *testing.T) {
	b := newTestBus()
	b.mem[0xFFFE] = 0x12
	b.mem[0xFFFF] = 0x34
	c := New()
	c.Step(b) // first step drives internalReset
	require.Equal(t, uint16(0x1234), c.P)
}

func TestLDA_Immediate_SetsZ(t *testing.T) {
	b := newTestBus()
	load(b, 0x0000, 0xb5, 0x00) // LDA #0x00
	c := New()
	c.Step(b) // reset
	cycles := c.Step(b) // LDA #0
	require.Equal(t, byte(0), c.A)
	require.True(t, c.zeroFlag(), "Z flag not set after LDA #0")
	require.Equal(t, 6, cycles)
}

func TestHLT_HaltsAndIdles(t *testing.T) {
	b := newTestBus()
	load(b, 0x0000, 0xfd, 0xb1, 0x00) // FD B1 = HLT; NOP
	c := New()
	c.Step(b) // reset
	cyc := c.Step(b)
	require.True(t, c.HLT, "HLT not set after FD B1")
	require.Equal(t, 9, cyc)

	cyc = c.Step(b)
	require.Equal(t, 2, cyc)
	require.Equal(t, uint16(0x0002), c.P, "P advanced while halted")
}

func TestDCA_BCDAdjust(t *testing.T) {
	c := New()
	c.A = 0x29
	c.setFlag(FlagC, false)
	c.dca(0x18)
	require.Equal(t, byte(0x47), c.A)
	require.False(t, c.carryFlag())
	require.True(t, c.halfCarryFlag())
	require.False(t, c.zeroFlag())
}

func TestTimerOverflow_RaisesIR1AndVectors(t *testing.T) {
	b := newTestBus()
	b.mem[0xFFFA] = 0x55
	b.mem[0xFFFB] = 0x66
	load(b, 0x0000, 0x38, 0x38, 0x38) // NOPs, 5 cycles each
	c := New()
	c.Step(b) // reset
	c.setFlag(FlagIE, true)
	c.TM = 0x1FE // one shift away from wraparound detection
	c.timerInc()
	require.True(t, c.timerReached)

	c.Step(b) // services IR1, should vector to 0xFFFA/0xFFFB
	require.Equal(t, uint16(0x5566), c.P)
	require.False(t, c.interruptEnabled(), "IE should be cleared on interrupt entry")
}

func TestITA_ReadsInputPort(t *testing.T) {
	b := newTestBus()
	b.input = 0xA5
	c := New()
	c.ita(b)
	require.Equal(t, byte(0xA5), c.A)
	require.False(t, c.zeroFlag(), "Z flag set for nonzero input")
}

func TestAddGeneric_CarryHalfCarryOverflow(t *testing.T) {
	c := New()
	res := c.addGeneric(0x7F, 0x01, false)
	require.Equal(t, byte(0x80), res)
	require.False(t, c.carryFlag(), "no byte-wide carry expected")
	require.True(t, c.overflowFlag(), "signed overflow 127+1 expected")
	require.True(t, c.halfCarryFlag(), "nibble carry expected")
}

func TestFlagRegister_UnusedBitsStayClear(t *testing.T) {
	c := New()
	c.A = 0xFF
	c.adc(0xFF)
	require.Zero(t, c.T&0xE0, "T has bits set outside the defined flags")
}

func TestBIT_IsAndOnlyAffectingZ(t *testing.T) {
	c := New()
	c.A = 0xF0
	c.bit(0x0F, c.A)
	require.True(t, c.zeroFlag(), "0xF0 & 0x0F == 0 should set Z")
	require.Equal(t, byte(0xF0), c.A, "BIT must not mutate A")
}

func TestADR_RestoresFlags(t *testing.T) {
	c := New()
	c.A = 0x01
	c.T = FlagV | FlagH
	got := c.adr(0x00FF)
	require.Equal(t, uint16(0x0000), got, "low byte wraps, no carry into the high byte")
	require.Equal(t, byte(FlagV|FlagH), c.T, "adr must not mutate flags")
}
