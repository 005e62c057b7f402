package bus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharplab/pc1500emu/internal/lh5810"
)

func TestRead_ResetVectorFromEmbeddedROM(t *testing.T) {
	b := New(lh5810.New())
	hi := b.Read(0xFFFE)
	lo := b.Read(0xFFFF)
	got := uint16(hi)<<8 | uint16(lo)
	require.Equal(t, uint16(0xC000), got, "placeholder firmware jumps to ROM start")
}

func TestUserRAM_ReadWrite(t *testing.T) {
	b := New(lh5810.New())
	b.Write(0x4100, 0x5A)
	require.Equal(t, byte(0x5A), b.Read(0x4100))
}

func TestMirror_7000Range(t *testing.T) {
	b := New(lh5810.New())
	b.Write(0x7600, 0x42)
	require.Equal(t, byte(0x42), b.Read(0x7000))
}

func TestROM_WritesAreNoOps(t *testing.T) {
	b := New(lh5810.New())
	before := b.Read(0xC123)
	b.Write(0xC123, 0xAA)
	require.Equal(t, before, b.Read(0xC123), "ROM write was not dropped")
}

func TestUnmapped_ReadsReturnFF(t *testing.T) {
	b := New(lh5810.New())
	require.Equal(t, byte(0xFF), b.Read(0x0100))
}

func TestME1_LH5810RegisterRoundTrip(t *testing.T) {
	io := lh5810.New()
	b := New(io)
	b.Write(0x1F00C, 0x41) // DDA
	require.Equal(t, byte(0x41), io.GetReg(lh5810.DDA))
	require.Equal(t, byte(0x41), b.Read(0x1F00C))
}
