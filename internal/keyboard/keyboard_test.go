package keyboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInput_NoKeysSelected(t *testing.T) {
	k := New()
	require.Equal(t, byte(0xff), k.Input())
}

func TestInput_SingleKeyOnSelectedColumn(t *testing.T) {
	k := New()
	k.SetKS(0x01)
	k.Press(Two)
	require.Equal(t, byte(0xff&^0x01), k.Input())
}

func TestInput_UnselectedColumnIgnored(t *testing.T) {
	k := New()
	k.SetKS(0x02) // column 2 selected, not column 1
	k.Press(Two)  // lives on column 1
	require.Equal(t, byte(0xff), k.Input(), "key on unselected column must not show up")
}

func TestPressRelease(t *testing.T) {
	k := New()
	k.SetKS(0xff)
	k.Press(Enter)
	require.NotEqual(t, byte(0xff), k.Input(), "Enter press not reflected in Input()")
	k.Release(Enter)
	require.Equal(t, byte(0xff), k.Input(), "Enter release not reflected in Input()")
}
