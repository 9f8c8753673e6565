package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstWidthAndRendering(t *testing.T) {
	c := MustBits("10xz")
	require.Equal(t, ConstBits, c.Kind)
	require.Equal(t, []State{S1, S0, Sx, Sz}, c.Bits)
	require.Equal(t, 4, c.Width())
	require.Equal(t, "4'10xz", c.String())
	require.False(t, c.IsFullyDefined())
	require.False(t, c.Signed())

	i := IntConst(-7)
	require.Equal(t, 32, i.Width())
	require.True(t, i.Signed())
	require.Equal(t, "-7", i.String())

	s := StringConst("ab")
	require.Equal(t, 16, s.Width())
	require.Equal(t, `"ab"`, s.String())

	empty := BitsConst()
	require.Equal(t, 0, empty.Width())
	require.Equal(t, "0'", empty.String())
}

func TestStateFromByte(t *testing.T) {
	for _, b := range []byte("01xzm-XZM") {
		_, ok := StateFromByte(b)
		require.True(t, ok, "digit %q", b)
	}
	_, ok := StateFromByte('2')
	require.False(t, ok)
	got, _ := StateFromByte('X')
	require.Equal(t, Sx, got)
	require.Equal(t, "-", Sa.String())
}
