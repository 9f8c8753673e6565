package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdent(t *testing.T) {
	id, err := ParseIdent(`\clk`)
	require.NoError(t, err)
	require.Equal(t, Public, id.Kind())
	require.Equal(t, "clk", id.Name())
	require.Equal(t, `\clk`, id.String())

	auto, err := ParseIdent(`$procdff$12`)
	require.NoError(t, err)
	require.Equal(t, AutoGenerated, auto.Kind())
	require.Equal(t, "procdff$12", auto.Name())

	for _, bad := range []string{"", `\`, "$", "clk", `\a b`} {
		_, err := ParseIdent(bad)
		require.Error(t, err, "ParseIdent(%q)", bad)
	}
}

func TestIdentEqualityUsesMarker(t *testing.T) {
	require.NotEqual(t, PublicIdent("a"), AutoIdent("a"))
	require.True(t, MustIdent(`\a`).Equal(PublicIdent("a")))

	m := map[Ident]int{PublicIdent("a"): 1, AutoIdent("a"): 2}
	require.Len(t, m, 2)
	require.True(t, Ident{}.IsZero())
	require.Panics(t, func() { MustIdent("nope") })
}
