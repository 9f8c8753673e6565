package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func withPlain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func override(t *testing.T, v, commit, date string) {
	t.Helper()
	ov, oc, od := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = ov, oc, od })
}

func TestColored_Plain(t *testing.T) {
	withPlain(t)
	for _, v := range []string{"0.1.0-dev", "1.2.3", "1.0.0-beta.1", "weird"} {
		override(t, v, "", "")
		require.Equal(t, v, Colored())
	}
}

func TestLine(t *testing.T) {
	withPlain(t)
	override(t, "1.2.3", "1234567890abcdef", "2026-01-15")
	require.Equal(t, "rtlil 1.2.3 (1234567890ab, 2026-01-15)", Line())

	override(t, "1.2.3", "abc", "")
	require.Equal(t, "rtlil 1.2.3 (abc)", Line())
}
