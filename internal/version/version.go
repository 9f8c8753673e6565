package version

import (
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// Overridable at build time via -ldflags "-X rtlil/internal/version.Version=...".
var (
	// Version is the semantic version of the rtlil tool.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Commit returns GitCommit or, when it was not injected, the vcs.revision
// stamped by the go toolchain.
func Commit() string {
	if GitCommit != "" {
		return GitCommit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// Colored renders Version with each numeric component highlighted; the
// pre-release suffix stays plain. Honors color.NoColor.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Line is the full one-line banner printed by `rtlil version`.
func Line() string {
	var b strings.Builder
	b.WriteString("rtlil ")
	b.WriteString(Colored())
	if c := Commit(); c != "" {
		if len(c) > 12 {
			c = c[:12]
		}
		b.WriteString(" (" + c)
		if BuildDate != "" {
			b.WriteString(", " + BuildDate)
		}
		b.WriteString(")")
	}
	return b.String()
}
