package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const adderSrc = `module \adder
  wire width 4 input 1 \a
  wire width 4 input 2 \b
  wire width 4 output 3 \y
  cell $add $add$1
    parameter \Y_WIDTH 4
    connect \A \a
    connect \B \b
    connect \Y \y
  end
end
`

const brokenSrc = `module \broken
  wire width \w
end
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type recordSink struct{ events chan Event }

func newRecordSink(n int) *recordSink { return &recordSink{events: make(chan Event, n)} }

func (s *recordSink) OnEvent(evt Event) { s.events <- evt }

func (s *recordSink) drain() []Event {
	close(s.events)
	var out []Event
	for evt := range s.events {
		out = append(out, evt)
	}
	return out
}
