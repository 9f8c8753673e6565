package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

// inlineSeeds cover constructs that are easy to get wrong at the lexer and
// parser boundary.
var inlineSeeds = []string{
	"",
	"autoidx 1\n",
	"module \\m\nend\n",
	"module \\m\n  wire width 4 upto offset 2 input 1 signed \\a\nend\n",
	"module \\m\n  connect \\a { \\b [3:0] 2'x1 { } }\nend\n",
	"module \\m\n  process $p\n    switch \\s\n      case 1'0 , 1'1\n      case\n    end\n    sync posedge \\c\n      update \\q \\d\n  end\nend\n",
	"module \\m\n  cell $mem $m\n    parameter signed real \\R \"0.5\"\n    connect \\A \\a\n  end\nend\n",
	"attribute \\src \"a\\\\b\\\"c\\101\"\nmodule \\m\nend\n",
	"module \\m\n  wire \\a[3:0]\nend\n",
	"module \\m\n  connect \\a {{{{{{{{ \\b }}}}}}}}\nend\n",
	"module \\m\n  memory size 4 \\mem\n  process $p\n    sync always\n      memwr \\mem 2'00 8'0 8'1 0\n  end\nend\n",
	"\"unterminated\n",
	"module \\m # comment\n  wire -1\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".il" && ext != ".rtlil" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
