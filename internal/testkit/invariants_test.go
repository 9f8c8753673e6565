package testkit

import (
	"testing"

	"rtlil/internal/lexer"
	"rtlil/internal/source"
	"rtlil/internal/token"
)

func lexAll(src string) (*source.File, []token.Token) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("inv.il", []byte(src)))
	lx := lexer.New(f, lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return f, toks
		}
	}
}

func TestCheckTokenInvariants_Lexer(t *testing.T) {
	for _, src := range []string{
		"",
		"   \n# only a comment",
		"module \\m\n  wire width 8 \\a # trailing\n  connect \\a 8'0000zzzz\nend\n",
		"attribute \\src \"a\\\"b\\101\"\n",
		"\"unterminated\n~ @ -\n",
		"{ \\a [3:0] , $b }",
	} {
		f, toks := lexAll(src)
		if err := CheckTokenInvariants(f, toks); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCheckTokenInvariants_Violations(t *testing.T) {
	f, toks := lexAll("wire \\a")

	missingEOF := toks[:len(toks)-1]
	if err := CheckTokenInvariants(f, missingEOF); err == nil {
		t.Error("stream without EOF accepted")
	}

	shifted := append([]token.Token(nil), toks...)
	shifted[1].Span.Start++
	if err := CheckTokenInvariants(f, shifted); err == nil {
		t.Error("gap between tokens accepted")
	}

	wrongText := append([]token.Token(nil), toks...)
	wrongText[0].Text = "cell"
	if err := CheckTokenInvariants(f, wrongText); err == nil {
		t.Error("mismatched text accepted")
	}
}
