package token_test

import (
	"testing"

	"rtlil/internal/source"
	"rtlil/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}, Text: text}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.IntLit, token.ValueLit, token.StringLit} {
		if !tok(k, "").IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.PublicID, token.KwWire, token.LBrace, token.Word} {
		if tok(k, "").IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestStartsSigSpec(t *testing.T) {
	yes := []token.Kind{token.PublicID, token.AutoID, token.IntLit, token.ValueLit, token.StringLit, token.LBrace}
	for _, k := range yes {
		if !tok(k, "").StartsSigSpec() {
			t.Errorf("%v should start a sigspec", k)
		}
	}
	no := []token.Kind{token.RBrace, token.LBracket, token.KwEnd, token.Word, token.EOF, token.Invalid}
	for _, k := range no {
		if tok(k, "").StartsSigSpec() {
			t.Errorf("%v must not start a sigspec", k)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := map[token.Kind]string{
		token.KwEnd:    "'end'",
		token.PublicID: "identifier",
		token.IntLit:   "integer",
		token.RBracket: "']'",
		token.EOF:      "end of input",
	}
	for k, want := range cases {
		if got := k.Describe(); got != want {
			t.Errorf("%v.Describe() = %q, want %q", k, got, want)
		}
	}
	if got := tok(token.KwEnd, "end").Quote(); got != "'end'" {
		t.Errorf("Quote = %q", got)
	}
}

func TestWireOptionsAndSyncTypes(t *testing.T) {
	for _, k := range []token.Kind{token.KwWidth, token.KwOffset, token.KwInput, token.KwOutput, token.KwInout, token.KwUpto, token.KwSigned} {
		if !k.IsWireOption() {
			t.Errorf("%v should be a wire option", k)
		}
	}
	if token.KwSize.IsWireOption() {
		t.Error("size is a memory option only")
	}
	for _, k := range []token.Kind{token.KwLow, token.KwHigh, token.KwPosedge, token.KwNegedge, token.KwEdge, token.KwAlways, token.KwInit, token.KwGlobal} {
		if !k.IsSyncType() {
			t.Errorf("%v should be a sync type", k)
		}
	}
}
