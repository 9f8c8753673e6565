package token

import (
	"rtlil/internal/source"
)

// Token represents a single netlist token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer, sized value or string.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, ValueLit, StringLit:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is a public or auto-generated identifier.
func (t Token) IsIdent() bool {
	return t.Kind == PublicID || t.Kind == AutoID
}

// IsPunct reports whether the token is one of { } [ ] : ,
func (t Token) IsPunct() bool {
	_, ok := punctText[t.Kind]
	return ok
}

// StartsSigSpec reports whether a signal specification can begin with t.
func (t Token) StartsSigSpec() bool {
	return t.IsIdent() || t.IsLiteral() || t.Kind == LBrace
}

// Quote renders the token for "found ..." messages.
func (t Token) Quote() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case StringLit:
		return t.Text
	}
	return "'" + t.Text + "'"
}
