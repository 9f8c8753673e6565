package token_test

import (
	"testing"

	"rtlil/internal/source"
	"rtlil/internal/token"
)

func TestCommentTriviaShape(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaComment,
		Span: source.Span{Start: 0, End: 14},
		Text: "# generated by",
	}
	tk := token.Token{
		Kind:    token.KwModule,
		Span:    source.Span{Start: 15, End: 21},
		Text:    "module",
		Leading: []token.Trivia{tv, {Kind: token.TriviaNewline, Span: source.Span{Start: 14, End: 15}, Text: "\n"}},
	}
	if len(tk.Leading) != 2 || tk.Leading[0].Kind != token.TriviaComment {
		t.Fatalf("comment trivia must be kept in order")
	}
	if tk.Leading[1].Kind.String() != "Newline" {
		t.Fatalf("unexpected trivia kind name %q", tk.Leading[1].Kind)
	}
}
