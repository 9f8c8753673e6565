package token

import "rtlil/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaComment // '#' up to the end of the line
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	default:
		return "TriviaKind(?)"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
