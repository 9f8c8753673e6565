// Package token defines lexical token kinds and trivia for RTLIL netlists.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Newlines, blanks and '#' comments are trivia; the statement grammar is
//     keyword-led and never needs line ends to disambiguate.
//   - Identifiers keep their marker ('\' or '$') in Text.
package token
