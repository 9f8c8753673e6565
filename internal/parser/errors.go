package parser

import (
	"fmt"

	"rtlil/internal/diag"
	"rtlil/internal/source"
)

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	// UnexpectedToken: a token that does not fit the grammar at this point.
	UnexpectedToken ErrorKind = iota + 1
	// DuplicateName: a name declared twice in the same category and scope.
	DuplicateName
	// MalformedLiteral: a literal or identifier with broken internal structure.
	MalformedLiteral
	// InvalidBitRange: a non-numeric, negative or descending-order violating range.
	InvalidBitRange
	// UnexpectedEndOfInput: the file ended inside a construct.
	UnexpectedEndOfInput
	// NestingTooDeep: switches or concatenations nested beyond Options.MaxDepth.
	NestingTooDeep
	// DanglingAttribute: attributes not followed by anything that can carry them.
	DanglingAttribute
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case DuplicateName:
		return "DuplicateName"
	case MalformedLiteral:
		return "MalformedLiteral"
	case InvalidBitRange:
		return "InvalidBitRange"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case NestingTooDeep:
		return "NestingTooDeep"
	case DanglingAttribute:
		return "DanglingAttribute"
	}
	return "ErrorKind(?)"
}

// Error is the single failure a parse can end with. Which descriptive fields
// are set depends on Kind.
type Error struct {
	Kind ErrorKind
	Code diag.Code

	Expected string // UnexpectedToken, UnexpectedEndOfInput, DanglingAttribute
	Found    string // UnexpectedToken, DanglingAttribute
	Category string // DuplicateName: "module", "wire", "cell port", ...
	Name     string // DuplicateName, DanglingAttribute
	Literal  string // MalformedLiteral: "integer", "value", "string", "identifier"
	Fragment string // MalformedLiteral, InvalidBitRange: offending source text
	Reason   string // MalformedLiteral, InvalidBitRange
	Limit    int    // NestingTooDeep

	Span source.Span
	Prev source.Span // DuplicateName: first declaration
	Path string
	Pos  source.LineCol
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Message())
}

// Message describes the failure without its location.
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected %s, expected %s", e.Found, e.Expected)
	case UnexpectedEndOfInput:
		return "unexpected end of input, expected " + e.Expected
	case DuplicateName:
		return fmt.Sprintf("duplicate %s name %s", e.Category, e.Name)
	case MalformedLiteral:
		return fmt.Sprintf("malformed %s %s: %s", e.Literal, e.Fragment, e.Reason)
	case InvalidBitRange:
		return fmt.Sprintf("invalid bit range %s: %s", e.Fragment, e.Reason)
	case NestingTooDeep:
		return fmt.Sprintf("nesting deeper than %d levels", e.Limit)
	case DanglingAttribute:
		return fmt.Sprintf("attribute %s is not followed by %s (found %s)", e.Name, e.Expected, e.Found)
	}
	return "parse error"
}

// Diagnostic converts the error for a diag.Bag.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Code, e.Span, e.Message())
	if e.Kind == DuplicateName && !e.Prev.Empty() {
		d = d.WithNote(e.Prev, "first declared here")
	}
	return d
}

func defaultCode(k ErrorKind) diag.Code {
	switch k {
	case UnexpectedToken:
		return diag.SynUnexpectedToken
	case UnexpectedEndOfInput:
		return diag.SynUnexpectedEOF
	case DuplicateName:
		return diag.SynDuplicateName
	case MalformedLiteral:
		return diag.LexBadNumber
	case InvalidBitRange:
		return diag.SynInvalidBitRange
	case NestingTooDeep:
		return diag.SynNestingTooDeep
	case DanglingAttribute:
		return diag.SynDanglingAttribute
	}
	return diag.UnknownCode
}

// literalKind names the literal class a lexer diagnostic is about.
func literalKind(code diag.Code) string {
	switch code {
	case diag.LexUnterminatedString, diag.LexBadEscape:
		return "string"
	case diag.LexBadIdentifier:
		return "identifier"
	case diag.LexBadValue:
		return "value"
	default:
		return "integer"
	}
}
