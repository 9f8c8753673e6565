package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadIdentifier      Code = 1003
	LexBadNumber          Code = 1004
	LexBadValue           Code = 1005
	LexBadEscape          Code = 1006

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnexpectedEOF     Code = 2002
	SynDuplicateName     Code = 2101
	SynDanglingAttribute Code = 2102
	SynInvalidBitRange   Code = 2201
	SynNestingTooDeep    Code = 2301

	// I/O
	IOLoadFileError Code = 5001
	IOCacheError    Code = 5002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadIdentifier:      "Identifier has no name after its marker",
	LexBadNumber:          "Malformed integer literal",
	LexBadValue:           "Malformed sized value",
	LexBadEscape:          "Malformed escape in string literal",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnexpectedEOF:      "Unexpected end of input",
	SynDuplicateName:      "Duplicate name",
	SynDanglingAttribute:  "Attribute not followed by a declaration",
	SynInvalidBitRange:    "Invalid bit range",
	SynNestingTooDeep:     "Nesting too deep",
	IOLoadFileError:       "I/O load file error",
	IOCacheError:          "Cache error",
	ObsInfo:               "Observability information",
	ObsTimings:            "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
