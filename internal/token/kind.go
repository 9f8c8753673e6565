package token

// Kind represents the category of a netlist token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; the lexer reports the reason.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// PublicID is a user-visible identifier: \name.
	PublicID
	// AutoID is a tool-generated identifier: $name.
	AutoID
	// Word is a bare word that is not a keyword.
	Word

	// IntLit is a signed decimal integer: -?[0-9]+.
	IntLit
	// ValueLit is a sized bit vector: <width>'<bits>.
	ValueLit
	// StringLit is a double-quoted string with escapes.
	StringLit

	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	Colon    // :
	Comma    // ,

	KwAutoidx   // autoidx
	KwModule    // module
	KwEnd       // end
	KwAttribute // attribute
	KwParameter // parameter
	KwWire      // wire
	KwMemory    // memory
	KwCell      // cell
	KwConnect   // connect
	KwProcess   // process
	KwAssign    // assign
	KwSwitch    // switch
	KwCase      // case
	KwSync      // sync
	KwUpdate    // update
	KwMemwr     // memwr

	KwWidth  // width
	KwOffset // offset
	KwSize   // size
	KwInput  // input
	KwOutput // output
	KwInout  // inout
	KwUpto   // upto
	KwSigned // signed
	KwReal   // real

	KwLow     // low
	KwHigh    // high
	KwPosedge // posedge
	KwNegedge // negedge
	KwEdge    // edge
	KwAlways  // always
	KwInit    // init
	KwGlobal  // global

	kindCount
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	PublicID:    "PublicID",
	AutoID:      "AutoID",
	Word:        "Word",
	IntLit:      "IntLit",
	ValueLit:    "ValueLit",
	StringLit:   "StringLit",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Colon:       "Colon",
	Comma:       "Comma",
	KwAutoidx:   "KwAutoidx",
	KwModule:    "KwModule",
	KwEnd:       "KwEnd",
	KwAttribute: "KwAttribute",
	KwParameter: "KwParameter",
	KwWire:      "KwWire",
	KwMemory:    "KwMemory",
	KwCell:      "KwCell",
	KwConnect:   "KwConnect",
	KwProcess:   "KwProcess",
	KwAssign:    "KwAssign",
	KwSwitch:    "KwSwitch",
	KwCase:      "KwCase",
	KwSync:      "KwSync",
	KwUpdate:    "KwUpdate",
	KwMemwr:     "KwMemwr",
	KwWidth:     "KwWidth",
	KwOffset:    "KwOffset",
	KwSize:      "KwSize",
	KwInput:     "KwInput",
	KwOutput:    "KwOutput",
	KwInout:     "KwInout",
	KwUpto:      "KwUpto",
	KwSigned:    "KwSigned",
	KwReal:      "KwReal",
	KwLow:       "KwLow",
	KwHigh:      "KwHigh",
	KwPosedge:   "KwPosedge",
	KwNegedge:   "KwNegedge",
	KwEdge:      "KwEdge",
	KwAlways:    "KwAlways",
	KwInit:      "KwInit",
	KwGlobal:    "KwGlobal",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

var punctText = map[Kind]string{
	LBrace:   "{",
	RBrace:   "}",
	LBracket: "[",
	RBracket: "]",
	Colon:    ":",
	Comma:    ",",
}

// Describe returns how k reads in an "expected ..." message.
func (k Kind) Describe() string {
	switch {
	case k == EOF:
		return "end of input"
	case k == PublicID, k == AutoID:
		return "identifier"
	case k == IntLit:
		return "integer"
	case k == ValueLit:
		return "sized value"
	case k == StringLit:
		return "string"
	case k.IsKeyword():
		return "'" + keywordText[k] + "'"
	}
	if s, ok := punctText[k]; ok {
		return "'" + s + "'"
	}
	return k.String()
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwAutoidx && k <= KwGlobal
}

// IsWireOption reports whether k may appear in a wire declaration option list.
func (k Kind) IsWireOption() bool {
	switch k {
	case KwWidth, KwOffset, KwInput, KwOutput, KwInout, KwUpto, KwSigned:
		return true
	default:
		return false
	}
}

// IsSyncType reports whether k names a sync rule trigger.
func (k Kind) IsSyncType() bool {
	return k >= KwLow && k <= KwGlobal
}
