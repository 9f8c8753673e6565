package ir

import (
	"errors"
	"strings"
)

// IdentKind tells public names from tool-generated ones.
type IdentKind uint8

const (
	// Public identifiers are written \name and come from the user's source.
	Public IdentKind = iota + 1
	// AutoGenerated identifiers are written $name and are made up by tools.
	AutoGenerated
)

func (k IdentKind) Marker() byte {
	if k == AutoGenerated {
		return '$'
	}
	return '\\'
}

func (k IdentKind) String() string {
	switch k {
	case Public:
		return "public"
	case AutoGenerated:
		return "auto"
	default:
		return "invalid"
	}
}

// Ident is an RTLIL identifier. Two identifiers are equal when both the kind
// and the name match, so \a and $a are different names.
type Ident struct {
	kind IdentKind
	name string
}

var errEmptyIdent = errors.New("identifier has no name after its marker")

// NewIdent builds an identifier from its kind and its name without marker.
func NewIdent(kind IdentKind, name string) Ident {
	return Ident{kind: kind, name: name}
}

// PublicIdent returns \name.
func PublicIdent(name string) Ident { return Ident{kind: Public, name: name} }

// AutoIdent returns $name.
func AutoIdent(name string) Ident { return Ident{kind: AutoGenerated, name: name} }

// ParseIdent splits a full spelling such as `\clk` or `$auto$3`.
func ParseIdent(spelling string) (Ident, error) {
	if spelling == "" {
		return Ident{}, errors.New("empty identifier")
	}
	var kind IdentKind
	switch spelling[0] {
	case '\\':
		kind = Public
	case '$':
		kind = AutoGenerated
	default:
		return Ident{}, errors.New("identifier must start with '\\' or '$'")
	}
	name := spelling[1:]
	if name == "" {
		return Ident{}, errEmptyIdent
	}
	if strings.IndexFunc(name, func(r rune) bool { return r <= ' ' || r == 0x7f }) >= 0 {
		return Ident{}, errors.New("identifier contains whitespace or control characters")
	}
	return Ident{kind: kind, name: name}, nil
}

// MustIdent is ParseIdent for literals known to be valid.
func MustIdent(spelling string) Ident {
	id, err := ParseIdent(spelling)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Ident) Kind() IdentKind { return id.kind }

// Name returns the identifier without its marker.
func (id Ident) Name() string { return id.name }

func (id Ident) IsPublic() bool { return id.kind == Public }

func (id Ident) IsZero() bool { return id.kind == 0 && id.name == "" }

// String returns the full spelling including the marker.
func (id Ident) String() string {
	if id.kind == 0 {
		return id.name
	}
	return string(id.kind.Marker()) + id.name
}

func (id Ident) Equal(other Ident) bool { return id == other }
