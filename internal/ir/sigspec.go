package ir

// SigSpec is a signal specification. Variants: *WireRef, *ConstSig, *Concat.
type SigSpec interface {
	isSigSpec()
}

// BitRange selects bits of a wire: [Hi:Lo], or [Hi] when Single is set.
type BitRange struct {
	Hi     int
	Lo     int
	Single bool
}

// Width is the number of selected bits.
func (r BitRange) Width() int {
	return r.Hi - r.Lo + 1
}

// WireRef names a wire, optionally narrowed to a bit range.
type WireRef struct {
	Name  Ident
	Range *BitRange
}

// ConstSig is a literal used as a signal.
type ConstSig struct {
	Value Const
}

// Concat joins parts; the first part holds the most significant bits.
type Concat struct {
	Parts []SigSpec
}

func (*WireRef) isSigSpec()  {}
func (*ConstSig) isSigSpec() {}
func (*Concat) isSigSpec()   {}

// Ref is shorthand for an unsliced wire reference.
func Ref(name Ident) *WireRef { return &WireRef{Name: name} }

// Slice references bits hi..lo of a wire.
func Slice(name Ident, hi, lo int) *WireRef {
	return &WireRef{Name: name, Range: &BitRange{Hi: hi, Lo: lo}}
}

// Bit references a single bit of a wire.
func Bit(name Ident, idx int) *WireRef {
	return &WireRef{Name: name, Range: &BitRange{Hi: idx, Lo: idx, Single: true}}
}

// Lit wraps a constant as a signal.
func Lit(c Const) *ConstSig { return &ConstSig{Value: c} }

// Cat concatenates parts.
func Cat(parts ...SigSpec) *Concat {
	if parts == nil {
		parts = []SigSpec{}
	}
	return &Concat{Parts: parts}
}
