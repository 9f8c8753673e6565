package ir

// Process is a behavioral block: a decision tree of assignments plus the
// rules saying when its results are latched.
type Process struct {
	Name       Ident
	Attributes Attrs
	Root       CaseBody
	Syncs      []*SyncRule
}

// Action is one statement of a case body. Variants: *Assign, *Switch.
type Action interface {
	isAction()
}

// CaseBody is an ordered list of assignments and switches.
type CaseBody struct {
	Actions []Action
}

type Assign struct {
	LHS SigSpec
	RHS SigSpec
}

type Switch struct {
	Attributes Attrs
	Signal     SigSpec
	Cases      []*Case
}

// Case is one arm of a switch; an empty pattern list is the default arm.
type Case struct {
	Attributes Attrs
	Patterns   []SigSpec
	Body       CaseBody
}

func (*Assign) isAction() {}
func (*Switch) isAction() {}

func (c *Case) IsDefault() bool { return len(c.Patterns) == 0 }

type SyncType uint8

const (
	SyncLow SyncType = iota + 1
	SyncHigh
	SyncPosedge
	SyncNegedge
	SyncEdge
	SyncAlways
	SyncInit
	SyncGlobal
)

func (t SyncType) String() string {
	switch t {
	case SyncLow:
		return "low"
	case SyncHigh:
		return "high"
	case SyncPosedge:
		return "posedge"
	case SyncNegedge:
		return "negedge"
	case SyncEdge:
		return "edge"
	case SyncAlways:
		return "always"
	case SyncInit:
		return "init"
	case SyncGlobal:
		return "global"
	}
	return "invalid"
}

// HasSignal reports whether the trigger is tied to a signal.
func (t SyncType) HasSignal() bool {
	return t >= SyncLow && t <= SyncEdge
}

// SyncRule is a trigger with the updates and memory writes it performs.
type SyncRule struct {
	Type      SyncType
	Signal    SigSpec // nil for always, init and global
	Updates   []Assign
	MemWrites []*MemWrite
}

type MemWrite struct {
	Attributes Attrs
	Memory     Ident
	Address    SigSpec
	Data       SigSpec
	Enable     SigSpec
	Priority   Const
}
