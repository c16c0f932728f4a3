package bidding

import "bidkit/internal/auction"

// Node is the closed set of rule-tree node kinds. Exactly three types
// implement it: *Decision, *Outcome and *DeadEnd. The evaluators switch
// exhaustively over these; a new node kind cannot be added without
// updating every consumer.
//
// Trees are finite, acyclic, and immutable after construction.
// Evaluation never writes to a node.
type Node interface {
	node()
}

// ProduceFunc yields the concrete call for an outcome. It may fail when
// invoked even though the reference was validated at construction time.
type ProduceFunc func(*Context) (auction.Call, error)

// Decision branches on one condition: Yes when the condition passes,
// No otherwise.
type Decision struct {
	Name string
	Cond Condition
	Yes  Node
	No   Node
}

// Outcome is a leaf that yields a concrete call.
type Outcome struct {
	Name    string
	Label   string
	Produce ProduceFunc
}

// DeadEnd is a leaf meaning "no applicable outcome here".
type DeadEnd struct {
	Reason string
}

func (*Decision) node() {}
func (*Outcome) node()  {}
func (*DeadEnd) node()  {}

// NewDecision builds a Decision, validating eagerly that the condition and
// both branches are present. Structural defects are reported here at build
// time, never at evaluation time.
func NewDecision(name string, cond Condition, yes, no Node) (*Decision, error) {
	if name == "" {
		return nil, newStructureError(ErrCodeMissingName, "", "decision requires a name")
	}
	if cond.Test == nil {
		return nil, newStructureError(ErrCodeMissingCondition, name, "decision requires a condition with a test")
	}
	if cond.Describe == nil {
		return nil, newStructureError(ErrCodeMissingCondition, name, "decision condition requires a describe function")
	}
	if yes == nil || no == nil {
		return nil, newStructureError(ErrCodeMissingBranch, name, "decision requires both yes and no branches")
	}
	return &Decision{Name: name, Cond: cond, Yes: yes, No: no}, nil
}

// NewOutcome builds an Outcome leaf. The produce reference must be non-nil
// at construction, though it may still fail when invoked.
func NewOutcome(name, label string, produce ProduceFunc) (*Outcome, error) {
	if name == "" {
		return nil, newStructureError(ErrCodeMissingName, "", "outcome requires a name")
	}
	if produce == nil {
		return nil, newStructureError(ErrCodeMissingProduce, name, "outcome requires a produce function")
	}
	return &Outcome{Name: name, Label: label, Produce: produce}, nil
}

// NewDeadEnd builds a DeadEnd leaf. The reason is optional.
func NewDeadEnd(reason string) *DeadEnd {
	return &DeadEnd{Reason: reason}
}

// MustDecision is NewDecision that panics on structural error.
// Intended for statically authored trees where a defect is a programming
// bug caught at init.
func MustDecision(name string, cond Condition, yes, no Node) *Decision {
	d, err := NewDecision(name, cond, yes, no)
	if err != nil {
		panic(err)
	}
	return d
}

// MustOutcome is NewOutcome that panics on structural error.
func MustOutcome(name, label string, produce ProduceFunc) *Outcome {
	o, err := NewOutcome(name, label, produce)
	if err != nil {
		panic(err)
	}
	return o
}

// FixedCall returns a ProduceFunc that always yields the given call.
// Most authored outcomes are fixed calls; context-dependent produce
// functions are the exception.
func FixedCall(c auction.Call) ProduceFunc {
	return func(*Context) (auction.Call, error) {
		return c, nil
	}
}
