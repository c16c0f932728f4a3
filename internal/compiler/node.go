package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"bidkit/internal/auction"
	"bidkit/internal/bidding"
)

// compileNode parses one tree node. Every node declares a kind: decision,
// outcome or deadend.
func compileNode(v cue.Value) (bidding.Node, error) {
	kindVal := v.LookupPath(cue.ParsePath("kind"))
	if !kindVal.Exists() {
		return nil, &CompileError{
			Field:   "kind",
			Message: "node kind is required",
			Pos:     v.Pos(),
		}
	}
	kind, err := kindVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}

	switch kind {
	case "decision":
		return compileDecision(v)
	case "outcome":
		return compileOutcome(v)
	case "deadend":
		return compileDeadEnd(v)
	default:
		return nil, &CompileError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown node kind %q (want decision, outcome or deadend)", kind),
			Pos:     kindVal.Pos(),
		}
	}
}

func compileDecision(v cue.Value) (bidding.Node, error) {
	name, err := requiredString(v, "name")
	if err != nil {
		return nil, err
	}

	condVal := v.LookupPath(cue.ParsePath("condition"))
	if !condVal.Exists() {
		return nil, &CompileError{
			Field:   "condition",
			Message: fmt.Sprintf("decision %q requires a condition", name),
			Pos:     v.Pos(),
		}
	}
	cond, err := compileCondition(condVal)
	if err != nil {
		return nil, err
	}

	yesVal := v.LookupPath(cue.ParsePath("yes"))
	if !yesVal.Exists() {
		return nil, &CompileError{
			Field:   "yes",
			Message: fmt.Sprintf("decision %q requires a yes branch", name),
			Pos:     v.Pos(),
		}
	}
	yes, err := compileNode(yesVal)
	if err != nil {
		return nil, err
	}

	noVal := v.LookupPath(cue.ParsePath("no"))
	if !noVal.Exists() {
		return nil, &CompileError{
			Field:   "no",
			Message: fmt.Sprintf("decision %q requires a no branch", name),
			Pos:     v.Pos(),
		}
	}
	no, err := compileNode(noVal)
	if err != nil {
		return nil, err
	}

	dec, err := bidding.NewDecision(name, cond, yes, no)
	if err != nil {
		return nil, &CompileError{
			Field:   "decision",
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}
	return dec, nil
}

func compileOutcome(v cue.Value) (bidding.Node, error) {
	name, err := requiredString(v, "name")
	if err != nil {
		return nil, err
	}
	label, err := requiredString(v, "label")
	if err != nil {
		return nil, err
	}
	callStr, err := requiredString(v, "call")
	if err != nil {
		return nil, err
	}

	call, err := auction.ParseCall(callStr)
	if err != nil {
		return nil, &CompileError{
			Field:   "call",
			Message: fmt.Sprintf("outcome %q: %v", name, err),
			Pos:     v.Pos(),
		}
	}

	out, err := bidding.NewOutcome(name, label, bidding.FixedCall(call))
	if err != nil {
		return nil, &CompileError{
			Field:   "outcome",
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}
	return out, nil
}

func compileDeadEnd(v cue.Value) (bidding.Node, error) {
	reason, err := requiredString(v, "reason")
	if err != nil {
		return nil, err
	}
	return bidding.NewDeadEnd(reason), nil
}

func requiredString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{
			Field:   field,
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}
