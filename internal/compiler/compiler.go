// Package compiler turns CUE rule-set definitions into decision trees.
//
// A rule-set file declares an id, an optional description and a root node:
//
//	rule_set: {
//		id: "openings"
//		root: {
//			kind: "decision"
//			name: "opening-seat"
//			condition: {no_prior_bids: true}
//			yes: {kind: "outcome", name: "pass", label: "Pass", call: "Pass"}
//			no: {kind: "deadend", reason: "auction already opened"}
//		}
//	}
//
// Uses the CUE SDK's Go API directly, not a CLI subprocess.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"bidkit/internal/bidding"
)

// RuleSet is a compiled rule-set definition.
type RuleSet struct {
	ID          string
	Description string
	Root        bidding.Node
}

// CompileError reports a defect in a rule-set definition with its CUE
// source position when one is available.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompileRuleSet parses a CUE value into a RuleSet. The value should be
// the rule_set struct itself:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(src)
//	rs, err := CompileRuleSet(v.LookupPath(cue.ParsePath("rule_set")))
func CompileRuleSet(v cue.Value) (*RuleSet, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	idVal := v.LookupPath(cue.ParsePath("id"))
	if !idVal.Exists() {
		return nil, &CompileError{
			Field:   "id",
			Message: "id is required",
			Pos:     v.Pos(),
		}
	}
	id, err := idVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	if id == "" {
		return nil, &CompileError{
			Field:   "id",
			Message: "id must not be empty",
			Pos:     idVal.Pos(),
		}
	}

	rs := &RuleSet{ID: id}

	descVal := v.LookupPath(cue.ParsePath("description"))
	if descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		rs.Description = desc
	}

	rootVal := v.LookupPath(cue.ParsePath("root"))
	if !rootVal.Exists() {
		return nil, &CompileError{
			Field:   "root",
			Message: "root is required",
			Pos:     v.Pos(),
		}
	}
	root, err := compileNode(rootVal)
	if err != nil {
		return nil, err
	}
	rs.Root = root

	return rs, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
