package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"bidkit/internal/bidding"
	"bidkit/internal/card"
)

// compileCondition parses a condition struct. Exactly one condition field
// must be set per struct; combinators nest via all_of/any_of.
func compileCondition(v cue.Value) (bidding.Condition, error) {
	var zero bidding.Condition

	iter, err := v.Fields()
	if err != nil {
		return zero, formatCUEError(err)
	}

	var conds []bidding.Condition
	for iter.Next() {
		cond, err := compileConditionField(iter.Label(), iter.Value())
		if err != nil {
			return zero, err
		}
		conds = append(conds, cond)
	}

	switch len(conds) {
	case 0:
		return zero, &CompileError{
			Field:   "condition",
			Message: "condition must set at least one field",
			Pos:     v.Pos(),
		}
	case 1:
		return conds[0], nil
	default:
		// Multiple fields on one struct conjoin.
		return bidding.And(conds...), nil
	}
}

func compileConditionField(label string, v cue.Value) (bidding.Condition, error) {
	var zero bidding.Condition

	switch label {
	case "min_hcp":
		n, err := intField(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.MinHCP(n), nil

	case "max_hcp":
		n, err := intField(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.MaxHCP(n), nil

	case "hcp_range":
		bounds, err := intList(v, label)
		if err != nil {
			return zero, err
		}
		if len(bounds) != 2 {
			return zero, &CompileError{
				Field:   label,
				Message: fmt.Sprintf("hcp_range wants [lo, hi], got %d elements", len(bounds)),
				Pos:     v.Pos(),
			}
		}
		return bidding.HCPRange(bounds[0], bounds[1]), nil

	case "balanced":
		ok, err := v.Bool()
		if err != nil {
			return zero, formatCUEError(err)
		}
		if !ok {
			return zero, &CompileError{
				Field:   label,
				Message: "balanced only supports true",
				Pos:     v.Pos(),
			}
		}
		return bidding.BalancedHand(), nil

	case "suit_min_length":
		suit, n, err := suitLength(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.SuitMinLength(suit, n), nil

	case "suit_max_length":
		suit, n, err := suitLength(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.SuitMaxLength(suit, n), nil

	case "longest_suit":
		code, err := v.String()
		if err != nil {
			return zero, formatCUEError(err)
		}
		suit, err := card.ParseSuit(code)
		if err != nil {
			return zero, &CompileError{
				Field:   label,
				Message: err.Error(),
				Pos:     v.Pos(),
			}
		}
		return bidding.LongestSuitIs(suit), nil

	case "no_prior_bids":
		ok, err := v.Bool()
		if err != nil {
			return zero, formatCUEError(err)
		}
		if !ok {
			return zero, &CompileError{
				Field:   label,
				Message: "no_prior_bids only supports true",
				Pos:     v.Pos(),
			}
		}
		return bidding.NoPriorBids(), nil

	case "auction_matches":
		calls, err := stringList(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.AuctionMatches(calls...), nil

	case "partner_opened":
		call, err := v.String()
		if err != nil {
			return zero, formatCUEError(err)
		}
		return bidding.PartnerOpened(call), nil

	case "all_of":
		conds, err := conditionList(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.And(conds...), nil

	case "any_of":
		conds, err := conditionList(v, label)
		if err != nil {
			return zero, err
		}
		return bidding.Or(conds...), nil

	default:
		return zero, &CompileError{
			Field:   label,
			Message: fmt.Sprintf("unknown condition %q", label),
			Pos:     v.Pos(),
		}
	}
}

func suitLength(v cue.Value, label string) (card.Suit, int, error) {
	code, err := requiredString(v, "suit")
	if err != nil {
		return 0, 0, err
	}
	suit, err := card.ParseSuit(code)
	if err != nil {
		return 0, 0, &CompileError{
			Field:   label,
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}
	n, err := intField(v.LookupPath(cue.ParsePath("length")), label)
	if err != nil {
		return 0, 0, err
	}
	return suit, n, nil
}

func intField(v cue.Value, label string) (int, error) {
	if !v.Exists() {
		return 0, &CompileError{
			Field:   label,
			Message: "integer value is required",
			Pos:     v.Pos(),
		}
	}
	n, err := v.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return int(n), nil
}

func intList(v cue.Value, label string) ([]int, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []int
	for iter.Next() {
		n, err := iter.Value().Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, int(n))
	}
	return out, nil
}

func stringList(v cue.Value, label string) ([]string, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}

func conditionList(v cue.Value, label string) ([]bidding.Condition, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []bidding.Condition
	for iter.Next() {
		cond, err := compileCondition(iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, cond)
	}
	if len(out) == 0 {
		return nil, &CompileError{
			Field:   label,
			Message: label + " wants at least one condition",
			Pos:     v.Pos(),
		}
	}
	return out, nil
}
