package bidding

import (
	"fmt"
	"log/slog"

	"bidkit/internal/auction"
)

// Sibling explains one alternative outcome: the call it would have
// produced and every condition on its path whose actual value disagrees
// with the branch direction that path requires.
type Sibling struct {
	OutcomeName string
	Label       string
	Call        auction.Call

	// Failed lists the conditions blocking this alternative, in path
	// order. An empty Failed means the alternative is actually reachable,
	// which must not occur for a consistent tree.
	Failed []FailedCondition
}

// FailedCondition is one blocking condition on an alternative's path.
type FailedCondition struct {
	Name        string
	Category    Category
	Required    bool // branch direction the alternative's path needs
	Description string
}

// pathStep pairs a decision with the branch direction required to reach
// a target beneath it.
type pathStep struct {
	dec *Decision
	yes bool
}

// FindSiblings answers "what else could I have done, and why didn't I?".
//
// It re-walks the tree to the matched outcome, splits that path at the
// boundary between auction-category and hand-category decisions (everything
// at or above the last auction-category decision is shared by every rule in
// this situational context), then exhaustively enumerates every other
// outcome leaf below the boundary - exploring both branches of every
// decision, not just the one actually taken - and reports which conditions
// block each one.
//
// The category-ordering invariant is re-validated along the matched path;
// a violation returns a StructureError (CATEGORY_ORDER) and no partial
// result. A produce failure for one alternative is logged and that single
// alternative dropped; enumeration of the others continues. DeadEnd leaves
// are not alternatives and never appear in the result.
func FindSiblings(root Node, matched string, ctx *Context) ([]Sibling, error) {
	path, ok := findPath(root, matched)
	if !ok {
		return nil, newStructureError(ErrCodeOutcomeNotFound, matched,
			fmt.Sprintf("outcome %q is not in the tree", matched))
	}

	if err := validateCategoryOrder(path); err != nil {
		return nil, err
	}

	// The fixed prefix ends at the last auction-category decision on the
	// path; the subtree entered from it is where hand-specific
	// alternatives live. With no auction decisions the whole tree is in
	// play.
	boundary := root
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].dec.Cond.Category == CategoryAuction {
			boundary = follow(root, path[:i+1])
			break
		}
	}

	var siblings []Sibling
	collectSiblings(boundary, nil, matched, ctx, &siblings)
	return siblings, nil
}

// findPath locates the outcome named target, returning the decisions and
// branch directions leading to it.
func findPath(node Node, target string) ([]pathStep, bool) {
	switch n := node.(type) {
	case *Outcome:
		return nil, n.Name == target

	case *DeadEnd:
		return nil, false

	case *Decision:
		if sub, ok := findPath(n.Yes, target); ok {
			return append([]pathStep{{dec: n, yes: true}}, sub...), true
		}
		if sub, ok := findPath(n.No, target); ok {
			return append([]pathStep{{dec: n, yes: false}}, sub...), true
		}
	}
	return nil, false
}

// validateCategoryOrder rejects paths where an auction-category decision
// sits strictly below a hand-category one. This indicates the tree was
// authored incorrectly; callers must not silently swallow it.
func validateCategoryOrder(path []pathStep) error {
	seenHand := false
	for _, step := range path {
		switch step.dec.Cond.Category {
		case CategoryHand:
			seenHand = true
		case CategoryAuction:
			if seenHand {
				return newStructureError(ErrCodeCategoryOrder, step.dec.Name,
					"auction-category condition nested below a hand-category one")
			}
		}
	}
	return nil
}

// follow descends from node along the given path steps and returns the
// node reached.
func follow(node Node, path []pathStep) Node {
	for _, step := range path {
		dec := node.(*Decision)
		if step.yes {
			node = dec.Yes
		} else {
			node = dec.No
		}
	}
	return node
}

// collectSiblings enumerates every outcome leaf under node except the
// matched one, exploring both branches of every decision. trail carries
// the decisions between the boundary and the current node.
func collectSiblings(node Node, trail []pathStep, matched string, ctx *Context, out *[]Sibling) {
	switch n := node.(type) {
	case *DeadEnd:
		return

	case *Outcome:
		if n.Name == matched {
			return
		}

		var failed []FailedCondition
		for _, step := range trail {
			if step.dec.Cond.Test(ctx) != step.yes {
				failed = append(failed, FailedCondition{
					Name:        step.dec.Cond.Name,
					Category:    step.dec.Cond.Category,
					Required:    step.yes,
					Description: step.dec.Cond.Describe(ctx),
				})
			}
		}

		call, err := n.Produce(ctx)
		if err != nil {
			// One broken alternative must not blank the whole explanation.
			slog.Warn("sibling produce failed, dropping alternative",
				"outcome", n.Name,
				"error", err,
			)
			return
		}

		*out = append(*out, Sibling{
			OutcomeName: n.Name,
			Label:       n.Label,
			Call:        call,
			Failed:      failed,
		})

	case *Decision:
		collectSiblings(n.Yes, append(trail, pathStep{dec: n, yes: true}), matched, ctx, out)
		collectSiblings(n.No, append(trail, pathStep{dec: n, yes: false}), matched, ctx, out)
	}
}
