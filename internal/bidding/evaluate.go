package bidding

import "bidkit/internal/auction"

// Match identifies the outcome an evaluation selected plus the call it
// produced.
type Match struct {
	Name  string
	Label string
	Call  auction.Call
}

// Step records one decision taken during a walk.
type Step struct {
	Decision    *Decision
	Passed      bool
	Description string
}

// Trail is the full evaluator's record of a single walk.
//
// Path holds the decisions passed en route to the leaf, Rejected the
// decisions that failed on the line of descent actually taken, and Visited
// all decisions touched, interleaving passes and fails in traversal order.
// Sibling branches not entered are not represented here; that is the
// sibling engine's job. For every walk that reaches a leaf,
// len(Path)+len(Rejected) == len(Visited).
type Trail struct {
	// Matched is nil when the walk ended at a DeadEnd, or when the
	// outcome's produce function failed (see ProduceErr).
	Matched *Match

	// ProduceErr records a produce failure at the reached outcome.
	// A non-match is not an error; ProduceErr is nil for a DeadEnd.
	ProduceErr error

	Path     []Step
	Rejected []Step
	Visited  []Step
}

// Evaluate walks the tree from root and returns the complete decision
// trail. It never fails for a non-match: a DeadEnd leaf yields a Trail
// with Matched == nil. A tree whose root is a bare leaf yields empty
// Path/Rejected/Visited.
func Evaluate(root Node, ctx *Context) *Trail {
	trail := &Trail{}

	current := root
	for {
		switch n := current.(type) {
		case *Decision:
			passed := n.Cond.Test(ctx)
			step := Step{Decision: n, Passed: passed, Description: n.Cond.Describe(ctx)}
			trail.Visited = append(trail.Visited, step)
			if passed {
				trail.Path = append(trail.Path, step)
				current = n.Yes
			} else {
				trail.Rejected = append(trail.Rejected, step)
				current = n.No
			}

		case *Outcome:
			call, err := n.Produce(ctx)
			if err != nil {
				trail.ProduceErr = err
				return trail
			}
			trail.Matched = &Match{Name: n.Name, Label: n.Label, Call: call}
			return trail

		case *DeadEnd:
			return trail
		}
	}
}

// EvaluateFast walks the tree with minimal bookkeeping: no trail records
// are allocated and no condition's Describe is ever called. Returns nil
// for a DeadEnd or a produce failure.
//
// Contract: for every (tree, context), EvaluateFast names the same outcome
// as Evaluate(...).Matched, or both are nil.
func EvaluateFast(root Node, ctx *Context) *Match {
	current := root
	for {
		switch n := current.(type) {
		case *Decision:
			if n.Cond.Test(ctx) {
				current = n.Yes
			} else {
				current = n.No
			}

		case *Outcome:
			call, err := n.Produce(ctx)
			if err != nil {
				return nil
			}
			return &Match{Name: n.Name, Label: n.Label, Call: call}

		case *DeadEnd:
			return nil
		}
	}
}
