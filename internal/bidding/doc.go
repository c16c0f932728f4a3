// Package bidding is the rule-evaluation core: an immutable decision tree
// over bidding contexts, a full evaluator that records the complete decision
// trail, a fast evaluator for callers that only need the chosen call, and a
// sibling engine that explains why every alternative outcome was not chosen.
//
// Evaluation is a pure function of (tree, context). Trees and conditions are
// immutable after construction, so concurrent evaluations against the same
// tree are safe without locking. The Registry is the only mutable state in
// this package and must be externally serialized if shared across goroutines.
package bidding
