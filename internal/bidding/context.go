package bidding

import (
	"bidkit/internal/auction"
	"bidkit/internal/card"
	"bidkit/internal/eval"
)

// Context is the single immutable input to one evaluation: the acting
// player's hand, the accumulated call history, the player's seat, the
// derived evaluation summary, and the table vulnerability.
//
// A Context is never mutated during an evaluation; it is passed down the
// whole walk by reference.
type Context struct {
	Hand          card.Hand
	History       *auction.Auction
	Seat          card.Seat
	Eval          eval.Summary
	Vulnerability card.Vulnerability
}

// Defaults for optional context fields. These are centralized here: no
// other code may duplicate them, or call sites drift.
const (
	// DefaultSeat is the baseline position assumed when the caller does
	// not say who is acting.
	DefaultSeat = card.South

	// DefaultVulnerability is the situational modifier assumed when the
	// caller does not supply one.
	DefaultVulnerability = card.VulnNone
)

// ContextOption configures optional Context fields.
type ContextOption func(*Context)

// WithSeat sets the acting seat.
func WithSeat(seat card.Seat) ContextOption {
	return func(ctx *Context) {
		ctx.Seat = seat
	}
}

// WithVulnerability sets the table vulnerability.
func WithVulnerability(v card.Vulnerability) ContextOption {
	return func(ctx *Context) {
		ctx.Vulnerability = v
	}
}

// WithSummary overrides the derived evaluation summary. Used when the
// caller has already evaluated the hand, or by tests that pin a summary.
func WithSummary(s eval.Summary) ContextOption {
	return func(ctx *Context) {
		ctx.Eval = s
	}
}

// NewContext is the canonical construction path for evaluation contexts.
// A nil history means an empty auction. Omitted optional fields take the
// documented defaults; the evaluation summary is derived from the hand
// unless WithSummary overrides it.
func NewContext(hand card.Hand, history *auction.Auction, opts ...ContextOption) *Context {
	if history == nil {
		history = auction.New()
	}

	ctx := &Context{
		Hand:          hand,
		History:       history,
		Seat:          DefaultSeat,
		Eval:          eval.Evaluate(hand),
		Vulnerability: DefaultVulnerability,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}
