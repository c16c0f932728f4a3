package store

import (
	"fmt"
	"time"

	"bidkit/internal/bidding"
	"bidkit/internal/canonical"
)

// Record is one stored evaluation.
type Record struct {
	ID      string
	RuleSet string
	Seat    string
	Hand    string
	History string

	// Matched and Call are empty when the evaluation reached a dead end.
	Matched string
	Call    string

	// TrailJSON is the serialized decision trail for display; it is not
	// part of the content hash.
	TrailJSON string

	// ContentHash identifies the evaluation by its inputs. Two records
	// with the same rule set, seat, hand and history collide here and
	// the second write is a no-op.
	ContentHash string

	Seq       int64
	CreatedAt time.Time
}

// NewRecord builds a Record from an evaluation result. The ID comes from
// gen; the content hash is computed over the inputs.
func NewRecord(gen IDGenerator, ruleSet string, ctx *bidding.Context, trail *bidding.Trail, seq int64) (Record, error) {
	trailJSON, err := marshalTrail(trail)
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}

	seat := ctx.Seat.String()
	hand := ctx.Hand.String()
	history := ctx.History.String()

	hash, err := canonical.EvaluationHash(ruleSet, seat, hand, history)
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}

	rec := Record{
		ID:          gen.Generate(),
		RuleSet:     ruleSet,
		Seat:        seat,
		Hand:        hand,
		History:     history,
		TrailJSON:   trailJSON,
		ContentHash: hash,
		Seq:         seq,
	}
	if trail.Matched != nil {
		rec.Matched = trail.Matched.Name
		rec.Call = trail.Matched.Call.String()
	}
	return rec, nil
}
