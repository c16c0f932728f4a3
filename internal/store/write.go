package store

import (
	"context"
	"fmt"
)

// WriteEvaluation inserts an evaluation record.
// Returns inserted=false when a record with the same content hash already
// exists; the write is then a no-op. Other constraint violations still
// return errors.
func (s *Store) WriteEvaluation(ctx context.Context, rec Record) (inserted bool, err error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations
		(id, rule_set, seat, hand, history, matched, call, trail, content_hash, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO NOTHING
	`,
		rec.ID,
		rec.RuleSet,
		rec.Seat,
		rec.Hand,
		rec.History,
		rec.Matched,
		rec.Call,
		rec.TrailJSON,
		rec.ContentHash,
		rec.Seq,
	)
	if err != nil {
		return false, fmt.Errorf("write evaluation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write evaluation: %w", err)
	}
	return n > 0, nil
}

// NextSeq returns the next sequence number for the log. Sequence numbers
// are a logical clock; they never reuse wall time.
func (s *Store) NextSeq(ctx context.Context) (int64, error) {
	var max int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM evaluations`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return max + 1, nil
}
