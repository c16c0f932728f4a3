package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("record not found")

const recordColumns = `id, rule_set, seat, hand, history, matched, call, trail, content_hash, seq, created_at`

func scanRecord(row interface{ Scan(...any) error }) (Record, error) {
	var rec Record
	var createdAt string
	err := row.Scan(
		&rec.ID,
		&rec.RuleSet,
		&rec.Seat,
		&rec.Hand,
		&rec.History,
		&rec.Matched,
		&rec.Call,
		&rec.TrailJSON,
		&rec.ContentHash,
		&rec.Seq,
		&createdAt,
	)
	if err != nil {
		return Record{}, err
	}
	if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		rec.CreatedAt = t
	}
	return rec, nil
}

// GetEvaluation fetches a record by ID. Returns ErrNotFound if absent.
func (s *Store) GetEvaluation(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM evaluations WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("get evaluation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get evaluation %s: %w", id, err)
	}
	return rec, nil
}

// GetEvaluationByHash fetches a record by content hash.
// Returns ErrNotFound if absent.
func (s *Store) GetEvaluationByHash(ctx context.Context, hash string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM evaluations WHERE content_hash = ?`, hash)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("get evaluation by hash: %w", ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get evaluation by hash: %w", err)
	}
	return rec, nil
}

// ListEvaluations returns records for a rule set, or all records when
// ruleSet is empty. Ordered by seq ASC, id ASC so listings are
// deterministic across runs.
func (s *Store) ListEvaluations(ctx context.Context, ruleSet string) ([]Record, error) {
	query := `SELECT ` + recordColumns + ` FROM evaluations`
	var args []any
	if ruleSet != "" {
		query += ` WHERE rule_set = ?`
		args = append(args, ruleSet)
	}
	query += ` ORDER BY seq ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list evaluations: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return recs, nil
}
