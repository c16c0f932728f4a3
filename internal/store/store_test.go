package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidkit/internal/auction"
	"bidkit/internal/bidding"
	"bidkit/internal/card"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// testRecord builds a record by evaluating a minimal tree over a real hand.
func testRecord(t *testing.T, id string, seq int64) Record {
	return testRecordHand(t, id, seq, "AKQ2.KJ9.Q75.432")
}

func testRecordHand(t *testing.T, id string, seq int64, hand string) Record {
	t.Helper()

	h, err := card.ParseHand(hand)
	require.NoError(t, err)
	ctx := bidding.NewContext(h, auction.New())

	tree := bidding.MustDecision("strong",
		bidding.MinHCP(12),
		bidding.MustOutcome("open", "Open the bidding",
			bidding.FixedCall(auction.Bid(1, auction.StrainClubs))),
		bidding.MustOutcome("pass", "Pass", bidding.FixedCall(auction.Pass)))
	trail := bidding.Evaluate(tree, ctx)
	require.NotNil(t, trail.Matched)

	rec, err := NewRecord(NewFixedGenerator(id), "openings", ctx, trail, seq)
	require.NoError(t, err)
	return rec
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var version int
	require.NoError(t, s2.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestNewRecord(t *testing.T) {
	rec := testRecord(t, "rec-1", 1)

	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "openings", rec.RuleSet)
	assert.Equal(t, "S", rec.Seat)
	assert.Equal(t, "open", rec.Matched)
	assert.Equal(t, "1C", rec.Call)
	assert.Len(t, rec.ContentHash, 64)
	assert.Contains(t, rec.TrailJSON, `"decision":"strong"`)
}

func TestNewRecord_HashStableAcrossIDs(t *testing.T) {
	a := testRecord(t, "rec-a", 7)
	b := testRecord(t, "rec-b", 7)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ContentHash, b.ContentHash)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("one", "two")
	assert.Equal(t, "one", gen.Generate())
	assert.Equal(t, "two", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.WriteEvaluation(ctx, testRecord(t, "rec-1", 1))
	require.NoError(t, err)

	rows, err := s.Query(ctx, `SELECT COUNT(*) FROM evaluations`)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var n int
	require.NoError(t, rows.Scan(&n))
	assert.Equal(t, 1, n)
}
