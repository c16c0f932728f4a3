package bidding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	tree := passOutcome(t, "only")

	require.NoError(t, r.Register("openings", tree, Metadata{Description: "opening bids"}))

	entry, ok := r.Get("openings")
	require.True(t, ok)
	assert.Equal(t, "openings", entry.ID)
	assert.Same(t, tree, entry.Root.(*Outcome))
	assert.Equal(t, "opening bids", entry.Meta.Description)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry()
	t1 := passOutcome(t, "t1")
	t2 := passOutcome(t, "t2")

	require.NoError(t, r.Register("rs", t1, Metadata{}))
	require.NoError(t, r.Register("rs", t2, Metadata{}))

	entry, ok := r.Get("rs")
	require.True(t, ok)
	assert.Same(t, t2, entry.Root.(*Outcome))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ValidatesInput(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register("", passOutcome(t, "x"), Metadata{}))
	assert.Error(t, r.Register("rs", nil, Metadata{}))
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("zeta", passOutcome(t, "z"), Metadata{}))
	require.NoError(t, r.Register("alpha", passOutcome(t, "a"), Metadata{}))
	require.NoError(t, r.Register("mid", passOutcome(t, "m"), Metadata{}))

	entries := r.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].ID)
	assert.Equal(t, "mid", entries[1].ID)
	assert.Equal(t, "zeta", entries[2].ID)
}

func TestRegistry_ClearEmpties(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("rs", passOutcome(t, "x"), Metadata{}))

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.List())

	_, ok := r.Get("rs")
	assert.False(t, ok)
}

func TestRegistry_FreshConstructionIsReset(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("rs", passOutcome(t, "x"), Metadata{}))

	r = NewRegistry()
	assert.Zero(t, r.Len())
}
