package bidding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidkit/internal/card"
	"bidkit/internal/eval"
)

func TestNewContext_Defaults(t *testing.T) {
	ctx := NewContext(mustHand(t, "AKQ2.T98.765.432"), nil)

	assert.Equal(t, DefaultSeat, ctx.Seat)
	assert.Equal(t, DefaultVulnerability, ctx.Vulnerability)
	require.NotNil(t, ctx.History)
	assert.Empty(t, ctx.History.Entries)
}

func TestNewContext_DerivesSummary(t *testing.T) {
	ctx := NewContext(mustHand(t, "AKQ2.T98.765.432"), nil)

	assert.Equal(t, 9, ctx.Eval.HCP)
	assert.Equal(t, [4]int{4, 3, 3, 3}, ctx.Eval.Shape)
	assert.Equal(t, eval.MethodHCP, ctx.Eval.Method)
}

func TestNewContext_Options(t *testing.T) {
	pinned := eval.Summary{HCP: 42, Method: "pinned"}
	ctx := NewContext(mustHand(t, "AKQ2.T98.765.432"), nil,
		WithSeat(card.West),
		WithVulnerability(card.VulnBoth),
		WithSummary(pinned),
	)

	assert.Equal(t, card.West, ctx.Seat)
	assert.Equal(t, card.VulnBoth, ctx.Vulnerability)
	assert.Equal(t, pinned, ctx.Eval)
}
