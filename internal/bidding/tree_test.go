package bidding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidkit/internal/auction"
)

func TestNewDecision_Valid(t *testing.T) {
	yes := passOutcome(t, "yes")
	no := NewDeadEnd("")

	d, err := NewDecision("check", fixedCond("c", CategoryHand, true), yes, no)
	require.NoError(t, err)
	assert.Equal(t, "check", d.Name)
}

func TestNewDecision_MissingBranch(t *testing.T) {
	leaf := passOutcome(t, "leaf")

	_, err := NewDecision("check", fixedCond("c", CategoryHand, true), leaf, nil)
	require.Error(t, err)

	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeMissingBranch, se.Code)
	assert.Equal(t, "check", se.Node)
}

func TestNewDecision_MissingCondition(t *testing.T) {
	leaf := passOutcome(t, "leaf")

	_, err := NewDecision("check", Condition{Name: "empty"}, leaf, NewDeadEnd(""))
	require.Error(t, err)

	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeMissingCondition, se.Code)
}

func TestNewDecision_MissingName(t *testing.T) {
	leaf := passOutcome(t, "leaf")

	_, err := NewDecision("", fixedCond("c", CategoryHand, true), leaf, NewDeadEnd(""))
	require.Error(t, err)

	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeMissingName, se.Code)
}

func TestNewOutcome_MissingProduce(t *testing.T) {
	_, err := NewOutcome("name", "label", nil)
	require.Error(t, err)

	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeMissingProduce, se.Code)
}

func TestNewOutcome_MissingName(t *testing.T) {
	_, err := NewOutcome("", "label", FixedCall(auction.Pass))
	require.Error(t, err)
}

func TestMustDecision_PanicsOnDefect(t *testing.T) {
	leaf := passOutcome(t, "leaf")
	assert.Panics(t, func() {
		MustDecision("broken", fixedCond("c", CategoryHand, true), leaf, nil)
	})
}

func TestFixedCall(t *testing.T) {
	produce := FixedCall(auction.Bid(1, auction.StrainNoTrump))
	call, err := produce(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, "1NT", call.String())
}
