package bidding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidkit/internal/auction"
	"bidkit/internal/card"
)

func TestEvaluate_TwoPassesToOutcome(t *testing.T) {
	// Decision A (true) -> Decision B (true) -> Outcome X, else DeadEnd
	x := passOutcome(t, "X")
	b := MustDecision("B", fixedCond("b", CategoryHand, true), x, NewDeadEnd(""))
	a := MustDecision("A", fixedCond("a", CategoryHand, true), b, NewDeadEnd(""))

	trail := Evaluate(a, testContext(t))

	require.NotNil(t, trail.Matched)
	assert.Equal(t, "X", trail.Matched.Name)
	assert.Len(t, trail.Path, 2)
	assert.Empty(t, trail.Rejected)
	assert.Len(t, trail.Visited, 2)
}

func TestEvaluate_RejectedDecision(t *testing.T) {
	// Decision A (false) -> Outcome yes, else Outcome no
	yes := passOutcome(t, "yes")
	no := passOutcome(t, "no")
	a := MustDecision("A", fixedCond("a", CategoryHand, false), yes, no)

	trail := Evaluate(a, testContext(t))

	require.NotNil(t, trail.Matched)
	assert.Equal(t, "no", trail.Matched.Name)
	assert.Empty(t, trail.Path)
	assert.Len(t, trail.Rejected, 1)
	assert.False(t, trail.Rejected[0].Passed)
	assert.Len(t, trail.Visited, 1)
}

func TestEvaluate_DeadEnd(t *testing.T) {
	a := MustDecision("A", fixedCond("a", CategoryHand, false), passOutcome(t, "yes"), NewDeadEnd("no rule applies"))

	trail := Evaluate(a, testContext(t))

	assert.Nil(t, trail.Matched)
	assert.NoError(t, trail.ProduceErr)
	assert.Len(t, trail.Visited, 1)
}

func TestEvaluate_BareOutcomeRoot(t *testing.T) {
	trail := Evaluate(passOutcome(t, "only"), testContext(t))

	require.NotNil(t, trail.Matched)
	assert.Equal(t, "only", trail.Matched.Name)
	assert.Empty(t, trail.Path)
	assert.Empty(t, trail.Rejected)
	assert.Empty(t, trail.Visited)
}

func TestEvaluate_BareDeadEndRoot(t *testing.T) {
	trail := Evaluate(NewDeadEnd("nothing here"), testContext(t))

	assert.Nil(t, trail.Matched)
	assert.Empty(t, trail.Visited)
}

func TestEvaluate_ProduceFailure(t *testing.T) {
	broken, err := NewOutcome("broken", "", func(*Context) (auction.Call, error) {
		return auction.Call{}, errors.New("no call for this context")
	})
	require.NoError(t, err)

	root := MustDecision("A", fixedCond("a", CategoryHand, true), broken, NewDeadEnd(""))
	trail := Evaluate(root, testContext(t))

	assert.Nil(t, trail.Matched)
	assert.Error(t, trail.ProduceErr)
}

func TestEvaluate_PathPlusRejectedEqualsVisited(t *testing.T) {
	// A mixed walk: pass, fail, pass.
	x := passOutcome(t, "X")
	c := MustDecision("C", fixedCond("c", CategoryHand, true), x, NewDeadEnd(""))
	b := MustDecision("B", fixedCond("b", CategoryHand, false), NewDeadEnd(""), c)
	a := MustDecision("A", fixedCond("a", CategoryHand, true), b, NewDeadEnd(""))

	trail := Evaluate(a, testContext(t))

	require.NotNil(t, trail.Matched)
	assert.Len(t, trail.Path, 2)
	assert.Len(t, trail.Rejected, 1)
	assert.Equal(t, len(trail.Visited), len(trail.Path)+len(trail.Rejected))

	// Visited preserves traversal order, interleaving passes and fails.
	assert.Equal(t, "A", trail.Visited[0].Decision.Name)
	assert.True(t, trail.Visited[0].Passed)
	assert.Equal(t, "B", trail.Visited[1].Decision.Name)
	assert.False(t, trail.Visited[1].Passed)
	assert.Equal(t, "C", trail.Visited[2].Decision.Name)
	assert.True(t, trail.Visited[2].Passed)
}

func TestEvaluateFast_MatchesFull(t *testing.T) {
	// Exercise fast/full equivalence over a real rule tree and a spread
	// of hands.
	open1NT := MustOutcome("open-1nt", "Open 1NT", FixedCall(auction.Bid(1, auction.StrainNoTrump)))
	openSpades := MustOutcome("open-1s", "Open 1S", FixedCall(auction.Bid(1, auction.StrainSpades)))
	pass := MustOutcome("pass", "Pass", FixedCall(auction.Pass))

	shapeCheck := MustDecision("balanced", BalancedHand(), open1NT, openSpades)
	strength := MustDecision("strength", MinHCP(12), shapeCheck, pass)
	root := MustDecision("opening-seat", NoPriorBids(), strength, NewDeadEnd("auction already opened"))

	hands := []string{
		"AKQ2.T98.765.432", // 9 HCP balanced
		"AKQJ.AKQ.765.432", // 19 HCP balanced
		"AKQJT98.65432..",  // strong unbalanced
		"5432.5432.543.32", // yarborough
	}

	for _, h := range hands {
		t.Run(h, func(t *testing.T) {
			ctx := NewContext(mustHand(t, h), nil)

			full := Evaluate(root, ctx)
			fast := EvaluateFast(root, ctx)

			if full.Matched == nil {
				assert.Nil(t, fast)
				return
			}
			require.NotNil(t, fast)
			assert.Equal(t, full.Matched.Name, fast.Name)
			assert.Equal(t, full.Matched.Call, fast.Call)
		})
	}
}

func TestEvaluateFast_EquivalenceOnDeadEnd(t *testing.T) {
	hand := mustHand(t, "AKQ2.T98.765.432")
	a, err := auction.New().Add(card.North, auction.Bid(1, auction.StrainClubs))
	require.NoError(t, err)

	root := MustDecision("opening-seat", NoPriorBids(), passOutcome(t, "any"), NewDeadEnd(""))
	ctx := NewContext(hand, a)

	assert.Nil(t, Evaluate(root, ctx).Matched)
	assert.Nil(t, EvaluateFast(root, ctx))
}

func TestEvaluateFast_NeverDescribes(t *testing.T) {
	describes := 0
	x := passOutcome(t, "X")
	b := MustDecision("B", countingCond("b", false, &describes), x, passOutcome(t, "Y"))
	a := MustDecision("A", countingCond("a", true, &describes), b, NewDeadEnd(""))

	match := EvaluateFast(a, testContext(t))
	require.NotNil(t, match)
	assert.Zero(t, describes, "fast path must never call Describe")

	// The full evaluator does describe every visited decision.
	Evaluate(a, testContext(t))
	assert.Equal(t, 2, describes)
}

func TestEvaluate_DoesNotMutateContext(t *testing.T) {
	ctx := testContext(t)
	before := *ctx

	root := MustDecision("A", MinHCP(1), passOutcome(t, "X"), NewDeadEnd(""))
	Evaluate(root, ctx)
	EvaluateFast(root, ctx)

	assert.Equal(t, before, *ctx)
}
