package bidding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidkit/internal/auction"
	"bidkit/internal/card"
)

// responseTree models responses after partner's 1NT opening: an
// auction-category prefix followed by hand-category strength checks.
//
//	partner-1nt (auction)
//	├── yes: invite-strength (8-9 HCP)
//	│        ├── yes: Outcome invite-2nt
//	│        └── no:  game-strength (10+ HCP)
//	│                 ├── yes: Outcome raise-3nt
//	│                 └── no:  Outcome pass
//	└── no:  Outcome out-of-context
func responseTree(t *testing.T) Node {
	t.Helper()

	invite := MustOutcome("invite-2nt", "Invite with 2NT", FixedCall(auction.Bid(2, auction.StrainNoTrump)))
	raise := MustOutcome("raise-3nt", "Raise to game", FixedCall(auction.Bid(3, auction.StrainNoTrump)))
	pass := MustOutcome("pass", "Pass", FixedCall(auction.Pass))
	other := MustOutcome("out-of-context", "Not a 1NT response", FixedCall(auction.Pass))

	game := MustDecision("game-strength", MinHCP(10), raise, pass)
	strength := MustDecision("invite-strength", HCPRange(8, 9), invite, game)
	return MustDecision("partner-1nt", AuctionMatches("1NT", "Pass"), strength, other)
}

// oneNTAuction builds the history "1NT - Pass" with North opening, leaving
// South (the default seat) to act.
func oneNTAuction(t *testing.T) *auction.Auction {
	t.Helper()

	a, err := auction.New().Add(card.North, auction.Bid(1, auction.StrainNoTrump))
	require.NoError(t, err)
	a, err = a.Add(card.East, auction.Pass)
	require.NoError(t, err)
	return a
}

func TestFindSiblings_ReportsBlockedAlternatives(t *testing.T) {
	tree := responseTree(t)
	ctx := NewContext(mustHand(t, "AKQ2.T98.765.432"), oneNTAuction(t)) // 9 HCP

	trail := Evaluate(tree, ctx)
	require.NotNil(t, trail.Matched)
	require.Equal(t, "invite-2nt", trail.Matched.Name)

	siblings, err := FindSiblings(tree, trail.Matched.Name, ctx)
	require.NoError(t, err)

	byName := make(map[string]Sibling, len(siblings))
	for _, s := range siblings {
		byName[s.OutcomeName] = s
	}

	// raise-3nt needs invite-strength to fail and game-strength to pass;
	// the actual context disagrees on both.
	raise, ok := byName["raise-3nt"]
	require.True(t, ok)
	require.Len(t, raise.Failed, 2)
	assert.Equal(t, "hcp_range(8-9)", raise.Failed[0].Name)
	assert.False(t, raise.Failed[0].Required)
	assert.Equal(t, "min_hcp(10)", raise.Failed[1].Name)
	assert.True(t, raise.Failed[1].Required)
	assert.Equal(t, "3NT", raise.Call.String())

	// pass only disagrees on invite-strength.
	pass, ok := byName["pass"]
	require.True(t, ok)
	require.Len(t, pass.Failed, 1)
	assert.Equal(t, "hcp_range(8-9)", pass.Failed[0].Name)
}

func TestFindSiblings_FixedPrefixExcludesOtherAuctionBranch(t *testing.T) {
	// The out-of-context outcome sits on the other branch of the
	// auction-category decision: it is not an alternative in this
	// situational context.
	tree := responseTree(t)
	ctx := NewContext(mustHand(t, "AKQ2.T98.765.432"), oneNTAuction(t))

	siblings, err := FindSiblings(tree, "invite-2nt", ctx)
	require.NoError(t, err)

	for _, s := range siblings {
		assert.NotEqual(t, "out-of-context", s.OutcomeName)
	}
	assert.Len(t, siblings, 2)
}

func TestFindSiblings_Reachability(t *testing.T) {
	// Flipping the context to satisfy exactly the failed conditions makes
	// the alternative the matched outcome.
	tree := responseTree(t)

	weak := NewContext(mustHand(t, "AKQ2.T98.765.432"), oneNTAuction(t))   // 9 HCP
	strong := NewContext(mustHand(t, "AKQJ.T98.A65.432"), oneNTAuction(t)) // 14 HCP

	siblings, err := FindSiblings(tree, "invite-2nt", weak)
	require.NoError(t, err)
	names := make([]string, len(siblings))
	for i, s := range siblings {
		names[i] = s.OutcomeName
	}
	assert.Contains(t, names, "raise-3nt")

	trail := Evaluate(tree, strong)
	require.NotNil(t, trail.Matched)
	assert.Equal(t, "raise-3nt", trail.Matched.Name)

	// From the strong context, raise-3nt is the match and the weak
	// context's match appears as a blocked sibling with it.
	flipped, err := FindSiblings(tree, "raise-3nt", strong)
	require.NoError(t, err)
	for _, s := range flipped {
		if s.OutcomeName == "invite-2nt" {
			require.Len(t, s.Failed, 1)
			assert.Equal(t, "hcp_range(8-9)", s.Failed[0].Name)
		}
	}
}

func TestFindSiblings_CategoryOrderViolation(t *testing.T) {
	// An auction-category decision strictly below a hand-category one is
	// an authoring error the sibling engine must surface, not mask.
	x := passOutcome(t, "X")
	inner := MustDecision("inner-auction", NoPriorBids(), x, NewDeadEnd(""))
	root := MustDecision("outer-hand", BalancedHand(), inner, NewDeadEnd(""))

	ctx := testContext(t)
	siblings, err := FindSiblings(root, "X", ctx)

	require.Error(t, err)
	assert.True(t, IsCategoryOrderError(err))
	assert.Nil(t, siblings, "must not return a partial result")
}

func TestFindSiblings_PerCandidateIsolation(t *testing.T) {
	// One alternative's produce fails; the others must still be returned.
	broken, err := NewOutcome("broken", "", func(*Context) (auction.Call, error) {
		return auction.Call{}, errors.New("produce exploded")
	})
	require.NoError(t, err)

	good := passOutcome(t, "good")
	matched := passOutcome(t, "matched")

	inner := MustDecision("B", fixedCond("b", CategoryHand, false), broken, good)
	root := MustDecision("A", fixedCond("a", CategoryHand, true), matched, inner)

	siblings, err := FindSiblings(root, "matched", testContext(t))
	require.NoError(t, err)

	require.Len(t, siblings, 1)
	assert.Equal(t, "good", siblings[0].OutcomeName)
}

func TestFindSiblings_ExcludesDeadEnds(t *testing.T) {
	matched := passOutcome(t, "matched")
	root := MustDecision("A", fixedCond("a", CategoryHand, true), matched, NewDeadEnd("nothing"))

	siblings, err := FindSiblings(root, "matched", testContext(t))
	require.NoError(t, err)
	assert.Empty(t, siblings)
}

func TestFindSiblings_BareOutcomeRoot(t *testing.T) {
	siblings, err := FindSiblings(passOutcome(t, "only"), "only", testContext(t))
	require.NoError(t, err)
	assert.Empty(t, siblings)
}

func TestFindSiblings_OutcomeNotFound(t *testing.T) {
	root := MustDecision("A", fixedCond("a", CategoryHand, true), passOutcome(t, "X"), NewDeadEnd(""))

	_, err := FindSiblings(root, "nonexistent", testContext(t))
	require.Error(t, err)

	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeOutcomeNotFound, se.Code)
}

func TestFindSiblings_NoAuctionPrefixExploresWholeTree(t *testing.T) {
	// A pure hand-category tree has an empty fixed prefix; every other
	// outcome in the tree is an alternative.
	left := passOutcome(t, "left")
	right := passOutcome(t, "right")
	deep := MustDecision("B", fixedCond("b", CategoryHand, true), left, right)
	root := MustDecision("A", fixedCond("a", CategoryHand, false), passOutcome(t, "top"), deep)

	siblings, err := FindSiblings(root, "left", testContext(t))
	require.NoError(t, err)

	names := make([]string, len(siblings))
	for i, s := range siblings {
		names[i] = s.OutcomeName
	}
	assert.ElementsMatch(t, []string{"top", "right"}, names)
}
