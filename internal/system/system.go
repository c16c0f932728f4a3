// Package system holds the authored rule sets shipped with the engine.
// Trees here are built statically from the bidding condition library; a
// structural defect in an authored tree is a programming bug and panics at
// construction.
package system

import (
	"bidkit/internal/auction"
	"bidkit/internal/bidding"
	"bidkit/internal/card"
)

// Rule set identifiers.
const (
	OpeningsID         = "openings"
	NoTrumpResponsesID = "1nt-responses"
)

// RegisterAll installs every built-in rule set into the registry.
func RegisterAll(r *bidding.Registry) error {
	if err := r.Register(OpeningsID, Openings(), bidding.Metadata{
		Description: "Opening bids: strong notrump, five-card majors, weak twos",
		Source:      "builtin",
	}); err != nil {
		return err
	}
	return r.Register(NoTrumpResponsesID, NoTrumpResponses(), bidding.Metadata{
		Description: "Responses to partner's 1NT opening: Stayman, transfers, raises",
		Source:      "builtin",
	})
}

// Openings is the opening-bid tree. The auction-category root confines it
// to the opening seat; everything below inspects the hand only.
func Openings() bidding.Node {
	open1NT := bidding.MustOutcome("open-1nt", "Open 1NT",
		bidding.FixedCall(auction.Bid(1, auction.StrainNoTrump)))
	open1S := bidding.MustOutcome("open-1s", "Open one spade",
		bidding.FixedCall(auction.Bid(1, auction.StrainSpades)))
	open1H := bidding.MustOutcome("open-1h", "Open one heart",
		bidding.FixedCall(auction.Bid(1, auction.StrainHearts)))
	open1D := bidding.MustOutcome("open-1d", "Open one diamond",
		bidding.FixedCall(auction.Bid(1, auction.StrainDiamonds)))
	open1C := bidding.MustOutcome("open-1c", "Open one club",
		bidding.FixedCall(auction.Bid(1, auction.StrainClubs)))
	weak2S := bidding.MustOutcome("weak-2s", "Weak two spades",
		bidding.FixedCall(auction.Bid(2, auction.StrainSpades)))
	pass := bidding.MustOutcome("pass", "Pass",
		bidding.FixedCall(auction.Pass))

	minors := bidding.MustDecision("four-diamonds",
		bidding.SuitMinLength(card.Diamonds, 4), open1D, open1C)
	hearts := bidding.MustDecision("five-hearts",
		bidding.SuitMinLength(card.Hearts, 5), open1H, minors)
	spades := bidding.MustDecision("five-spades",
		bidding.SuitMinLength(card.Spades, 5), open1S, hearts)

	weakTwo := bidding.MustDecision("weak-two-spades",
		bidding.And(
			bidding.HCPRange(6, 10),
			bidding.SuitMinLength(card.Spades, 6),
		), weak2S, pass)

	strength := bidding.MustDecision("opening-strength",
		bidding.MinHCP(12), spades, weakTwo)

	strongNT := bidding.MustDecision("strong-balanced",
		bidding.And(
			bidding.HCPRange(15, 17),
			bidding.BalancedHand(),
		), open1NT, strength)

	return bidding.MustDecision("opening-seat",
		bidding.NoPriorBids(), strongNT,
		bidding.NewDeadEnd("auction already opened"))
}

// NoTrumpResponses is the tree for responder after partner opens 1NT.
// The auction-category root is the fixed prefix; the hand-category tail
// selects Stayman, a transfer, or a notrump raise.
func NoTrumpResponses() bidding.Node {
	stayman := bidding.MustOutcome("stayman", "Stayman, asking for a four-card major",
		bidding.FixedCall(auction.Bid(2, auction.StrainClubs)))
	transferH := bidding.MustOutcome("transfer-hearts", "Jacoby transfer to hearts",
		bidding.FixedCall(auction.Bid(2, auction.StrainDiamonds)))
	transferS := bidding.MustOutcome("transfer-spades", "Jacoby transfer to spades",
		bidding.FixedCall(auction.Bid(2, auction.StrainHearts)))
	raise3NT := bidding.MustOutcome("raise-3nt", "Raise to game",
		bidding.FixedCall(auction.Bid(3, auction.StrainNoTrump)))
	invite2NT := bidding.MustOutcome("invite-2nt", "Invitational raise",
		bidding.FixedCall(auction.Bid(2, auction.StrainNoTrump)))
	pass := bidding.MustOutcome("pass", "Pass, no game interest",
		bidding.FixedCall(auction.Pass))

	invite := bidding.MustDecision("invitational-values",
		bidding.HCPRange(8, 9), invite2NT, pass)
	game := bidding.MustDecision("game-values",
		bidding.MinHCP(10), raise3NT, invite)

	staymanCheck := bidding.MustDecision("stayman-values",
		bidding.And(
			bidding.MinHCP(8),
			bidding.Or(
				bidding.SuitMinLength(card.Hearts, 4),
				bidding.SuitMinLength(card.Spades, 4),
			),
		), stayman, game)

	// Transfers outrank Stayman: a five-card major transfers at any strength.
	transferSpades := bidding.MustDecision("five-spades",
		bidding.SuitMinLength(card.Spades, 5), transferS, staymanCheck)
	transferHearts := bidding.MustDecision("five-hearts",
		bidding.SuitMinLength(card.Hearts, 5), transferH, transferSpades)

	return bidding.MustDecision("partner-opened-1nt",
		bidding.PartnerOpened("1NT"), transferHearts,
		bidding.NewDeadEnd("partner did not open 1NT"))
}
