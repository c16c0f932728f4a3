package card

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a complete hand.
const HandSize = 13

// Hand is one player's 13 cards. Hands are constructed once and treated as
// immutable by everything downstream.
type Hand struct {
	Cards []Card
}

// NewHand validates the card count and returns a Hand.
// Duplicate cards are rejected.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("hand must have %d cards, got %d", HandSize, len(cards))
	}
	seen := make(map[Card]bool, HandSize)
	for _, c := range cards {
		if seen[c] {
			return Hand{}, fmt.Errorf("duplicate card %s in hand", c)
		}
		seen[c] = true
	}
	return Hand{Cards: cards}, nil
}

// ParseHand parses dotted suit-holding notation in shape-vector order
// (spades.hearts.diamonds.clubs), e.g. "AKQ2.T98.765.432".
// A void suit is an empty segment: "AKQJT98765432..." has all spades.
func ParseHand(s string) (Hand, error) {
	segments := strings.Split(s, ".")
	if len(segments) != 4 {
		return Hand{}, fmt.Errorf("hand %q must have 4 dot-separated suit holdings", s)
	}
	cards := make([]Card, 0, HandSize)
	for i, segment := range segments {
		suit := SuitOrder[i]
		for _, code := range strings.Split(segment, "") {
			rank, err := ParseRank(code)
			if err != nil {
				return Hand{}, fmt.Errorf("hand %q: %w", s, err)
			}
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return NewHand(cards)
}

// String renders the hand in dotted notation, suits in shape-vector order,
// ranks descending within each suit.
func (h Hand) String() string {
	var segments [4]strings.Builder
	for i := len(Ranks) - 1; i >= 0; i-- {
		rank := Ranks[i]
		for _, c := range h.Cards {
			if c.Rank == rank {
				segments[c.Suit.ShapeIndex()].WriteString(rank.String())
			}
		}
	}
	parts := make([]string, 4)
	for i := range segments {
		parts[i] = segments[i].String()
	}
	return strings.Join(parts, ".")
}

// SuitCards returns the cards of one suit, in hand order.
func (h Hand) SuitCards(suit Suit) []Card {
	var cards []Card
	for _, c := range h.Cards {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}

// Shape returns suit lengths as [Spades, Hearts, Diamonds, Clubs].
func (h Hand) Shape() [4]int {
	var shape [4]int
	for _, c := range h.Cards {
		shape[c.Suit.ShapeIndex()]++
	}
	return shape
}
