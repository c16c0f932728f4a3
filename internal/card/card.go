// Package card defines the deck primitives shared by the bidding engine:
// suits, ranks, seats, vulnerability, cards, hands, and deals. All values
// serialize to the single-character codes used by scenario files and the
// CLI ("S"/"H"/"D"/"C" for suits, "N"/"E"/"S"/"W" for seats, "A".."2" with
// "T" for ten as ranks).
package card

import "fmt"

// Suit identifies one of the four card suits.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists all suits in ascending rank order (clubs lowest).
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// SuitOrder lists suits in shape-vector order: [Spades, Hearts, Diamonds, Clubs].
// Shape vectors everywhere in this module follow this ordering.
var SuitOrder = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single-character suit code.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	return "?"
}

// ShapeIndex returns the suit's position in a shape vector
// ([Spades, Hearts, Diamonds, Clubs]).
func (s Suit) ShapeIndex() int {
	switch s {
	case Spades:
		return 0
	case Hearts:
		return 1
	case Diamonds:
		return 2
	default:
		return 3
	}
}

// ParseSuit converts a single-character code to a Suit.
func ParseSuit(code string) (Suit, error) {
	switch code {
	case "C":
		return Clubs, nil
	case "D":
		return Diamonds, nil
	case "H":
		return Hearts, nil
	case "S":
		return Spades, nil
	}
	return 0, fmt.Errorf("invalid suit code %q", code)
}

// Rank identifies a card rank, Two lowest through Ace highest.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists all ranks in ascending order.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankCodes = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

// String returns the single-character rank code ("T" for ten).
func (r Rank) String() string {
	if code, ok := rankCodes[r]; ok {
		return code
	}
	return "?"
}

// ParseRank converts a single-character code to a Rank.
func ParseRank(code string) (Rank, error) {
	for rank, c := range rankCodes {
		if c == code {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("invalid rank code %q", code)
}

// HCPValue returns the high-card point value of a rank:
// A=4, K=3, Q=2, J=1, everything else 0.
func HCPValue(r Rank) int {
	switch r {
	case Ace:
		return 4
	case King:
		return 3
	case Queen:
		return 2
	case Jack:
		return 1
	}
	return 0
}

// Seat identifies a position at the table.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// Seats lists seats in dealing/rotation order.
var Seats = [4]Seat{North, East, South, West}

// String returns the single-character seat code.
func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	}
	return "W"
}

// ParseSeat converts a single-character code to a Seat.
func ParseSeat(code string) (Seat, error) {
	switch code {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("invalid seat code %q", code)
}

// NextSeat returns the seat to the left (clockwise rotation).
func NextSeat(s Seat) Seat {
	return Seats[(int(s)+1)%4]
}

// PartnerSeat returns the seat across the table.
func PartnerSeat(s Seat) Seat {
	return Seats[(int(s)+2)%4]
}

// SameSide reports whether two seats belong to the same partnership.
func SameSide(a, b Seat) bool {
	return a == b || PartnerSeat(a) == b
}

// Vulnerability identifies which partnerships are vulnerable.
type Vulnerability int

const (
	VulnNone Vulnerability = iota
	VulnNS
	VulnEW
	VulnBoth
)

// String returns the vulnerability code used in scenario files.
func (v Vulnerability) String() string {
	switch v {
	case VulnNone:
		return "None"
	case VulnNS:
		return "NS"
	case VulnEW:
		return "EW"
	}
	return "Both"
}

// ParseVulnerability converts a code to a Vulnerability.
func ParseVulnerability(code string) (Vulnerability, error) {
	switch code {
	case "None", "":
		return VulnNone, nil
	case "NS":
		return VulnNS, nil
	case "EW":
		return VulnEW, nil
	case "Both":
		return VulnBoth, nil
	}
	return 0, fmt.Errorf("invalid vulnerability %q", code)
}

// Card is one playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the two-character card code, e.g. "SA" for the spade ace.
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// NewDeck returns all 52 cards in a deterministic order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Deal holds the four hands plus the table state fixed before the auction.
type Deal struct {
	Hands         map[Seat]Hand
	Dealer        Seat
	Vulnerability Vulnerability
}
