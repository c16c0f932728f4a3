// Package auction models bridge calls and the accumulated call sequence.
// It supplies the legality/completion/contract mechanics plus the
// history-pattern helpers consumed by auction-category bidding conditions.
package auction

import (
	"fmt"
	"strconv"
	"strings"

	"bidkit/internal/card"
)

// Strain is a bid denomination: one of the four suits or notrump.
type Strain int

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	StrainNoTrump
)

// Strains lists strains in ascending bid rank.
var Strains = [5]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, StrainNoTrump}

// String returns the strain code ("C", "D", "H", "S", "NT").
func (s Strain) String() string {
	switch s {
	case StrainClubs:
		return "C"
	case StrainDiamonds:
		return "D"
	case StrainHearts:
		return "H"
	case StrainSpades:
		return "S"
	}
	return "NT"
}

// ParseStrain converts a strain code to a Strain.
func ParseStrain(code string) (Strain, error) {
	switch code {
	case "C":
		return StrainClubs, nil
	case "D":
		return StrainDiamonds, nil
	case "H":
		return StrainHearts, nil
	case "S":
		return StrainSpades, nil
	case "NT", "N":
		return StrainNoTrump, nil
	}
	return 0, fmt.Errorf("invalid strain %q", code)
}

// CallType distinguishes the four call variants.
type CallType int

const (
	CallPass CallType = iota
	CallBid
	CallDouble
	CallRedouble
)

// Call is one action in the auction. Level and Strain are meaningful only
// when Type is CallBid.
type Call struct {
	Type   CallType
	Level  int
	Strain Strain
}

// Pass, Double and Redouble are the three special calls.
var (
	Pass     = Call{Type: CallPass}
	Double   = Call{Type: CallDouble}
	Redouble = Call{Type: CallRedouble}
)

// Bid constructs a contract bid.
func Bid(level int, strain Strain) Call {
	return Call{Type: CallBid, Level: level, Strain: strain}
}

// String renders the call in table notation: "Pass", "X", "XX", "1NT", "4S".
func (c Call) String() string {
	switch c.Type {
	case CallPass:
		return "Pass"
	case CallDouble:
		return "X"
	case CallRedouble:
		return "XX"
	}
	return fmt.Sprintf("%d%s", c.Level, c.Strain)
}

// ParseCall parses table notation produced by Call.String.
// Strain codes are case-sensitive; "Pass"/"pass"/"P" are all accepted.
func ParseCall(s string) (Call, error) {
	switch strings.ToLower(s) {
	case "pass", "p":
		return Pass, nil
	case "x", "dbl", "double":
		return Double, nil
	case "xx", "rdbl", "redouble":
		return Redouble, nil
	}
	if len(s) < 2 {
		return Call{}, fmt.Errorf("invalid call %q", s)
	}
	level, err := strconv.Atoi(s[:1])
	if err != nil || level < 1 || level > 7 {
		return Call{}, fmt.Errorf("invalid call %q: level must be 1-7", s)
	}
	strain, err := ParseStrain(s[1:])
	if err != nil {
		return Call{}, fmt.Errorf("invalid call %q: %w", s, err)
	}
	return Bid(level, strain), nil
}

// CompareBids orders two contract bids: negative if a ranks below b,
// zero if equal, positive if above. Level dominates; strains break ties
// (clubs lowest, notrump highest).
func CompareBids(a, b Call) int {
	if a.Level != b.Level {
		return a.Level - b.Level
	}
	return int(a.Strain) - int(b.Strain)
}

// Contract is the final bid of a completed auction plus its disposition.
type Contract struct {
	Level     int
	Strain    Strain
	Doubled   bool
	Redoubled bool
	Declarer  card.Seat
}

// String renders e.g. "3NT by N" or "4SX by E".
func (c Contract) String() string {
	suffix := ""
	if c.Redoubled {
		suffix = "XX"
	} else if c.Doubled {
		suffix = "X"
	}
	return fmt.Sprintf("%d%s%s by %s", c.Level, c.Strain, suffix, c.Declarer)
}
