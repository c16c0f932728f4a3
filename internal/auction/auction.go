package auction

import (
	"fmt"
	"strings"

	"bidkit/internal/card"
)

// Entry is one call together with the seat that made it.
type Entry struct {
	Seat card.Seat
	Call Call
}

// Auction is the accumulated call sequence. The zero value is an open,
// empty auction. Add returns a new value; an Auction already handed to an
// evaluation is never mutated.
type Auction struct {
	Entries  []Entry
	Complete bool
}

// New returns an empty, open auction.
func New() *Auction {
	return &Auction{}
}

// String renders the call sequence space-separated, e.g. "1NT Pass 2C".
// An empty auction renders as the empty string.
func (a *Auction) String() string {
	if len(a.Entries) == 0 {
		return ""
	}
	parts := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		parts[i] = e.Call.String()
	}
	return strings.Join(parts, " ")
}

// lastNonPass returns the most recent entry that is not a pass, or nil.
func (a *Auction) lastNonPass() *Entry {
	for i := len(a.Entries) - 1; i >= 0; i-- {
		if a.Entries[i].Call.Type != CallPass {
			return &a.Entries[i]
		}
	}
	return nil
}

// LastBid returns the most recent contract bid entry, or nil if no bid
// has been made.
func (a *Auction) LastBid() *Entry {
	for i := len(a.Entries) - 1; i >= 0; i-- {
		if a.Entries[i].Call.Type == CallBid {
			return &a.Entries[i]
		}
	}
	return nil
}

// IsLegalCall reports whether seat may make the given call now.
func (a *Auction) IsLegalCall(c Call, seat card.Seat) bool {
	if a.Complete {
		return false
	}

	switch c.Type {
	case CallPass:
		return true

	case CallBid:
		last := a.LastBid()
		if last == nil {
			return true
		}
		return CompareBids(c, last.Call) > 0

	case CallDouble:
		last := a.lastNonPass()
		return last != nil && last.Call.Type == CallBid && !card.SameSide(last.Seat, seat)

	case CallRedouble:
		last := a.lastNonPass()
		return last != nil && last.Call.Type == CallDouble && !card.SameSide(last.Seat, seat)
	}
	return false
}

// isComplete reports whether the auction has ended: four opening passes,
// or three passes following at least one non-pass call.
func (a *Auction) isComplete() bool {
	n := len(a.Entries)
	if n < 4 {
		return false
	}
	for i := n - 3; i < n; i++ {
		if a.Entries[i].Call.Type != CallPass {
			return false
		}
	}
	if n == 4 && a.Entries[0].Call.Type == CallPass {
		return true
	}
	for _, e := range a.Entries[:n-3] {
		if e.Call.Type != CallPass {
			return true
		}
	}
	return false
}

// Add appends a call, returning a new Auction with completion recomputed.
// The receiver is not modified.
func (a *Auction) Add(seat card.Seat, c Call) (*Auction, error) {
	if a.Complete {
		return nil, fmt.Errorf("auction is complete")
	}
	if !a.IsLegalCall(c, seat) {
		return nil, fmt.Errorf("illegal call %s by %s", c, seat)
	}

	entries := make([]Entry, len(a.Entries)+1)
	copy(entries, a.Entries)
	entries[len(a.Entries)] = Entry{Seat: seat, Call: c}

	next := &Auction{Entries: entries}
	next.Complete = next.isComplete()
	return next, nil
}

// Declarer returns the first player on the winning side to bid the final
// strain. Errors if no bid has been made.
func (a *Auction) Declarer() (card.Seat, error) {
	last := a.LastBid()
	if last == nil {
		return 0, fmt.Errorf("no bids in auction")
	}
	for _, e := range a.Entries {
		if e.Call.Type == CallBid && e.Call.Strain == last.Call.Strain && card.SameSide(e.Seat, last.Seat) {
			return e.Seat, nil
		}
	}
	return last.Seat, nil
}

// Contract extracts the final contract from the auction, or nil for a
// passed-out auction.
func (a *Auction) Contract() (*Contract, error) {
	last := a.LastBid()
	if last == nil {
		return nil, nil
	}

	contract := &Contract{
		Level:  last.Call.Level,
		Strain: last.Call.Strain,
	}
	if np := a.lastNonPass(); np != nil {
		switch np.Call.Type {
		case CallDouble:
			contract.Doubled = true
		case CallRedouble:
			contract.Redoubled = true
		}
	}

	declarer, err := a.Declarer()
	if err != nil {
		return nil, err
	}
	contract.Declarer = declarer
	return contract, nil
}

// LegalCalls enumerates every call seat may make now: pass, each of the
// 35 contract bids still available, and double/redouble where applicable.
func (a *Auction) LegalCalls(seat card.Seat) []Call {
	if a.Complete {
		return nil
	}

	var legal []Call
	legal = append(legal, Pass)
	for level := 1; level <= 7; level++ {
		for _, strain := range Strains {
			bid := Bid(level, strain)
			if a.IsLegalCall(bid, seat) {
				legal = append(legal, bid)
			}
		}
	}
	if a.IsLegalCall(Double, seat) {
		legal = append(legal, Double)
	}
	if a.IsLegalCall(Redouble, seat) {
		legal = append(legal, Redouble)
	}
	return legal
}
