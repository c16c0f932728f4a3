package auction

import "bidkit/internal/card"

// History-pattern helpers consumed by auction-category bidding conditions.
// They inspect only the call sequence, never private hand data.

// Matches reports whether the auction's calls exactly equal the given
// sequence in table notation (seats are not compared). An unparseable
// pattern element never matches.
func Matches(a *Auction, calls ...string) bool {
	if len(a.Entries) != len(calls) {
		return false
	}
	for i, s := range calls {
		want, err := ParseCall(s)
		if err != nil {
			return false
		}
		if a.Entries[i].Call != want {
			return false
		}
	}
	return true
}

// Opened reports whether the first non-pass call was made by the given seat.
func Opened(a *Auction, seat card.Seat) bool {
	for _, e := range a.Entries {
		if e.Call.Type != CallPass {
			return e.Seat == seat
		}
	}
	return false
}

// OpeningBid returns the first non-pass call, or nil if nobody has acted.
func OpeningBid(a *Auction) *Entry {
	for i := range a.Entries {
		if a.Entries[i].Call.Type != CallPass {
			return &a.Entries[i]
		}
	}
	return nil
}

// NoPriorBids reports whether no contract bid has been made yet.
// Passes, doubles and redoubles do not count.
func NoPriorBids(a *Auction) bool {
	return a.LastBid() == nil
}

// PartnerOpenedWith reports whether the acting seat's partner made the
// opening (first non-pass) call and it equals the given call.
func PartnerOpenedWith(a *Auction, seat card.Seat, s string) bool {
	opening := OpeningBid(a)
	if opening == nil || opening.Seat != card.PartnerSeat(seat) {
		return false
	}
	want, err := ParseCall(s)
	if err != nil {
		return false
	}
	return opening.Call == want
}
