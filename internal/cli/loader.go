package cli

import (
	"fmt"
	"strings"

	"bidkit/internal/auction"
	"bidkit/internal/bidding"
	"bidkit/internal/card"
	"bidkit/internal/compiler"
	"bidkit/internal/system"
)

// buildRegistry returns the built-in rule sets plus any compiled from the
// given CUE files. A file's rule set replaces a built-in with the same id.
func buildRegistry(ruleFiles []string) (*bidding.Registry, error) {
	reg := bidding.NewRegistry()
	if err := system.RegisterAll(reg); err != nil {
		return nil, fmt.Errorf("register built-in rule sets: %w", err)
	}

	for _, path := range ruleFiles {
		rs, err := compiler.LoadFile(path)
		if err != nil {
			return nil, err
		}
		meta := bidding.Metadata{Description: rs.Description, Source: path}
		if err := reg.Register(rs.ID, rs.Root, meta); err != nil {
			return nil, fmt.Errorf("register %s: %w", path, err)
		}
	}
	return reg, nil
}

// parseAuctionString replays a space-separated call sequence, e.g.
// "1NT Pass", starting from the dealer.
func parseAuctionString(calls string, dealer card.Seat) (*auction.Auction, error) {
	a := auction.New()
	if strings.TrimSpace(calls) == "" {
		return a, nil
	}

	seat := dealer
	for i, s := range strings.Fields(calls) {
		c, err := auction.ParseCall(s)
		if err != nil {
			return nil, fmt.Errorf("auction call %d: %w", i+1, err)
		}
		a, err = a.Add(seat, c)
		if err != nil {
			return nil, fmt.Errorf("auction call %d: %w", i+1, err)
		}
		seat = card.NextSeat(seat)
	}
	return a, nil
}

// evalInput holds the common flags for evaluate and explain.
type evalInput struct {
	RuleSet string
	Auction string
	Dealer  string
	Seat    string
	Rules   []string
}

// buildEvalContext parses the shared evaluation inputs into a context and
// the tree to walk.
func buildEvalContext(in evalInput, handStr string) (*bidding.Context, bidding.Node, error) {
	hand, err := card.ParseHand(handStr)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "invalid hand", err)
	}

	dealer := card.North
	if in.Dealer != "" {
		dealer, err = card.ParseSeat(in.Dealer)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "invalid dealer", err)
		}
	}

	history, err := parseAuctionString(in.Auction, dealer)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "invalid auction", err)
	}

	seat := bidding.DefaultSeat
	if in.Seat != "" {
		seat, err = card.ParseSeat(in.Seat)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "invalid seat", err)
		}
	}

	reg, err := buildRegistry(in.Rules)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load rule sets", err)
	}
	entry, ok := reg.Get(in.RuleSet)
	if !ok {
		return nil, nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown rule set %q", in.RuleSet))
	}

	ctx := bidding.NewContext(hand, history, bidding.WithSeat(seat))
	return ctx, entry.Root, nil
}
