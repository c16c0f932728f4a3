// Package harness runs drill scenarios: YAML files pairing deals with the
// outcome a rule set should reach for each. Scenarios back both the drill
// CLI command and golden-file regression tests.
package harness

import (
	"fmt"

	"bidkit/internal/auction"
	"bidkit/internal/bidding"
	"bidkit/internal/card"
)

// Result is the outcome of running one scenario.
type Result struct {
	Scenario string
	RuleSet  string
	Passed   bool
	Deals    []DealResult
}

// DealResult is the outcome of one deal within a scenario.
type DealResult struct {
	Hand    string
	Matched string
	Call    string
	Passed  bool

	// Failures lists expectation mismatches, empty when Passed.
	Failures []string
}

// Run evaluates every deal in the scenario against the registry and
// compares outcomes to expectations. A deal-level mismatch marks the deal
// and the scenario failed; it is not an error. Errors report defects in
// the scenario itself, e.g. an unknown rule set or an unparsable hand.
func Run(scenario *Scenario, reg *bidding.Registry) (*Result, error) {
	entry, ok := reg.Get(scenario.RuleSet)
	if !ok {
		return nil, fmt.Errorf("run scenario %s: unknown rule set %q", scenario.Name, scenario.RuleSet)
	}

	result := &Result{
		Scenario: scenario.Name,
		RuleSet:  scenario.RuleSet,
		Passed:   true,
	}

	for i, deal := range scenario.Deals {
		dr, err := runDeal(entry.Root, deal)
		if err != nil {
			return nil, fmt.Errorf("run scenario %s: deals[%d]: %w", scenario.Name, i, err)
		}
		if !dr.Passed {
			result.Passed = false
		}
		result.Deals = append(result.Deals, dr)
	}
	return result, nil
}

func runDeal(root bidding.Node, deal Deal) (DealResult, error) {
	hand, err := card.ParseHand(deal.Hand)
	if err != nil {
		return DealResult{}, err
	}

	history, err := buildAuction(deal)
	if err != nil {
		return DealResult{}, err
	}

	seat := bidding.DefaultSeat
	if deal.Seat != "" {
		seat, err = card.ParseSeat(deal.Seat)
		if err != nil {
			return DealResult{}, err
		}
	}

	ctx := bidding.NewContext(hand, history, bidding.WithSeat(seat))
	trail := bidding.Evaluate(root, ctx)

	dr := DealResult{Hand: deal.Hand, Passed: true}
	if trail.Matched != nil {
		dr.Matched = trail.Matched.Name
		dr.Call = trail.Matched.Call.String()
	}

	if deal.Expect.Outcome != dr.Matched {
		dr.Failures = append(dr.Failures,
			fmt.Sprintf("outcome: want %q, got %q", deal.Expect.Outcome, dr.Matched))
	}
	if deal.Expect.Call != "" && deal.Expect.Call != dr.Call {
		dr.Failures = append(dr.Failures,
			fmt.Sprintf("call: want %q, got %q", deal.Expect.Call, dr.Call))
	}
	dr.Passed = len(dr.Failures) == 0
	return dr, nil
}

// buildAuction replays the deal's prior calls starting from the dealer.
func buildAuction(deal Deal) (*auction.Auction, error) {
	dealer := card.North
	if deal.Dealer != "" {
		var err error
		dealer, err = card.ParseSeat(deal.Dealer)
		if err != nil {
			return nil, err
		}
	}

	a := auction.New()
	seat := dealer
	for i, s := range deal.Auction {
		c, err := auction.ParseCall(s)
		if err != nil {
			return nil, fmt.Errorf("auction[%d]: %w", i, err)
		}
		a, err = a.Add(seat, c)
		if err != nil {
			return nil, fmt.Errorf("auction[%d]: %w", i, err)
		}
		seat = card.NextSeat(seat)
	}
	return a, nil
}
