// Package eval is the hand-evaluation collaborator: it derives the numeric
// and shape summary that hand-category bidding conditions inspect. The
// engine consumes only the Summary shape, never this package's internals.
package eval

import "bidkit/internal/card"

// MethodHCP is the default evaluation method name recorded on summaries.
const MethodHCP = "HCP"

// Distribution holds distributional point adjustments: shortness
// (void=3, singleton=2, doubleton=1) and length (one point per card
// beyond four in a suit).
type Distribution struct {
	Shortness int
	Length    int
	Total     int
}

// Summary is the derived evaluation of one hand.
// Shape follows the [Spades, Hearts, Diamonds, Clubs] ordering.
type Summary struct {
	HCP          int
	Shape        [4]int
	Distribution Distribution
	TotalPoints  int
	Method       string
}

// HCP sums high-card points (A=4, K=3, Q=2, J=1) across the hand.
func HCP(hand card.Hand) int {
	total := 0
	for _, c := range hand.Cards {
		total += card.HCPValue(c.Rank)
	}
	return total
}

// Balanced reports whether the shape is 4333, 4432 or 5332 in any suit order.
func Balanced(shape [4]int) bool {
	sorted := shape
	// 4-element sorting network, descending
	if sorted[0] < sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	if sorted[2] < sorted[3] {
		sorted[2], sorted[3] = sorted[3], sorted[2]
	}
	if sorted[0] < sorted[2] {
		sorted[0], sorted[2] = sorted[2], sorted[0]
	}
	if sorted[1] < sorted[3] {
		sorted[1], sorted[3] = sorted[3], sorted[1]
	}
	if sorted[1] < sorted[2] {
		sorted[1], sorted[2] = sorted[2], sorted[1]
	}

	switch sorted {
	case [4]int{4, 3, 3, 3}, [4]int{4, 4, 3, 2}, [4]int{5, 3, 3, 2}:
		return true
	}
	return false
}

// DistributionPoints computes shortness and length points for a shape.
func DistributionPoints(shape [4]int) Distribution {
	var d Distribution
	for _, count := range shape {
		switch count {
		case 0:
			d.Shortness += 3
		case 1:
			d.Shortness += 2
		case 2:
			d.Shortness += 1
		}
		if count > 4 {
			d.Length += count - 4
		}
	}
	d.Total = d.Shortness + d.Length
	return d
}

// Evaluate produces the full summary for a hand using the HCP method.
func Evaluate(hand card.Hand) Summary {
	hcp := HCP(hand)
	shape := hand.Shape()
	dist := DistributionPoints(shape)
	return Summary{
		HCP:          hcp,
		Shape:        shape,
		Distribution: dist,
		TotalPoints:  hcp + dist.Total,
		Method:       MethodHCP,
	}
}

// LongestSuit returns the suit with the most cards; on ties the
// higher-ranking suit wins (spades highest).
func LongestSuit(shape [4]int) card.Suit {
	best := 0
	for i := 1; i < 4; i++ {
		if shape[i] > shape[best] {
			best = i
		}
	}
	return card.SuitOrder[best]
}
