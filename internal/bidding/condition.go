package bidding

import (
	"fmt"
	"strings"

	"bidkit/internal/auction"
	"bidkit/internal/card"
	"bidkit/internal/eval"
)

// Category classifies what a condition inspects: the accumulated call
// sequence (auction) or the acting player's private data (hand).
//
// INVARIANT: on any path from the tree root to a matched outcome, once a
// hand-category condition appears, no deeper condition on that path may be
// auction-category. The history is fixed before private data is consulted.
// Only the sibling engine enforces this, because only explanation needs to
// walk paths structurally.
type Category string

const (
	// CategoryAuction marks conditions over the call history.
	CategoryAuction Category = "auction"

	// CategoryHand marks conditions over the acting player's private data.
	CategoryHand Category = "hand"
)

// Condition is a named, pure predicate over a Context.
//
// Test must be deterministic and side-effect-free: identical contexts must
// always produce identical trails. Describe supplies the human-readable
// justification and is evaluated lazily - the fast evaluator never calls it.
type Condition struct {
	Name     string
	Category Category
	Test     func(*Context) bool
	Describe func(*Context) string
}

// And combines conditions: all must pass. The combined category is hand
// unless every child is auction-category. Descriptions of all children are
// joined lazily.
func And(conds ...Condition) Condition {
	return combine("all", conds, func(ctx *Context) bool {
		for _, c := range conds {
			if !c.Test(ctx) {
				return false
			}
		}
		return true
	})
}

// Or combines conditions: at least one must pass. Category semantics match And.
func Or(conds ...Condition) Condition {
	return combine("any", conds, func(ctx *Context) bool {
		for _, c := range conds {
			if c.Test(ctx) {
				return true
			}
		}
		return false
	})
}

func combine(kind string, conds []Condition, test func(*Context) bool) Condition {
	category := CategoryAuction
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = c.Name
		if c.Category != CategoryAuction {
			category = CategoryHand
		}
	}

	return Condition{
		Name:     fmt.Sprintf("%s(%s)", kind, strings.Join(names, ", ")),
		Category: category,
		Test:     test,
		Describe: func(ctx *Context) string {
			parts := make([]string, len(conds))
			for i, c := range conds {
				parts[i] = c.Describe(ctx)
			}
			return strings.Join(parts, "; ")
		},
	}
}

// --- Hand-category primitives ---

// MinHCP passes when the hand holds at least n high-card points.
func MinHCP(n int) Condition {
	return Condition{
		Name:     fmt.Sprintf("min_hcp(%d)", n),
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return ctx.Eval.HCP >= n
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("%d HCP, need %d or more", ctx.Eval.HCP, n)
		},
	}
}

// MaxHCP passes when the hand holds at most n high-card points.
func MaxHCP(n int) Condition {
	return Condition{
		Name:     fmt.Sprintf("max_hcp(%d)", n),
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return ctx.Eval.HCP <= n
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("%d HCP, need %d or fewer", ctx.Eval.HCP, n)
		},
	}
}

// HCPRange passes when the hand's HCP falls within [lo, hi].
func HCPRange(lo, hi int) Condition {
	return Condition{
		Name:     fmt.Sprintf("hcp_range(%d-%d)", lo, hi),
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return ctx.Eval.HCP >= lo && ctx.Eval.HCP <= hi
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("%d HCP, need %d-%d", ctx.Eval.HCP, lo, hi)
		},
	}
}

// BalancedHand passes when the hand shape is 4333, 4432 or 5332.
func BalancedHand() Condition {
	return Condition{
		Name:     "balanced",
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return eval.Balanced(ctx.Eval.Shape)
		},
		Describe: func(ctx *Context) string {
			if eval.Balanced(ctx.Eval.Shape) {
				return fmt.Sprintf("balanced shape %v", ctx.Eval.Shape)
			}
			return fmt.Sprintf("unbalanced shape %v", ctx.Eval.Shape)
		},
	}
}

// SuitMinLength passes when the hand holds at least n cards in the suit.
func SuitMinLength(suit card.Suit, n int) Condition {
	return Condition{
		Name:     fmt.Sprintf("suit_min_length(%s, %d)", suit, n),
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return ctx.Eval.Shape[suit.ShapeIndex()] >= n
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("%d cards in %s, need %d or more", ctx.Eval.Shape[suit.ShapeIndex()], suit, n)
		},
	}
}

// SuitMaxLength passes when the hand holds at most n cards in the suit.
func SuitMaxLength(suit card.Suit, n int) Condition {
	return Condition{
		Name:     fmt.Sprintf("suit_max_length(%s, %d)", suit, n),
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return ctx.Eval.Shape[suit.ShapeIndex()] <= n
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("%d cards in %s, need %d or fewer", ctx.Eval.Shape[suit.ShapeIndex()], suit, n)
		},
	}
}

// LongestSuitIs passes when the suit is the hand's longest
// (ties resolved toward the higher-ranking suit).
func LongestSuitIs(suit card.Suit) Condition {
	return Condition{
		Name:     fmt.Sprintf("longest_suit(%s)", suit),
		Category: CategoryHand,
		Test: func(ctx *Context) bool {
			return eval.LongestSuit(ctx.Eval.Shape) == suit
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("longest suit is %s, need %s", eval.LongestSuit(ctx.Eval.Shape), suit)
		},
	}
}

// --- Auction-category primitives ---

// NoPriorBids passes when no contract bid has been made yet.
// Passes, doubles and redoubles do not count.
func NoPriorBids() Condition {
	return Condition{
		Name:     "no_prior_bids",
		Category: CategoryAuction,
		Test: func(ctx *Context) bool {
			return auction.NoPriorBids(ctx.History)
		},
		Describe: func(ctx *Context) string {
			if auction.NoPriorBids(ctx.History) {
				return "no prior bids"
			}
			return fmt.Sprintf("prior bid %s exists", ctx.History.LastBid().Call)
		},
	}
}

// AuctionMatches passes when the call history exactly equals the given
// sequence in table notation.
func AuctionMatches(calls ...string) Condition {
	pattern := strings.Join(calls, " ")
	return Condition{
		Name:     fmt.Sprintf("auction_matches(%s)", pattern),
		Category: CategoryAuction,
		Test: func(ctx *Context) bool {
			return auction.Matches(ctx.History, calls...)
		},
		Describe: func(ctx *Context) string {
			return fmt.Sprintf("auction %s, need exactly %q", formatAuction(ctx.History), pattern)
		},
	}
}

// PartnerOpened passes when the acting seat's partner made the opening
// call and it equals the given call.
func PartnerOpened(call string) Condition {
	return Condition{
		Name:     fmt.Sprintf("partner_opened(%s)", call),
		Category: CategoryAuction,
		Test: func(ctx *Context) bool {
			return auction.PartnerOpenedWith(ctx.History, ctx.Seat, call)
		},
		Describe: func(ctx *Context) string {
			opening := auction.OpeningBid(ctx.History)
			if opening == nil {
				return fmt.Sprintf("nobody has opened, need partner's %s", call)
			}
			return fmt.Sprintf("%s opened %s, need partner's %s", opening.Seat, opening.Call, call)
		},
	}
}

func formatAuction(a *auction.Auction) string {
	if len(a.Entries) == 0 {
		return "(empty)"
	}
	return a.String()
}
