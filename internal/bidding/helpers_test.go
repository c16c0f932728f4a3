package bidding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bidkit/internal/auction"
	"bidkit/internal/card"
)

// fixedCond builds a condition with a constant result, for exercising tree
// traversal independently of real hand data.
func fixedCond(name string, cat Category, result bool) Condition {
	return Condition{
		Name:     name,
		Category: cat,
		Test:     func(*Context) bool { return result },
		Describe: func(*Context) string { return name },
	}
}

// countingCond wraps a fixed condition and counts Describe invocations.
func countingCond(name string, result bool, describes *int) Condition {
	return Condition{
		Name:     name,
		Category: CategoryHand,
		Test:     func(*Context) bool { return result },
		Describe: func(*Context) string {
			*describes++
			return name
		},
	}
}

func mustHand(t *testing.T, s string) card.Hand {
	t.Helper()
	hand, err := card.ParseHand(s)
	require.NoError(t, err)
	return hand
}

// testContext builds a context over an arbitrary flat hand and empty auction.
func testContext(t *testing.T) *Context {
	t.Helper()
	return NewContext(mustHand(t, "AKQ2.T98.765.432"), nil)
}

// outcome builds an Outcome leaf producing a fixed pass, failing the test
// on structural error.
func passOutcome(t *testing.T, name string) *Outcome {
	t.Helper()
	o, err := NewOutcome(name, name, FixedCall(auction.Pass))
	require.NoError(t, err)
	return o
}
