package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck_52UniqueCards(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := make(map[Card]bool, 52)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestSeatRotation(t *testing.T) {
	assert.Equal(t, East, NextSeat(North))
	assert.Equal(t, South, NextSeat(East))
	assert.Equal(t, West, NextSeat(South))
	assert.Equal(t, North, NextSeat(West))
}

func TestPartnerSeat(t *testing.T) {
	assert.Equal(t, South, PartnerSeat(North))
	assert.Equal(t, North, PartnerSeat(South))
	assert.Equal(t, West, PartnerSeat(East))
	assert.Equal(t, East, PartnerSeat(West))
}

func TestSameSide(t *testing.T) {
	assert.True(t, SameSide(North, South))
	assert.True(t, SameSide(North, North))
	assert.False(t, SameSide(North, East))
	assert.False(t, SameSide(South, West))
}

func TestHCPValue(t *testing.T) {
	testCases := []struct {
		rank Rank
		want int
	}{
		{Two, 0},
		{Nine, 0},
		{Ten, 0},
		{Jack, 1},
		{Queen, 2},
		{King, 3},
		{Ace, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.rank.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, HCPValue(tc.rank))
		})
	}
}

func TestParseSuitRoundtrip(t *testing.T) {
	for _, suit := range Suits {
		parsed, err := ParseSuit(suit.String())
		require.NoError(t, err)
		assert.Equal(t, suit, parsed)
	}

	_, err := ParseSuit("X")
	assert.Error(t, err)
}

func TestParseSeatRoundtrip(t *testing.T) {
	for _, seat := range Seats {
		parsed, err := ParseSeat(seat.String())
		require.NoError(t, err)
		assert.Equal(t, seat, parsed)
	}

	_, err := ParseSeat("Z")
	assert.Error(t, err)
}

func TestParseVulnerability(t *testing.T) {
	v, err := ParseVulnerability("NS")
	require.NoError(t, err)
	assert.Equal(t, VulnNS, v)

	// Empty defaults to None for optional scenario fields
	v, err = ParseVulnerability("")
	require.NoError(t, err)
	assert.Equal(t, VulnNone, v)

	_, err = ParseVulnerability("north")
	assert.Error(t, err)
}
