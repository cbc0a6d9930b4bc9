package dice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// The canonical scenario: 15 dice, six faces, hand [3,4,5,2,1], bid(4, 7).
// Friendly dice are the 4 and the wildcard 1, so five of the ten unseen dice
// must help. The expected value is the closed-form sum computed by hand.
func TestProbabilityCanonicalScenario(t *testing.T) {
	cfg := DefaultConfig()
	hand := Hand{3, 4, 5, 2, 1}

	p, err := Probability(cfg, hand, Bid{Face: 4, Count: 7})
	require.NoError(t, err)
	require.InDelta(t, 0.21312808006909528, p, 1e-12)
}

func TestProbabilityKnownValues(t *testing.T) {
	cfg := DefaultConfig()
	hand := Hand{3, 4, 5, 2, 1}

	tests := []struct {
		bid  Bid
		want float64
	}{
		{Bid{Face: 2, Count: 1}, 1}, // hand satisfies bid alone
		{Bid{Face: 3, Count: 5}, 0.7008586089518878},
		{Bid{Face: 5, Count: 10}, 0.003403952649494489},
		{Bid{Face: 6, Count: 15}, 0}, // needs 14 of 10 unseen dice
	}

	for _, tt := range tests {
		p, err := Probability(cfg, hand, tt.bid)
		require.NoError(t, err, "bid %v", tt.bid)
		require.InDelta(t, tt.want, p, 1e-12, "bid %v", tt.bid)
	}
}

func TestProbabilityBounds(t *testing.T) {
	cfg := DefaultConfig()
	hands := []Hand{
		{},
		{3, 4, 5, 2, 1},
		{1, 1, 1, 1, 1},
		{6, 6, 6, 6, 6},
		{2, 2, 3, 3, 4, 4, 5},
	}

	for _, hand := range hands {
		for face := 2; face <= cfg.FaceCount; face++ {
			for count := 1; count <= cfg.TotalDice; count++ {
				p, err := Probability(cfg, hand, Bid{Face: face, Count: count})
				require.NoError(t, err)
				require.GreaterOrEqual(t, p, 0.0, "hand %v bid(%d,%d)", hand, face, count)
				require.LessOrEqual(t, p, 1.0, "hand %v bid(%d,%d)", hand, face, count)
			}
		}
	}
}

func TestProbabilityMonotonicInCount(t *testing.T) {
	cfg := DefaultConfig()
	hand := Hand{3, 4, 5, 2, 1}

	for face := 2; face <= cfg.FaceCount; face++ {
		prev := 1.0
		for count := 1; count <= cfg.TotalDice; count++ {
			p, err := Probability(cfg, hand, Bid{Face: face, Count: count})
			require.NoError(t, err)
			require.LessOrEqual(t, p, prev+1e-12,
				"P(face %d, count %d) increased over count %d", face, count, count-1)
			prev = p
		}
	}
}

func TestProbabilityMonotonicInFriendly(t *testing.T) {
	cfg := DefaultConfig()
	bid := Bid{Face: 4, Count: 7}

	// Same hand size, strictly more friendly dice each step.
	hands := []Hand{
		{2, 3, 5, 6, 6}, // friendly 0
		{4, 3, 5, 6, 6}, // friendly 1
		{4, 1, 5, 6, 6}, // friendly 2
		{4, 1, 4, 6, 6}, // friendly 3
		{4, 1, 4, 1, 6}, // friendly 4
		{4, 1, 4, 1, 4}, // friendly 5
	}

	prev := 0.0
	for i, hand := range hands {
		require.Equal(t, i, hand.Friendly(cfg, bid.Face))
		p, err := Probability(cfg, hand, bid)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, prev-1e-12, "friendly %d", i)
		prev = p
	}
}

func TestProbabilitySaturation(t *testing.T) {
	cfg := DefaultConfig()
	hand := Hand{4, 4, 1, 1, 2}

	// friendly = 4 for face 4; any count <= 4 is certain.
	for count := 1; count <= 4; count++ {
		p, err := Probability(cfg, hand, Bid{Face: 4, Count: count})
		require.NoError(t, err)
		require.Equal(t, 1.0, p, "count %d", count)
	}

	p, err := Probability(cfg, hand, Bid{Face: 4, Count: 5})
	require.NoError(t, err)
	require.Less(t, p, 1.0)
}

func TestProbabilityInvalidInputs(t *testing.T) {
	cfg := DefaultConfig()
	hand := Hand{3, 4, 5, 2, 1}

	_, err := Probability(cfg, hand, Bid{Face: 1, Count: 3})
	require.ErrorIs(t, err, ErrInvalidBid)

	_, err = Probability(cfg, hand, Bid{Face: 4, Count: 0})
	require.ErrorIs(t, err, ErrInvalidBid)

	_, err = Probability(cfg, make(Hand, 16), Bid{Face: 4, Count: 3})
	require.ErrorIs(t, err, ErrInvalidHand)

	_, err = Probability(GameConfig{TotalDice: 0, FaceCount: 6, WildcardFace: 1}, hand, Bid{Face: 4, Count: 3})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidBid))
}

func TestBinomialPMF(t *testing.T) {
	tests := []struct {
		n, k int
		p    float64
		want float64
	}{
		{0, 0, 0.5, 1},
		{1, 0, 0.25, 0.75},
		{1, 1, 0.25, 0.25},
		{4, 2, 0.5, 0.375},
		{10, 3, 1.0 / 6, 0.15504535957425192},
	}

	for _, tt := range tests {
		got := binomialPMF(tt.n, tt.k, tt.p)
		require.InDelta(t, tt.want, got, 1e-14, "binomialPMF(%d, %d, %v)", tt.n, tt.k, tt.p)
	}
}
