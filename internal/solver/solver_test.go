package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxkht/liarsdice/internal/dice"
)

func canonicalTable(t *testing.T) *Table {
	t.Helper()
	table, err := BuildTable(dice.DefaultConfig(), dice.Hand{3, 4, 5, 2, 1}, dice.Bid{Face: 4, Count: 7})
	require.NoError(t, err)
	return table
}

func TestBuildTableDimensions(t *testing.T) {
	table := canonicalTable(t)

	require.Equal(t, 15, table.Rows())
	require.Equal(t, 5, table.Columns())
	for _, row := range table.Cells {
		require.Len(t, row, 5)
	}
}

func TestBuildTableCellsMatchCalculator(t *testing.T) {
	cfg := dice.DefaultConfig()
	hand := dice.Hand{3, 4, 5, 2, 1}
	table := canonicalTable(t)

	for face := 2; face <= cfg.FaceCount; face++ {
		for count := 1; count <= cfg.TotalDice; count++ {
			want, err := dice.Probability(cfg, hand, dice.Bid{Face: face, Count: count})
			require.NoError(t, err)
			require.Equal(t, want, table.At(face, count), "cell (%d,%d)", face, count)
		}
	}

	// Every column must be fully populated: bid(2, 1) is certain for this
	// hand, so no cell can have been left at a zero default by accident in
	// row one, and row 15 legitimately holds near-zero values.
	require.Equal(t, 1.0, table.At(2, 1))
}

func TestBuildTableCallProbabilityComplement(t *testing.T) {
	cfg := dice.DefaultConfig()
	hand := dice.Hand{3, 4, 5, 2, 1}
	table := canonicalTable(t)

	p, err := dice.Probability(cfg, hand, dice.Bid{Face: 4, Count: 7})
	require.NoError(t, err)
	require.Equal(t, 1-p, table.CallProbability)
	require.InDelta(t, 0.7868719199309047, table.CallProbability, 1e-12)
}

func TestBuildTableInvalidInputs(t *testing.T) {
	cfg := dice.DefaultConfig()

	_, err := BuildTable(cfg, dice.Hand{3, 4}, dice.Bid{Face: 1, Count: 3})
	require.ErrorIs(t, err, dice.ErrInvalidBid)

	_, err = BuildTable(cfg, make(dice.Hand, 16), dice.Bid{Face: 4, Count: 3})
	require.ErrorIs(t, err, dice.ErrInvalidHand)
}

func TestSelectBestCanonicalScenario(t *testing.T) {
	table := canonicalTable(t)

	// Modes I and III cannot beat challenging: every legal raise is at most
	// as likely as the previous bid. Mode II may drop to count 1 with a
	// higher face, which the hand satisfies outright.
	best := table.SelectBest(PolicyStandard)
	require.True(t, best.Challenge)
	require.InDelta(t, 0.7868719199309047, best.Probability, 1e-12)

	best = table.SelectBest(PolicyFaceFirst)
	require.False(t, best.Challenge)
	require.Equal(t, dice.Bid{Face: 5, Count: 1}, best.Bid)
	require.Equal(t, 1.0, best.Probability)

	best = table.SelectBest(PolicySingleAxis)
	require.True(t, best.Challenge)
	require.InDelta(t, 0.7868719199309047, best.Probability, 1e-12)
}

func TestSelectBestGuaranteedHand(t *testing.T) {
	cfg := dice.DefaultConfig()
	hand := dice.Hand{1, 1, 2, 2, 6}
	table, err := BuildTable(cfg, hand, dice.Bid{Face: 2, Count: 3})
	require.NoError(t, err)

	// The hand alone satisfies the previous bid, so challenging never wins.
	require.Equal(t, 0.0, table.CallProbability)

	best := table.SelectBest(PolicyStandard)
	require.False(t, best.Challenge)
	require.Equal(t, dice.Bid{Face: 6, Count: 3}, best.Bid)
	require.Equal(t, 1.0, best.Probability)

	best = table.SelectBest(PolicyFaceFirst)
	require.False(t, best.Challenge)
	require.Equal(t, dice.Bid{Face: 3, Count: 1}, best.Bid)
	require.Equal(t, 1.0, best.Probability)

	best = table.SelectBest(PolicySingleAxis)
	require.False(t, best.Challenge)
	require.Equal(t, dice.Bid{Face: 6, Count: 3}, best.Bid)
	require.Equal(t, 1.0, best.Probability)
}

// Ties resolve to the first maximal cell in scan order: counts ascending,
// then faces ascending. An all-wildcard hand makes many cells exactly 1.
func TestSelectBestTieBreakScanOrder(t *testing.T) {
	cfg := dice.DefaultConfig()
	hand := dice.Hand{1, 1, 1, 1, 1}
	table, err := BuildTable(cfg, hand, dice.Bid{Face: 2, Count: 3})
	require.NoError(t, err)

	// Rows 1 and 2 are illegal under PolicyStandard; row 3 requires a face
	// above 2. bid(3, 3) is the first certain legal cell encountered.
	best := table.SelectBest(PolicyStandard)
	require.False(t, best.Challenge)
	require.Equal(t, dice.Bid{Face: 3, Count: 3}, best.Bid)
	require.Equal(t, 1.0, best.Probability)
}

func TestPolicyAllows(t *testing.T) {
	prev := dice.Bid{Face: 4, Count: 7}

	tests := []struct {
		name      string
		candidate dice.Bid
		standard  bool
		faceFirst bool
		single    bool
	}{
		{"higher count same face", dice.Bid{Face: 4, Count: 8}, true, true, true},
		{"higher face same count", dice.Bid{Face: 5, Count: 7}, true, true, true},
		{"higher both", dice.Bid{Face: 5, Count: 8}, true, true, false},
		{"higher count lower face", dice.Bid{Face: 2, Count: 8}, true, false, false},
		{"higher face lower count", dice.Bid{Face: 5, Count: 1}, false, true, false},
		{"same bid", dice.Bid{Face: 4, Count: 7}, false, false, false},
		{"lower both", dice.Bid{Face: 2, Count: 3}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.standard, PolicyStandard.Allows(prev, tt.candidate))
			require.Equal(t, tt.faceFirst, PolicyFaceFirst.Allows(prev, tt.candidate))
			require.Equal(t, tt.single, PolicySingleAxis.Allows(prev, tt.candidate))
		})
	}
}

// PolicySingleAxis must accept a strict subset of what either other policy
// accepts, for any previous bid away from the table edges.
func TestPolicyLegalityPartition(t *testing.T) {
	cfg := dice.DefaultConfig()
	prevBids := []dice.Bid{
		{Face: 4, Count: 7},
		{Face: 2, Count: 1},
		{Face: 3, Count: 10},
		{Face: 5, Count: 14},
	}

	for _, prev := range prevBids {
		singleCells, standardExtra, faceFirstExtra := 0, 0, 0
		for face := 2; face <= cfg.FaceCount; face++ {
			for count := 1; count <= cfg.TotalDice; count++ {
				candidate := dice.Bid{Face: face, Count: count}
				single := PolicySingleAxis.Allows(prev, candidate)
				standard := PolicyStandard.Allows(prev, candidate)
				faceFirst := PolicyFaceFirst.Allows(prev, candidate)

				if single {
					singleCells++
					require.True(t, standard, "prev %v candidate %v in III but not I", prev, candidate)
					require.True(t, faceFirst, "prev %v candidate %v in III but not II", prev, candidate)
				}
				if standard && !single {
					standardExtra++
				}
				if faceFirst && !single {
					faceFirstExtra++
				}
			}
		}
		require.Positive(t, singleCells, "prev %v", prev)
		require.Positive(t, standardExtra, "prev %v: subset not strict for Mode I", prev)
		require.Positive(t, faceFirstExtra, "prev %v: subset not strict for Mode II", prev)
	}
}

func TestDecisionsIndependent(t *testing.T) {
	table := canonicalTable(t)

	decisions := table.Decisions()
	require.Len(t, decisions, 3)
	require.Equal(t, PolicyStandard, decisions[0].Policy)
	require.Equal(t, PolicyFaceFirst, decisions[1].Policy)
	require.Equal(t, PolicySingleAxis, decisions[2].Policy)

	// Identical to selecting each policy in isolation.
	for _, d := range decisions {
		require.Equal(t, table.SelectBest(d.Policy), d)
	}
}

func TestDecisionString(t *testing.T) {
	challenge := Decision{Challenge: true, Probability: 0.7}
	require.Equal(t, "call previous player", challenge.String())

	raise := Decision{Bid: dice.Bid{Face: 5, Count: 8}, Probability: 0.4}
	require.Equal(t, "bid(5, 8)", raise.String())
}
