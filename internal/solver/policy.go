package solver

import (
	"fmt"

	"github.com/maxkht/liarsdice/internal/dice"
)

// Policy selects which raises are legal relative to the previous bid.
type Policy int

const (
	// PolicyStandard is the standard Liar's Dice raise rule: any count
	// increase, or a higher face at the same count.
	PolicyStandard Policy = iota

	// PolicyFaceFirst privileges face increases, allowing a count increase
	// only when the face is unchanged. Not the standard rule; kept as a
	// deliberate variant.
	PolicyFaceFirst

	// PolicySingleAxis permits only minimal raises that increase exactly one
	// of face or count, never both.
	PolicySingleAxis
)

// Policies lists all selection policies in display order.
var Policies = []Policy{PolicyStandard, PolicyFaceFirst, PolicySingleAxis}

// String returns the conventional roman-numeral mode name.
func (p Policy) String() string {
	switch p {
	case PolicyStandard:
		return "Mode I"
	case PolicyFaceFirst:
		return "Mode II"
	case PolicySingleAxis:
		return "Mode III"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Allows reports whether candidate is a legal raise over prev under the policy.
func (p Policy) Allows(prev, candidate dice.Bid) bool {
	x, y := candidate.Face, candidate.Count
	px, py := prev.Face, prev.Count
	switch p {
	case PolicyStandard:
		return y > py || (x > px && y == py)
	case PolicyFaceFirst:
		return x > px || (y > py && x == px)
	case PolicySingleAxis:
		return (x > px && y == py) || (y > py && x == px)
	default:
		return false
	}
}

// Decision is the recommended action under one policy: either challenge the
// previous bid or raise with a specific bid, with its success probability.
type Decision struct {
	Policy      Policy
	Challenge   bool
	Bid         dice.Bid
	Probability float64
}

// String describes the recommended action.
func (d Decision) String() string {
	if d.Challenge {
		return "call previous player"
	}
	return d.Bid.String()
}

// SelectBest scans the table under one policy and returns the action with the
// highest probability of success. The baseline is challenging the previous
// bid; a cell replaces the current best only on a strictly greater
// probability, so ties resolve to the first maximal cell in scan order
// (counts ascending, then faces ascending).
func (t *Table) SelectBest(policy Policy) Decision {
	best := Decision{
		Policy:      policy,
		Challenge:   true,
		Probability: t.CallProbability,
	}
	for count := 1; count <= t.Rows(); count++ {
		for face := 2; face <= t.Config.FaceCount; face++ {
			p := t.At(face, count)
			candidate := dice.Bid{Face: face, Count: count}
			if p > best.Probability && policy.Allows(t.PrevBid, candidate) {
				best = Decision{
					Policy:      policy,
					Bid:         candidate,
					Probability: p,
				}
			}
		}
	}
	return best
}

// Decisions returns the optimal action under every policy. The results are
// independent; each is computed from the same table.
func (t *Table) Decisions() []Decision {
	decisions := make([]Decision, 0, len(Policies))
	for _, policy := range Policies {
		decisions = append(decisions, t.SelectBest(policy))
	}
	return decisions
}
