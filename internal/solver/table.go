// Package solver builds the full bid probability table for a position and
// selects the statistically optimal next action under each legality policy.
package solver

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/maxkht/liarsdice/internal/dice"
)

// Table holds the exact probability of every biddable (face, count) pair for a
// fixed hand and configuration, plus the probability that challenging the
// previous bid wins. Rows are indexed by count-1, columns by face-2.
type Table struct {
	Config          dice.GameConfig
	Hand            dice.Hand
	PrevBid         dice.Bid
	Cells           [][]float64
	CallProbability float64
}

// BuildTable populates a fresh table for the given position. The previous bid
// is evaluated first so CallProbability is its exact complement; the grid cells
// are then computed row-by-row across a worker group, which is safe because
// each cell depends only on the immutable (config, hand, bid) inputs.
func BuildTable(cfg dice.GameConfig, hand dice.Hand, prevBid dice.Bid) (*Table, error) {
	prevP, err := dice.Probability(cfg, hand, prevBid)
	if err != nil {
		return nil, fmt.Errorf("previous bid: %w", err)
	}

	t := &Table{
		Config:          cfg,
		Hand:            hand,
		PrevBid:         prevBid,
		Cells:           make([][]float64, cfg.TotalDice),
		CallProbability: 1 - prevP,
	}

	var g errgroup.Group
	for count := 1; count <= cfg.TotalDice; count++ {
		row := make([]float64, cfg.FaceCount-1)
		t.Cells[count-1] = row
		g.Go(func() error {
			for face := 2; face <= cfg.FaceCount; face++ {
				p, err := dice.Probability(cfg, hand, dice.Bid{Face: face, Count: count})
				if err != nil {
					return err
				}
				row[face-2] = p
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// At returns the probability that bid(face, count) is true.
func (t *Table) At(face, count int) float64 {
	return t.Cells[count-1][face-2]
}

// Rows returns the number of count rows in the table.
func (t *Table) Rows() int { return len(t.Cells) }

// Columns returns the number of biddable faces in the table.
func (t *Table) Columns() int { return t.Config.FaceCount - 1 }
