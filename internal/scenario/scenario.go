// Package scenario loads solver scenarios from HCL files so positions can be
// saved and replayed without retyping flags.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/maxkht/liarsdice/internal/dice"
)

// Scenario is one saved position: the game parameters, the caller's hand, and
// the previous player's bid, with optional simulation settings.
type Scenario struct {
	Game       *GameSettings       `hcl:"game,block"`
	Hand       []int               `hcl:"hand,optional"`
	Bid        *BidSettings        `hcl:"bid,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings configures the die and count parameters.
type GameSettings struct {
	TotalDice int `hcl:"total_dice,optional"`
	FaceCount int `hcl:"face_count,optional"`
}

// BidSettings is the previous player's bid.
type BidSettings struct {
	Face  int `hcl:"face"`
	Count int `hcl:"count"`
}

// SimulationSettings configures Monte Carlo cross-checking.
type SimulationSettings struct {
	Iterations int   `hcl:"iterations,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

// Default returns the canonical demo scenario from the original solver.
func Default() *Scenario {
	return &Scenario{
		Game:       &GameSettings{TotalDice: 15, FaceCount: 6},
		Hand:       []int{3, 4, 5, 2, 1},
		Bid:        &BidSettings{Face: 4, Count: 7},
		Simulation: &SimulationSettings{Iterations: 100000},
	}
}

// Load reads a scenario from an HCL file. A missing file yields the default
// scenario; missing blocks within a file fall back to defaults.
func Load(filename string) (*Scenario, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var s Scenario
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&s)
	return &s, nil
}

func applyDefaults(s *Scenario) {
	def := Default()
	if s.Game == nil {
		s.Game = def.Game
	}
	if s.Game.TotalDice == 0 {
		s.Game.TotalDice = def.Game.TotalDice
	}
	if s.Game.FaceCount == 0 {
		s.Game.FaceCount = def.Game.FaceCount
	}
	if len(s.Hand) == 0 {
		s.Hand = def.Hand
	}
	if s.Bid == nil {
		s.Bid = def.Bid
	}
	if s.Simulation == nil {
		s.Simulation = def.Simulation
	}
	if s.Simulation.Iterations == 0 {
		s.Simulation.Iterations = def.Simulation.Iterations
	}
}

// Config returns the scenario's game configuration with ones wild.
func (s *Scenario) Config() dice.GameConfig {
	return dice.GameConfig{
		TotalDice:    s.Game.TotalDice,
		FaceCount:    s.Game.FaceCount,
		WildcardFace: 1,
	}
}

// PrevBid returns the previous player's bid.
func (s *Scenario) PrevBid() dice.Bid {
	return dice.Bid{Face: s.Bid.Face, Count: s.Bid.Count}
}

// PlayerHand returns the caller's hand.
func (s *Scenario) PlayerHand() dice.Hand {
	return dice.Hand(s.Hand)
}
