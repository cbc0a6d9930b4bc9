package main

import (
	"os"
	"time"

	"github.com/maxkht/liarsdice/cmd/liarsdice/shared"
	"github.com/maxkht/liarsdice/internal/dice"
	"github.com/maxkht/liarsdice/internal/display"
	"github.com/maxkht/liarsdice/internal/simulator"
)

// SimulateCmd compares the exact probability against a Monte Carlo estimate
// for a single bid.
type SimulateCmd struct {
	GameFlags
	Hand       string `kong:"short='H',required,help='Your hand, e.g. 3,4,5,2,1'"`
	Face       int    `kong:"short='f',required,help='Face value of the bid'"`
	Count      int    `kong:"short='c',required,help='Count of the bid'"`
	Iterations int    `kong:"short='i',default='100000',help='Number of Monte Carlo iterations'"`
	Seed       *int64 `kong:"help='Random seed for reproducible results'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (s *SimulateCmd) Run() error {
	logger := shared.SetupLogger(s.Debug)

	hand, err := parseHand(s.Hand)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if s.Seed != nil {
		seed = *s.Seed
	}

	sim := simulator.New(simulator.Config{
		Iterations: s.Iterations,
		Seed:       seed,
		Logger:     logger,
	})

	comparison, err := sim.Compare(s.Config(), hand, dice.Bid{Face: s.Face, Count: s.Count})
	if err != nil {
		return err
	}

	display.NewRenderer(os.Stdout).Comparison(comparison.Predicted, comparison.Simulated)
	return nil
}
