package main

import (
	"fmt"
	"time"

	"github.com/maxkht/liarsdice/cmd/liarsdice/shared"
	"github.com/maxkht/liarsdice/internal/simulator"
)

// StressCmd generates random scenarios and reports how far the Monte Carlo
// estimate strays from the exact calculator.
type StressCmd struct {
	GameFlags
	Rounds     int    `kong:"short='r',default='100',help='Number of random scenarios'"`
	Iterations int    `kong:"short='i',default='1000',help='Monte Carlo iterations per scenario'"`
	HandSize   int    `kong:"default='5',help='Dice in the random hand'"`
	Seed       *int64 `kong:"help='Random seed for reproducible results'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (s *StressCmd) Run() error {
	logger := shared.SetupLogger(s.Debug)

	seed := time.Now().UnixNano()
	if s.Seed != nil {
		seed = *s.Seed
	}

	sim := simulator.New(simulator.Config{
		Iterations: s.Iterations,
		Seed:       seed,
		Logger:     logger,
	})

	start := time.Now()
	result, err := sim.Stress(s.Config(), s.HandSize, s.Rounds)
	if err != nil {
		return err
	}

	for _, c := range result.Comparisons {
		logger.Debug("scenario",
			"bid", c.Bid, "hand", c.Hand,
			"predicted", c.Predicted, "simulated", c.Simulated)
	}

	fmt.Printf("%d rounds x %d iterations in %v\n", s.Rounds, s.Iterations, time.Since(start).Truncate(time.Millisecond))
	fmt.Printf("largest difference: %.2f%%\n", 100*result.MaxDifference)
	return nil
}
