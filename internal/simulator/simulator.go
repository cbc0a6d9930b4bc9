// Package simulator estimates bid probabilities empirically by rolling the
// unseen dice. It exists to cross-check the exact calculator, not to serve
// decisions in normal operation.
package simulator

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/maxkht/liarsdice/internal/dice"
	"github.com/maxkht/liarsdice/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Iterations int
	Seed       int64
	Logger     *log.Logger
}

// Simulator runs repeated random trials over the unseen dice
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(nil, log.Options{Level: log.WarnLevel})
	}
	return &Simulator{config: config}
}

// Estimate returns the empirical probability that the bid is true, rolling the
// external dice Iterations times. The hand's friendly dice are counted once up
// front; each trial only rolls the unseen dice.
func (s *Simulator) Estimate(cfg dice.GameConfig, hand dice.Hand, bid dice.Bid) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if err := bid.Validate(cfg); err != nil {
		return 0, err
	}
	if err := hand.Validate(cfg); err != nil {
		return 0, err
	}

	external := cfg.TotalDice - len(hand)
	needed := bid.Count - hand.Friendly(cfg, bid.Face)
	if needed <= 0 {
		return 1, nil
	}

	rng := randutil.New(s.config.Seed)
	successes := 0
	for i := 0; i < s.config.Iterations; i++ {
		matches := 0
		for die := 0; die < external; die++ {
			face := randutil.Roll(rng, cfg.FaceCount)
			if face == bid.Face || face == cfg.WildcardFace {
				matches++
			}
		}
		if matches >= needed {
			successes++
		}
	}
	return float64(successes) / float64(s.config.Iterations), nil
}

// Comparison pairs the exact and simulated probability for one scenario.
type Comparison struct {
	Bid        dice.Bid
	Hand       dice.Hand
	Predicted  float64
	Simulated  float64
	Difference float64
}

// Compare evaluates the same bid both ways and returns the absolute
// difference, which should stay within statistical tolerance for any
// reasonable iteration count.
func (s *Simulator) Compare(cfg dice.GameConfig, hand dice.Hand, bid dice.Bid) (Comparison, error) {
	predicted, err := dice.Probability(cfg, hand, bid)
	if err != nil {
		return Comparison{}, fmt.Errorf("exact probability: %w", err)
	}
	simulated, err := s.Estimate(cfg, hand, bid)
	if err != nil {
		return Comparison{}, fmt.Errorf("simulated probability: %w", err)
	}

	c := Comparison{
		Bid:        bid,
		Hand:       hand,
		Predicted:  predicted,
		Simulated:  simulated,
		Difference: math.Abs(predicted - simulated),
	}
	s.config.Logger.Debug("compared probabilities",
		"bid", bid, "predicted", predicted, "simulated", simulated, "difference", c.Difference)
	return c, nil
}

// StressResult summarises a batch of random comparisons.
type StressResult struct {
	Comparisons   []Comparison
	MaxDifference float64
}

// Stress generates random (bid, hand) scenarios under cfg and compares the
// calculator against simulation for each, reporting the worst disagreement.
// Each round draws a fresh seed from the master RNG so rounds are independent
// but the whole run is reproducible from Config.Seed.
func (s *Simulator) Stress(cfg dice.GameConfig, handSize, rounds int) (StressResult, error) {
	master := randutil.New(s.config.Seed)

	var result StressResult
	for round := 0; round < rounds; round++ {
		bid := dice.Bid{
			Face:  2 + master.IntN(cfg.FaceCount-1),
			Count: 1 + master.IntN(cfg.TotalDice),
		}
		hand := randutil.RollHand(master, cfg, handSize)

		trial := New(Config{
			Iterations: s.config.Iterations,
			Seed:       int64(master.Uint64()),
			Logger:     s.config.Logger,
		})
		comparison, err := trial.Compare(cfg, hand, bid)
		if err != nil {
			return StressResult{}, fmt.Errorf("round %d: %w", round+1, err)
		}
		result.Comparisons = append(result.Comparisons, comparison)
		if comparison.Difference > result.MaxDifference {
			result.MaxDifference = comparison.Difference
		}
	}
	return result, nil
}
