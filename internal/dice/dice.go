// Package dice models the Liar's Dice domain: game configuration, hands,
// bids, and the exact probability that a bid holds over the unseen dice.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for malformed inputs.
var (
	ErrInvalidBid    = errors.New("invalid bid")
	ErrInvalidHand   = errors.New("invalid hand")
	ErrInvalidConfig = errors.New("invalid game config")
)

// GameConfig describes the die and count parameters for one game.
type GameConfig struct {
	TotalDice    int // dice in play across all players
	FaceCount    int // sides per die
	WildcardFace int // face that matches any bid
}

// DefaultConfig returns the canonical 15-dice, six-sided game with ones wild.
func DefaultConfig() GameConfig {
	return GameConfig{TotalDice: 15, FaceCount: 6, WildcardFace: 1}
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	if c.TotalDice <= 0 {
		return fmt.Errorf("%w: total dice must be positive, got %d", ErrInvalidConfig, c.TotalDice)
	}
	if c.FaceCount < 3 {
		return fmt.Errorf("%w: need at least 3 faces, got %d", ErrInvalidConfig, c.FaceCount)
	}
	if c.WildcardFace < 1 || c.WildcardFace > c.FaceCount {
		return fmt.Errorf("%w: wildcard face %d out of range [1,%d]", ErrInvalidConfig, c.WildcardFace, c.FaceCount)
	}
	return nil
}

// Bid is the claim "at least Count dice across all players show Face or the
// wildcard". The wildcard face itself cannot be bid on.
type Bid struct {
	Face  int `json:"face"`
	Count int `json:"count"`
}

// String returns the bid in the conventional bid(face, count) form.
func (b Bid) String() string {
	return fmt.Sprintf("bid(%d, %d)", b.Face, b.Count)
}

// Validate checks the bid against the game configuration.
func (b Bid) Validate(cfg GameConfig) error {
	if b.Face == cfg.WildcardFace {
		return fmt.Errorf("%w: face %d is the wildcard and cannot be bid on", ErrInvalidBid, b.Face)
	}
	if b.Face < 1 || b.Face > cfg.FaceCount {
		return fmt.Errorf("%w: face %d out of range [2,%d]", ErrInvalidBid, b.Face, cfg.FaceCount)
	}
	if b.Count < 1 || b.Count > cfg.TotalDice {
		return fmt.Errorf("%w: count %d out of range [1,%d]", ErrInvalidBid, b.Count, cfg.TotalDice)
	}
	return nil
}

// Hand is the multiset of faces the querying player holds. Order is irrelevant.
type Hand []int

// Validate checks that every die is a legal face and the hand fits the game.
func (h Hand) Validate(cfg GameConfig) error {
	if len(h) > cfg.TotalDice {
		return fmt.Errorf("%w: %d dice exceeds %d in play", ErrInvalidHand, len(h), cfg.TotalDice)
	}
	for _, die := range h {
		if die < 1 || die > cfg.FaceCount {
			return fmt.Errorf("%w: die %d out of range [1,%d]", ErrInvalidHand, die, cfg.FaceCount)
		}
	}
	return nil
}

// Friendly counts dice in the hand that already satisfy a bid on face:
// matches of the face itself plus wildcards.
func (h Hand) Friendly(cfg GameConfig, face int) int {
	n := 0
	for _, die := range h {
		if die == face || die == cfg.WildcardFace {
			n++
		}
	}
	return n
}

// String renders the hand as comma-separated faces.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, die := range h {
		parts[i] = strconv.Itoa(die)
	}
	return strings.Join(parts, ",")
}

// ParseHand parses a hand from a CLI string. Both comma-separated ("3,4,5,2,1")
// and compact single-digit ("34521") forms are accepted.
func ParseHand(s string) (Hand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty hand string", ErrInvalidHand)
	}

	var hand Hand
	if strings.ContainsAny(s, ", ") {
		for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			die, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: bad die %q", ErrInvalidHand, part)
			}
			hand = append(hand, die)
		}
		return hand, nil
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: bad die %q", ErrInvalidHand, string(r))
		}
		hand = append(hand, int(r-'0'))
	}
	return hand, nil
}
