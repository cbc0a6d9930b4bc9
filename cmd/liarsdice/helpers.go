package main

import (
	"github.com/maxkht/liarsdice/internal/dice"
)

// GameFlags are the die and count parameters shared by every subcommand.
type GameFlags struct {
	TotalDice int `kong:"default='15',help='Total dice in play across all players'"`
	FaceCount int `kong:"default='6',help='Number of faces per die'"`
}

// Config returns the game configuration with ones wild.
func (g GameFlags) Config() dice.GameConfig {
	return dice.GameConfig{
		TotalDice:    g.TotalDice,
		FaceCount:    g.FaceCount,
		WildcardFace: 1,
	}
}

func parseHand(s string) (dice.Hand, error) {
	return dice.ParseHand(s)
}
