package main

import (
	"github.com/maxkht/liarsdice/internal/dice"
	"github.com/maxkht/liarsdice/internal/scenario"
	"github.com/maxkht/liarsdice/internal/solver"
	"github.com/maxkht/liarsdice/internal/tui"
)

// ExploreCmd opens the interactive probability table explorer.
type ExploreCmd struct {
	GameFlags
	Hand     string `kong:"short='H',help='Your hand, e.g. 3,4,5,2,1'"`
	Face     int    `kong:"short='f',help='Face value of the previous bid'"`
	Count    int    `kong:"short='c',help='Count of the previous bid'"`
	Scenario string `kong:"short='s',help='HCL scenario file'"`
}

func (e *ExploreCmd) Run() error {
	cfg := e.Config()
	var hand dice.Hand
	prevBid := dice.Bid{Face: e.Face, Count: e.Count}

	if e.Scenario != "" {
		s, err := scenario.Load(e.Scenario)
		if err != nil {
			return err
		}
		cfg = s.Config()
		hand = s.PlayerHand()
		prevBid = s.PrevBid()
	} else {
		var err error
		hand, err = parseHand(e.Hand)
		if err != nil {
			return err
		}
	}

	table, err := solver.BuildTable(cfg, hand, prevBid)
	if err != nil {
		return err
	}
	return tui.Run(table)
}
