package main

import (
	"os"

	"github.com/maxkht/liarsdice/cmd/liarsdice/shared"
	"github.com/maxkht/liarsdice/internal/dice"
	"github.com/maxkht/liarsdice/internal/display"
	"github.com/maxkht/liarsdice/internal/scenario"
	"github.com/maxkht/liarsdice/internal/solver"
)

// AdviseCmd computes the full probability table for a position and the
// optimal action under each legality policy.
type AdviseCmd struct {
	GameFlags
	Hand     string `kong:"short='H',help='Your hand, e.g. 3,4,5,2,1 or 34521'"`
	Face     int    `kong:"short='f',help='Face value of the previous bid'"`
	Count    int    `kong:"short='c',help='Count of the previous bid'"`
	Scenario string `kong:"short='s',help='HCL scenario file (flags override nothing when set)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (a *AdviseCmd) Run() error {
	logger := shared.SetupLogger(a.Debug)

	cfg := a.Config()
	var hand dice.Hand
	prevBid := dice.Bid{Face: a.Face, Count: a.Count}

	if a.Scenario != "" {
		s, err := scenario.Load(a.Scenario)
		if err != nil {
			return err
		}
		cfg = s.Config()
		hand = s.PlayerHand()
		prevBid = s.PrevBid()
	} else {
		var err error
		hand, err = parseHand(a.Hand)
		if err != nil {
			return err
		}
	}

	logger.Debug("building table", "config", cfg, "hand", hand, "prev", prevBid)
	table, err := solver.BuildTable(cfg, hand, prevBid)
	if err != nil {
		return err
	}

	r := display.NewRenderer(os.Stdout)
	r.Hand(prevBid.Face, prevBid.Count, hand)
	r.Table(table)
	r.Decisions(table, table.Decisions())
	return nil
}
