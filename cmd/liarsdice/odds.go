package main

import (
	"fmt"

	"github.com/maxkht/liarsdice/internal/dice"
)

// OddsCmd computes the exact probability of a single bid being true.
type OddsCmd struct {
	GameFlags
	Hand  string `kong:"short='H',required,help='Your hand, e.g. 3,4,5,2,1'"`
	Face  int    `kong:"short='f',required,help='Face value of the bid'"`
	Count int    `kong:"short='c',required,help='Count of the bid'"`
}

func (o *OddsCmd) Run() error {
	hand, err := parseHand(o.Hand)
	if err != nil {
		return err
	}

	bid := dice.Bid{Face: o.Face, Count: o.Count}
	p, err := dice.Probability(o.Config(), hand, bid)
	if err != nil {
		return err
	}

	fmt.Printf("P(%s | hand %s) = %v\n", bid, hand, p)
	return nil
}
