package main

import (
	"context"
	"fmt"
	"time"

	"github.com/maxkht/liarsdice/cmd/liarsdice/shared"
	"github.com/maxkht/liarsdice/internal/client"
	"github.com/maxkht/liarsdice/internal/protocol"
)

// AskCmd queries a running advisor server for the optimal next action.
type AskCmd struct {
	GameFlags
	Server string `kong:"default='ws://localhost:8080/ws',help='Advisor WebSocket URL'"`
	Hand   string `kong:"short='H',required,help='Your hand, e.g. 3,4,5,2,1'"`
	Face   int    `kong:"short='f',required,help='Face value of the previous bid'"`
	Count  int    `kong:"short='c',required,help='Count of the previous bid'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (a *AskCmd) Run() error {
	logger := shared.SetupLogger(a.Debug)

	hand, err := parseHand(a.Hand)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := client.Dial(ctx, a.Server, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.Advise(protocol.AdviseRequest{
		TotalDice: a.TotalDice,
		FaceCount: a.FaceCount,
		Hand:      hand,
		PrevBid:   protocol.BidData{Face: a.Face, Count: a.Count},
	})
	if err != nil {
		return err
	}

	fmt.Printf("P(bluff) = %.4f\n", resp.CallProbability)
	for _, d := range resp.Decisions {
		action := "call previous player"
		if !d.Challenge {
			action = fmt.Sprintf("bid(%d, %d)", d.Bid.Face, d.Bid.Count)
		}
		fmt.Printf("%s optimal action: %s (%.4f)\n", d.Policy, action, d.Probability)
	}
	return nil
}
