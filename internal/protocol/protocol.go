// Package protocol defines the JSON messages exchanged between the advisor
// server and its clients.
package protocol

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrUnknownMessageType is returned for messages the peer cannot handle.
var ErrUnknownMessageType = errors.New("unknown message type")

// MessageType identifies the type of a WebSocket message.
type MessageType string

// Client to Server message types
const (
	TypeAdvise      MessageType = "advise"
	TypeProbability MessageType = "probability"
)

// Server to Client message types
const (
	TypeAdviseResult      MessageType = "advise_result"
	TypeProbabilityResult MessageType = "probability_result"
	TypeError             MessageType = "error"
)

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp,omitempty"`
}

// NewMessage wraps data in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// BidData is a bid on the wire.
type BidData struct {
	Face  int `json:"face"`
	Count int `json:"count"`
}

// AdviseRequest asks for the optimal next action for one position.
type AdviseRequest struct {
	TotalDice int     `json:"totalDice"`
	FaceCount int     `json:"faceCount"`
	Hand      []int   `json:"hand"`
	PrevBid   BidData `json:"prevBid"`
}

// DecisionData is one policy's recommendation.
type DecisionData struct {
	Policy      string   `json:"policy"`
	Challenge   bool     `json:"challenge"`
	Bid         *BidData `json:"bid,omitempty"`
	Probability float64  `json:"probability"`
}

// AdviseResponse carries the probability table and the per-policy decisions.
type AdviseResponse struct {
	CallProbability float64        `json:"callProbability"`
	Table           [][]float64    `json:"table"`
	Decisions       []DecisionData `json:"decisions"`
}

// ProbabilityRequest asks for the exact probability of a single bid.
type ProbabilityRequest struct {
	TotalDice int     `json:"totalDice"`
	FaceCount int     `json:"faceCount"`
	Hand      []int   `json:"hand"`
	Bid       BidData `json:"bid"`
}

// ProbabilityResponse is the exact probability of the requested bid.
type ProbabilityResponse struct {
	Probability float64 `json:"probability"`
}

// ErrorData reports a request failure.
type ErrorData struct {
	Message string `json:"message"`
}
