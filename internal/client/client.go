// Package client is a request/response WebSocket client for the advisor
// server. Calls are synchronous: one request frame out, one reply frame in.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/maxkht/liarsdice/internal/protocol"
)

// Client talks to a running advisor server.
type Client struct {
	conn   *websocket.Conn
	logger *log.Logger
}

// Dial connects to the advisor at url (ws://host:port/ws).
func Dial(ctx context.Context, url string, logger *log.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return &Client{conn: conn, logger: logger.WithPrefix("client")}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// Advise requests the optimal next action for one position.
func (c *Client) Advise(req protocol.AdviseRequest) (*protocol.AdviseResponse, error) {
	var resp protocol.AdviseResponse
	if err := c.roundTrip(protocol.TypeAdvise, req, protocol.TypeAdviseResult, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Probability requests the exact probability of a single bid.
func (c *Client) Probability(req protocol.ProbabilityRequest) (float64, error) {
	var resp protocol.ProbabilityResponse
	if err := c.roundTrip(protocol.TypeProbability, req, protocol.TypeProbabilityResult, &resp); err != nil {
		return 0, err
	}
	return resp.Probability, nil
}

func (c *Client) roundTrip(reqType protocol.MessageType, req interface{}, wantType protocol.MessageType, out interface{}) error {
	msg, err := protocol.NewMessage(reqType, req)
	if err != nil {
		return err
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	var reply protocol.Message
	if err := c.conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	switch reply.Type {
	case wantType:
		return json.Unmarshal(reply.Data, out)
	case protocol.TypeError:
		var errData protocol.ErrorData
		if err := json.Unmarshal(reply.Data, &errData); err != nil {
			return fmt.Errorf("server error (unreadable: %v)", err)
		}
		return fmt.Errorf("server error: %s", errData.Message)
	default:
		c.logger.Warn("Unexpected reply type", "type", reply.Type)
		return protocol.ErrUnknownMessageType
	}
}
