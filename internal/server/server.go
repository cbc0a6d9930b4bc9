// Package server exposes the solver over WebSockets. Every request is
// stateless: one advise or probability message in, one result out.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/maxkht/liarsdice/internal/dice"
	"github.com/maxkht/liarsdice/internal/protocol"
	"github.com/maxkht/liarsdice/internal/solver"
)

// Server is the WebSocket advisor.
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	logger      *log.Logger
	clock       quartz.Clock
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewServer creates an advisor server listening on addr. A nil clock falls
// back to the real clock; tests inject a mock.
func NewServer(addr string, logger *log.Logger, clock quartz.Clock) *Server {
	if clock == nil {
		clock = quartz.NewReal()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The advisor serves no secrets and holds no state.
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		logger:      logger.WithPrefix("server"),
		clock:       clock,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Handler returns the HTTP handler serving /ws and /health, for embedding in
// tests or an existing mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the connection registry and blocks serving HTTP on addr.
func (s *Server) Start() error {
	go s.run()
	s.logger.Info("Starting WebSocket advisor", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop closes every connection and stops the registry.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()
	return nil
}

// Run starts the registry without serving HTTP, for use with Handler().
func (s *Server) Run() {
	go s.run()
}

func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := NewConnection(ws, s, s.logger)
	s.register <- conn
	conn.Start()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleMessage dispatches one client request and returns the reply envelope.
func (s *Server) handleMessage(msg *protocol.Message) *protocol.Message {
	switch msg.Type {
	case protocol.TypeAdvise:
		return s.handleAdvise(msg)
	case protocol.TypeProbability:
		return s.handleProbability(msg)
	default:
		return errorMessage(protocol.ErrUnknownMessageType.Error())
	}
}

func (s *Server) handleAdvise(msg *protocol.Message) *protocol.Message {
	var req protocol.AdviseRequest
	if err := unmarshalData(msg, &req); err != nil {
		return errorMessage(err.Error())
	}

	cfg := requestConfig(req.TotalDice, req.FaceCount)
	table, err := solver.BuildTable(cfg, dice.Hand(req.Hand), dice.Bid(req.PrevBid))
	if err != nil {
		return errorMessage(err.Error())
	}

	resp := protocol.AdviseResponse{
		CallProbability: table.CallProbability,
		Table:           table.Cells,
	}
	for _, d := range table.Decisions() {
		dd := protocol.DecisionData{
			Policy:      d.Policy.String(),
			Challenge:   d.Challenge,
			Probability: d.Probability,
		}
		if !d.Challenge {
			dd.Bid = &protocol.BidData{Face: d.Bid.Face, Count: d.Bid.Count}
		}
		resp.Decisions = append(resp.Decisions, dd)
	}

	reply, err := protocol.NewMessage(protocol.TypeAdviseResult, resp)
	if err != nil {
		return errorMessage(err.Error())
	}
	return reply
}

func (s *Server) handleProbability(msg *protocol.Message) *protocol.Message {
	var req protocol.ProbabilityRequest
	if err := unmarshalData(msg, &req); err != nil {
		return errorMessage(err.Error())
	}

	cfg := requestConfig(req.TotalDice, req.FaceCount)
	p, err := dice.Probability(cfg, dice.Hand(req.Hand), dice.Bid(req.Bid))
	if err != nil {
		return errorMessage(err.Error())
	}

	reply, err := protocol.NewMessage(protocol.TypeProbabilityResult, protocol.ProbabilityResponse{Probability: p})
	if err != nil {
		return errorMessage(err.Error())
	}
	return reply
}

func requestConfig(totalDice, faceCount int) dice.GameConfig {
	cfg := dice.DefaultConfig()
	if totalDice > 0 {
		cfg.TotalDice = totalDice
	}
	if faceCount > 0 {
		cfg.FaceCount = faceCount
	}
	return cfg
}

func errorMessage(text string) *protocol.Message {
	msg, err := protocol.NewMessage(protocol.TypeError, protocol.ErrorData{Message: text})
	if err != nil {
		// Marshalling a plain string cannot fail; keep the compiler honest.
		return &protocol.Message{Type: protocol.TypeError}
	}
	return msg
}
