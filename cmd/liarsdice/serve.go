package main

import (
	"github.com/maxkht/liarsdice/cmd/liarsdice/shared"
	"github.com/maxkht/liarsdice/internal/server"
)

// ServeCmd runs the WebSocket advisor server.
type ServeCmd struct {
	Addr  string `kong:"default=':8080',help='Server address'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (s *ServeCmd) Run() error {
	logger := shared.SetupLogger(s.Debug)
	srv := server.NewServer(s.Addr, logger, nil)
	return srv.Start()
}
