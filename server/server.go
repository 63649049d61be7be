package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mentraflow/mcp/export"
	"github.com/mentraflow/mcp/internal/collection"
	"github.com/mentraflow/mcp/schema"
)

// Exporter forwards tool arguments to the MentraFlow backend.
type Exporter interface {
	Export(ctx context.Context, userID, conversations json.RawMessage) (*export.Result, error)
}

// Server represents the relay's MCP protocol handler
type Server struct {
	info            schema.Implementation
	protocolVersion string
	exporter        Exporter
	tool            *schema.Tool
	logger          *slog.Logger
	activeCalls     *collection.SyncMap[string, context.CancelFunc]
}

// NewHandler creates a handler bound to this server.
func (s *Server) NewHandler() *Handler {
	return &Handler{Server: s}
}

// Info returns the advertised implementation.
func (s *Server) Info() schema.Implementation {
	return s.info
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	tool, err := schema.NewExportTool()
	if err != nil {
		return nil, err
	}
	s := &Server{
		info: schema.Implementation{
			Name:    "mentraflow",
			Version: "1.0.0",
		},
		protocolVersion: schema.ProtocolVersion,
		tool:            tool,
		logger:          slog.Default(),
		activeCalls:     collection.NewSyncMap[string, context.CancelFunc](),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.exporter == nil {
		return nil, errors.New("no exporter specified")
	}
	return s, nil
}
