package server

import (
	"errors"
	"log/slog"

	"github.com/mentraflow/mcp/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithExporter sets the backend export client.
func WithExporter(exporter Exporter) Option {
	return func(s *Server) error {
		if exporter == nil {
			return errors.New("exporter was nil")
		}
		s.exporter = exporter
		return nil
	}
}

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithProtocolVersion sets the protocol version returned by initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		s.protocolVersion = version
		return nil
	}
}

// WithLogger sets the diagnostic logger; it must not write to stdout.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}
