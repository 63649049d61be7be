package mcp

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mentraflow/mcp/export"
	"github.com/mentraflow/mcp/schema"
	"github.com/mentraflow/mcp/server"
)

// ServerOptions defines options for configuring the relay server.
type ServerOptions struct {
	Name            string         `yaml:"name" json:"name"`
	Version         string         `yaml:"version" json:"version"`
	ProtocolVersion string         `yaml:"protocol" json:"protocol"`
	Export          *ExportOptions `yaml:"export" json:"export"`
	Logger          *slog.Logger   `yaml:"-" json:"-"`
}

// ExportOptions configures the backend export client.
type ExportOptions struct {
	Endpoint   string        `yaml:"endpoint" json:"endpoint"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent  string        `yaml:"userAgent" json:"userAgent"`
	HTTPClient *http.Client  `yaml:"-" json:"-"`
}

// NewServer creates the relay server with its export client.
func NewServer(options *ServerOptions) (*server.Server, error) {
	if options == nil {
		options = &ServerOptions{}
	}
	exportOptions := options.Export
	if exportOptions == nil {
		exportOptions = &ExportOptions{}
	}
	if exportOptions.Timeout < 0 {
		return nil, fmt.Errorf("invalid export timeout: %v", exportOptions.Timeout)
	}

	var clientOptions []export.Option
	if exportOptions.HTTPClient != nil {
		clientOptions = append(clientOptions, export.WithHTTPClient(exportOptions.HTTPClient))
	}
	if exportOptions.Timeout > 0 {
		clientOptions = append(clientOptions, export.WithTimeout(exportOptions.Timeout))
	}
	if exportOptions.UserAgent != "" {
		clientOptions = append(clientOptions, export.WithUserAgent(exportOptions.UserAgent))
	}
	if options.Logger != nil {
		clientOptions = append(clientOptions, export.WithLogger(options.Logger))
	}

	serverOptions := []server.Option{
		server.WithExporter(export.New(exportOptions.Endpoint, clientOptions...)),
		server.WithLogger(options.Logger),
	}
	if options.Name != "" || options.Version != "" {
		impl := schema.Implementation{
			Name:    options.Name,
			Version: options.Version,
		}
		serverOptions = append(serverOptions, server.WithImplementation(impl))
	}
	if options.ProtocolVersion != "" {
		serverOptions = append(serverOptions, server.WithProtocolVersion(options.ProtocolVersion))
	}
	return server.New(serverOptions...)
}
