package relay

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/mentraflow/mcp"
	"github.com/mentraflow/mcp/export"
)

const (
	serverName     = "mentraflow"
	serverVersion  = "1.0.0"
	defaultEnvFile = ".env"
)

// Options holds the relay command line options.
type Options struct {
	Endpoint  string        `short:"e" long:"endpoint" env:"MENTRAFLOW_ENDPOINT" description:"MentraFlow receive-export URL"`
	UserID    string        `short:"u" long:"user-id" env:"MENTRAFLOW_USER_ID" description:"default MentraFlow user ID (informational, never substituted into calls)"`
	Timeout   time.Duration `short:"t" long:"timeout" env:"MENTRAFLOW_TIMEOUT" description:"export request timeout, 0 waits indefinitely"`
	LogLevel  string        `short:"l" long:"log-level" env:"MENTRAFLOW_LOG_LEVEL" description:"diagnostic log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	ConfigURL string        `short:"c" long:"config" env:"MENTRAFLOW_CONFIG" description:"YAML config file location"`
	EnvFile   string        `long:"env-file" description:"dotenv file loaded before reading the environment (default .env when present)"`
}

// Merge fills options left unset by flags and environment from config.
func (o *Options) Merge(config *Config) {
	if config == nil {
		return
	}
	if o.Endpoint == "" {
		o.Endpoint = config.Endpoint
	}
	if o.UserID == "" {
		o.UserID = config.UserID
	}
	if o.Timeout == 0 {
		o.Timeout = config.Timeout
	}
	if o.LogLevel == "" {
		o.LogLevel = config.LogLevel
	}
}

// Init applies defaults to options still unset.
func (o *Options) Init() {
	if o.Endpoint == "" {
		o.Endpoint = export.DefaultEndpoint
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
}

// ServerOptions maps command line options onto relay server options.
func (o *Options) ServerOptions(logger *slog.Logger) *mcp.ServerOptions {
	return &mcp.ServerOptions{
		Name:    serverName,
		Version: serverVersion,
		Export: &mcp.ExportOptions{
			Endpoint:  o.Endpoint,
			Timeout:   o.Timeout,
			UserAgent: "mentraflow-mcp/" + serverVersion,
		},
		Logger: logger,
	}
}

// ParseOptions resolves options with precedence flag > environment > config file > default.
func ParseOptions(ctx context.Context, args []string) (*Options, error) {
	options := &Options{}
	if _, err := newParser(options).ParseArgs(args); err != nil {
		return nil, err
	}
	if err := loadEnvFile(options.EnvFile); err != nil {
		return nil, err
	}
	// parse again so values from the dotenv file reach env-backed options
	options = &Options{}
	if _, err := newParser(options).ParseArgs(args); err != nil {
		return nil, err
	}
	if options.ConfigURL != "" {
		config, err := LoadConfig(ctx, options.ConfigURL)
		if err != nil {
			return nil, err
		}
		options.Merge(config)
	}
	if options.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout: %v", options.Timeout)
	}
	options.Init()
	return options, nil
}

func newParser(options *Options) *flags.Parser {
	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = "mentraflow-mcp"
	return parser
}

// loadEnvFile loads a dotenv file without overriding variables already set.
// A missing default file is ignored.
func loadEnvFile(location string) error {
	if location == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %v: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(location); err != nil {
		return fmt.Errorf("failed to load %v: %w", location, err)
	}
	return nil
}

// IsHelp reports whether err is a request for usage output.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
