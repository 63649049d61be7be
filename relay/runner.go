package relay

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mentraflow/mcp"
)

// Run starts the relay on the process standard streams.
func Run(args []string) error {
	return Serve(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

// Serve starts the relay on the supplied streams and returns once stdin ends.
// In-flight exports are abandoned at that point, as the process is about to exit.
func Serve(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	options, err := ParseOptions(ctx, args)
	if err != nil {
		if IsHelp(err) {
			_, _ = fmt.Fprintln(stderr, err.Error())
			return nil
		}
		return err
	}
	logger := NewLogger(options.LogLevel, stderr)
	srv, err := mcp.NewServer(options.ServerOptions(logger))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stderr, "MentraFlow MCP Server started")
	_, _ = fmt.Fprintf(stderr, "API Endpoint: %s\n", options.Endpoint)
	if options.UserID != "" {
		logger.Info("default user configured", "user_id", options.UserID)
	}
	if options.Timeout > 0 {
		logger.Info("export timeout enabled", "timeout", options.Timeout)
	}
	return srv.Stdio(ctx, stdin, stdout).ListenAndServe()
}
