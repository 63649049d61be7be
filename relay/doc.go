// Package relay runs the MentraFlow MCP export relay as a command line process.
//
// Run parses flags (falling back to MENTRAFLOW_* environment variables, an
// optional dotenv file and an optional YAML config file), logs startup
// diagnostics to standard error and serves JSON-RPC on standard input/output
// until input ends.
package relay
