// Package mcp provides the MentraFlow MCP export relay.
//
// The relay is a stdio MCP server exposing a single tool, export_to_mentraflow,
// which forwards AI chat conversations to the MentraFlow backend where they are
// turned into concepts and quizzes. NewServer assembles the protocol handler and
// the backend export client from a ServerOptions structure that can be populated
// from CLI flags, environment variables or a YAML file (see package relay).
//
// Example:
//
//	srv, _ := mcp.NewServer(&mcp.ServerOptions{Export: &mcp.ExportOptions{Endpoint: url}})
//	log.Fatal(srv.Stdio(ctx, os.Stdin, os.Stdout).ListenAndServe())
package mcp
