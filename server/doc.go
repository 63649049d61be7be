// Package server implements the MentraFlow MCP relay: a JSON-RPC 2.0 dispatcher
// exposing the export_to_mentraflow tool, served over newline-delimited stdio.
//
// Each complete input line is dispatched on its own goroutine, so a slow export
// never holds up later requests. Responses are written whole, one per line, in
// completion order; callers correlate them by id.
//
//	srv, _ := server.New(server.WithExporter(export.New(endpoint)))
//	log.Fatal(srv.Stdio(ctx, os.Stdin, os.Stdout).ListenAndServe())
package server
