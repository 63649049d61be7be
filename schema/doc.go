// Package schema holds the MCP vocabulary spoken by the relay: method names,
// JSON-RPC error codes, tool descriptors and result payloads.
//
// Tool input schemas are derived from Go struct types by reflection, so the
// advertised schema for export_to_mentraflow stays in step with ExportInput.
package schema
