package schema

import protoschema "github.com/viant/mcp-protocol/schema"

// Implementation identifies the server in initialize responses.
type Implementation = protoschema.Implementation

type (
	// ToolsCapability advertises tool support; empty means static tool list.
	ToolsCapability struct {
		ListChanged bool `json:"listChanged,omitempty"`
	}

	ServerCapabilities struct {
		Tools *ToolsCapability `json:"tools,omitempty"`
	}

	InitializeResult struct {
		ProtocolVersion string             `json:"protocolVersion"`
		ServerInfo      Implementation     `json:"serverInfo"`
		Capabilities    ServerCapabilities `json:"capabilities"`
	}

	PingResult struct{}

	ListToolsResult struct {
		Tools []Tool `json:"tools"`
	}

	// Content is a tool result content block.
	Content struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	CallToolResult struct {
		Content []Content `json:"content"`
		IsError bool      `json:"isError,omitempty"`
	}
)

// NewTextResult wraps text as a single text content block.
func NewTextResult(text string) *CallToolResult {
	return &CallToolResult{Content: []Content{{Type: "text", Text: text}}}
}
