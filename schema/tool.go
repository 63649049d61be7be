package schema

import "encoding/json"

const (
	// ExportToolName is the only tool the relay advertises.
	ExportToolName        = "export_to_mentraflow"
	exportToolDescription = "Export conversations to MentraFlow for knowledge retention and quiz generation"
)

type (
	// ExportInput describes the export_to_mentraflow arguments.
	ExportInput struct {
		UserID        string         `json:"user_id" description:"MentraFlow user ID"`
		Conversations []Conversation `json:"conversations" description:"Array of conversations to export"`
	}

	// Conversation is a single chat thread exported from an AI platform.
	Conversation struct {
		ConversationID string                 `json:"conversation_id,omitempty"`
		Platform       string                 `json:"platform,omitempty"`
		Title          string                 `json:"title,omitempty"`
		Messages       []Message              `json:"messages,omitempty"`
		CreatedAt      string                 `json:"created_at,omitempty"`
		Metadata       map[string]interface{} `json:"metadata,omitempty"`
	}

	// Message is one turn of a conversation.
	Message struct {
		Role      string `json:"role,omitempty"`
		Content   string `json:"content,omitempty"`
		Timestamp string `json:"timestamp,omitempty"`
	}

	// Tool is an MCP tool descriptor.
	Tool struct {
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		InputSchema ToolInputSchema `json:"inputSchema"`
	}

	// CallToolRequestParams holds tools/call params; arguments are kept raw so
	// they can be forwarded without reshaping.
	CallToolRequestParams struct {
		Name      string                     `json:"name"`
		Arguments map[string]json.RawMessage `json:"arguments,omitempty"`
	}
)

// Argument returns the raw JSON of a named argument, or nil when absent.
func (p *CallToolRequestParams) Argument(name string) json.RawMessage {
	if p.Arguments == nil {
		return nil
	}
	return p.Arguments[name]
}

// NewExportTool builds the export_to_mentraflow descriptor.
func NewExportTool() (*Tool, error) {
	ret := &Tool{Name: ExportToolName, Description: exportToolDescription}
	if err := ret.InputSchema.Load(&ExportInput{}); err != nil {
		return nil, err
	}
	return ret, nil
}
