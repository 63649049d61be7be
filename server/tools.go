package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"

	"github.com/mentraflow/mcp/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	return &schema.ListToolsResult{Tools: []schema.Tool{*h.tool}}, nil
}

// CallTool handles the tools/call method. The export round trip runs to
// completion (or cancellation) before the result is returned.
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	params := &schema.CallToolRequestParams{}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, params); err != nil {
			return nil, schema.NewInvalidParams(fmt.Sprintf("failed to parse: %v", err))
		}
	}
	if params.Name != schema.ExportToolName {
		return nil, schema.NewMethodNotFound()
	}

	ctx, cancel := context.WithCancel(ctx)
	key := requestKey(request.Id)
	h.activeCalls.Put(key, cancel)
	defer func() {
		cancel()
		h.activeCalls.Delete(key)
	}()

	conversations := params.Argument("conversations")
	result, err := h.exporter.Export(ctx, params.Argument("user_id"), conversations)
	if err != nil {
		h.logger.Warn("export failed", "id", key, "error", err)
		return nil, schema.NewInternalError("Failed to export: " + err.Error())
	}
	return schema.NewTextResult(formatSummary(countConversations(conversations), result)), nil
}
