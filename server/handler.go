package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"

	"github.com/mentraflow/mcp/schema"
)

// Handler represents handler
type Handler struct {
	*Server
}

// Serve handles a single JSON-RPC request, filling response with either a result or an error.
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	h.logger.Debug("dispatching", "method", request.Method, "id", requestKey(request.Id))
	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		result, err := h.Ping(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsCall:
		result, err := h.CallTool(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = schema.NewMethodNotFound()
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = schema.NewInternalError(err.Error())
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCancel:
		if err := h.Cancel(ctx, notification); err != nil {
			h.logger.Warn("invalid cancellation", "error", err.Message)
		}
	case schema.MethodNotificationInitialized:
		h.logger.Debug("client initialized")
	default:
		h.logger.Debug("ignoring notification", "method", notification.Method)
	}
}
