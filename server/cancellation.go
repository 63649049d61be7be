package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"

	"github.com/mentraflow/mcp/schema"
)

type cancelledParams struct {
	RequestId json.RawMessage `json:"requestId"`
	Reason    string          `json:"reason,omitempty"`
}

// Cancel aborts the in-flight tools/call named by a notifications/cancelled message.
// The cancelled call still answers with an internal error.
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	params := &cancelledParams{}
	if err := json.Unmarshal(notification.Params, params); err != nil {
		return schema.NewInvalidParams(fmt.Sprintf("failed to parse notification: %v", err))
	}
	if len(params.RequestId) == 0 {
		return schema.NewInvalidParams("invalid requestId")
	}
	key := requestKey(params.RequestId)
	if cancel, ok := h.activeCalls.Take(key); ok {
		h.logger.Info("cancelling export", "id", key, "reason", params.Reason)
		cancel()
	}
	return nil
}

// cancelActive aborts every in-flight tools/call.
func (s *Server) cancelActive(reason string) {
	s.activeCalls.Range(func(key string, cancel context.CancelFunc) bool {
		if _, ok := s.activeCalls.Take(key); ok {
			s.logger.Info("cancelling export", "id", key, "reason", reason)
			cancel()
		}
		return true
	})
}
