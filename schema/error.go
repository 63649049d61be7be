package schema

import "github.com/viant/jsonrpc"

// JSON-RPC 2.0 error codes
const (
	ParseError     = -32700
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

// NewParseError reports a line that could not be decoded as a JSON-RPC request.
func NewParseError() *jsonrpc.Error {
	return jsonrpc.NewError(ParseError, "Parse error", nil)
}

// NewMethodNotFound reports an unknown method or tool.
func NewMethodNotFound() *jsonrpc.Error {
	return jsonrpc.NewError(MethodNotFound, "Method not found", nil)
}

// NewInvalidParams reports tools/call params that do not decode.
func NewInvalidParams(message string) *jsonrpc.Error {
	return jsonrpc.NewError(InvalidParams, message, nil)
}

// NewInternalError reports a failed export or handler fault.
func NewInternalError(message string) *jsonrpc.Error {
	return jsonrpc.NewError(InternalError, message, nil)
}
