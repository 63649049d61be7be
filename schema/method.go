package schema

const (
	MethodInitialize              = "initialize"
	MethodPing                    = "ping"
	MethodToolsList               = "tools/list"
	MethodToolsCall               = "tools/call"
	MethodNotificationCancel      = "notifications/cancelled"
	MethodNotificationInitialized = "notifications/initialized"

	// NotificationPrefix marks methods that never expect a response.
	NotificationPrefix = "notifications/"
)

// ProtocolVersion is the MCP revision advertised by initialize.
const ProtocolVersion = "2024-11-05"
