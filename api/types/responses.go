package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the structured error shape returned to tool callers.
// Kind is drawn from the pkg/errors taxonomy so the caller can decide
// whether a retry makes sense.
type ErrorResponse struct {
	Status  string      `json:"status"`
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ToolDefinition describes one callable tool for agent discovery
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolsResponse lists the available tools
type ToolsResponse struct {
	Tools []ToolDefinition `json:"tools"`
	Count int              `json:"count"`
}

// HealthResponse for the health check endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
