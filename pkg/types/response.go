package types

// ErrorResponse is the structured error body returned by every failing
// endpoint: the error kind plus a caller-facing message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ServiceInfo is the metadata document served at the root URL.
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	ListURL string `json:"list_url"`
}
