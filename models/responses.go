package models

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Status repeats the HTTP status code.
	Status int `json:"status"`

	// Error is the canonical status text (e.g. "Bad Request").
	Error string `json:"error"`

	// Message is a human readable description safe to show to clients.
	Message string `json:"message"`

	// Fields holds per-field validation messages keyed by JSON field name.
	Fields map[string]string `json:"fields,omitempty"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ServiceInfo is the metadata document served at the root path.
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}
