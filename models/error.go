package models

// ErrorResponse is the error envelope returned to clients
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the success envelope for operations without a payload
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse returns the health check response, yo
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
