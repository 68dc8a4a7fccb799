package models

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine-readable error kind (e.g. "MissingToken").
	Error string `json:"erro"`

	// Message is the human-readable description in Portuguese.
	Message string `json:"mensagem"`

	// Field names the offending request field for validation errors.
	Field string `json:"campo,omitempty"`
}

// IDResponse is returned by create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// StatusResponse is returned by delete operations.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"mensagem"`
}

// TokenResponse is returned by a successful login in token mode.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expira_em"`
}

// UnchangedResponse is returned by an update whose payload equals the stored record.
type UnchangedResponse struct {
	Message string `json:"mensagem"`
	Record  any    `json:"registro"`
}

// Marker is a named coordinate, the shape consumed by the map renderer.
type Marker struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
