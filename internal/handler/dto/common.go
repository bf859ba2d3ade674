// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// SuccessResponse is the body for mutations that report no payload.
// It is returned even when the target id matched nothing.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PingResponse is the health-check body for GET /api/ping.
type PingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
