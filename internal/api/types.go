// internal/api/types.go
package api

import "time"

// APIResponse is the envelope returned by every JSON endpoint.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code and a user-presentable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
