package dto

import "net/http"

// Envelope is the wrapper every endpoint returns, success or failure.
// Data is present on success, Error on failure. Client-facing failures
// carry an empty Error object; internal failures include the detail.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func SuccessEnvelope(code int, message string, data any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{
		Success: true,
		Message: message,
		Status:  http.StatusText(code),
		Code:    code,
		Data:    data,
	}
}

func ErrorEnvelope(code int, message string, detail any) Envelope {
	if message == "" {
		message = "Something went wrong"
	}
	if detail == nil {
		detail = map[string]any{}
	}
	return Envelope{
		Success: false,
		Message: message,
		Status:  http.StatusText(code),
		Code:    code,
		Error:   detail,
	}
}
