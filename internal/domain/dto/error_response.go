package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint. It implements error so middleware can attach it to the Gin
// error chain.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date format"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time ..."`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// The inner error is optional; nil leaves the details empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
