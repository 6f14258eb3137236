package dto

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the reasons a write was rejected.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
