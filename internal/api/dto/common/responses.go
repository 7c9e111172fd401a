package common

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// NotFoundResponse is returned for unmatched routes
type NotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// StatusResponse is returned by the root endpoint
type StatusResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Define type for error codes to enforce consistency
type ErrorCode string

// Standard error codes
const (
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodePolicy         ErrorCode = "POLICY_ERROR"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodePersistence    ErrorCode = "PERSISTENCE_ERROR"
	ErrCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrCodeBadRequest     ErrorCode = "BAD_REQUEST"
)

// NewErrorResponse creates a new error response
func NewErrorResponse(code ErrorCode, message string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Code:    string(code),
		Details: details,
	}
}
