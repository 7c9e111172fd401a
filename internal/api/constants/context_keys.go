package constants

// Gin context keys
const (
	ContextKeyRequestID = "RequestID"
)

// HeaderRequestID carries the request id in and out of the API
const HeaderRequestID = "X-Request-ID"
