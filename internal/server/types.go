package server

import (
	"time"
)

// Config holds the HTTP server settings
type Config struct {
	Port           string
	AllowedOrigins []string
	ServiceName    string
	Production     bool
	// ShutdownTimeout bounds how long in-flight requests get on shutdown
	ShutdownTimeout time.Duration
}

const defaultShutdownTimeout = 10 * time.Second
