package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// Overridable in tests to avoid slow shutdown paths.
var shutdownTimeout = 10 * time.Second
