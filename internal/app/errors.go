package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNotStarted is returned when a request observes the service
	// before Start has completed.
	ErrNotStarted = errors.New("service not started")
)
