package core

import "errors"

var (
	// ErrInvalidConfiguration is returned when the array length and zone
	// count cannot be partitioned into zones of at least two elements.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrResourceExhaustion is returned when a zone cannot be given a worker.
	// The run is aborted before any element is moved.
	ErrResourceExhaustion = errors.New("resource exhaustion")
)
