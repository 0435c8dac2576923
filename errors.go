package timedmap

import "errors"

var (
	// ErrEmptyReduction is returned when reducing an empty map without an initial value.
	ErrEmptyReduction = errors.New("reduce of empty map with no initial value")

	// ErrInvalidMaxSize is returned by New when an eviction policy is set without a positive MaxSize.
	ErrInvalidMaxSize = errors.New("invalid max size for eviction")
)
