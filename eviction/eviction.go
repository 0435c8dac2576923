package eviction

import (
	"errors"
	"fmt"
)

type Policy string

const (
	PolicyNone Policy = ""     // No capacity bound
	PolicyLRU  Policy = "lru"  // Least Recently Used
	PolicyFIFO Policy = "fifo" // First In First Out
	PolicyLFU  Policy = "lfu"  // Least Frequently Used
)

const (
	defaultCapacity = 100 // Default capacity when a policy is set without one
)

// ErrUnknownPolicy is returned by New for a policy it does not implement.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

// Eviction tracks key usage and decides which key to drop once the
// capacity is reached. It never stores values; the owner is told about a
// victim through the evict finalizer and removes it itself.
type Eviction[K comparable] interface {
	// Get records a use of key. It reports whether the key is tracked.
	Get(key K) bool
	// Put records a new or rewritten key, evicting another one if the
	// capacity is exceeded.
	Put(key K)
	// Delete stops tracking key without calling the finalizer.
	Delete(key K)
	// Clear forgets every key.
	Clear()
}

// Options holds the configuration for the eviction tracker.
type Options[K comparable] struct {
	// Capacity is the maximum number of keys tracked.
	// After this capacity is reached, Put evicts a key based on the policy.
	// Default value is 100.
	Capacity int

	// Policy is the eviction policy to be used.
	Policy Policy

	// EvictFinalizer is called with the key chosen for eviction.
	EvictFinalizer func(key K)
}

// New creates a new Eviction instance based on the provided options.
func New[K comparable](opt Options[K]) (Eviction[K], error) {
	if opt.EvictFinalizer == nil {
		opt.EvictFinalizer = func(K) {}
	}

	if opt.Capacity <= 0 {
		opt.Capacity = defaultCapacity
	}

	switch opt.Policy {
	case PolicyNone:
		return &nilEviction[K]{}, nil

	case PolicyLFU:
		return newLFU(opt.Capacity, opt.EvictFinalizer), nil

	case PolicyLRU:
		return newLRU(opt.Capacity, false, opt.EvictFinalizer), nil

	case PolicyFIFO:
		return newLRU(opt.Capacity, true, opt.EvictFinalizer), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, opt.Policy)
	}
}
