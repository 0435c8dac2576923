package timedmap

import (
	"github.com/achu-1612/timedmap/eviction"
	"github.com/achu-1612/timedmap/scheduler"
)

const defaultName = "timedmap"

// Options represents the options for the map initialization.
// Maps derived from a map (Clone, Filter, Partition) inherit its options.
type Options struct {
	// Name tags the log lines of the map.
	Name string

	// Scheduler runs the expiration callbacks. When nil, New starts an
	// EventLoop bound to the context passed to New.
	Scheduler scheduler.Scheduler

	// Finalizer is called with the key and value of an entry that left the
	// map because its timer fired or it was evicted. Explicit removals
	// (Delete, Sweep, Clear, Sort) do not call it.
	Finalizer func(key, value any)

	// MaxSize bounds the number of entries when EvictionPolicy is set.
	MaxSize int

	// EvictionPolicy picks the entry dropped once MaxSize is reached.
	EvictionPolicy eviction.Policy

	SupressLog bool
	DebugLogs  bool
}

// Option tunes a single call.
type Option func(*callOptions)

type callOptions struct {
	timeout Timeout
	refresh bool
}

func buildOptions(opts []Option) callOptions {
	o := callOptions{refresh: true}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTimeout sets the timer behaviour of a write. Writes default to Unspecified.
func WithTimeout(t Timeout) Option {
	return func(o *callOptions) {
		o.timeout = t
	}
}

// NoRefresh turns off refresh-on-access for reads. For copies (Clone,
// Filter, Partition, Concat, Sort) it carries the time actually left on each
// timer instead of restarting it with its full duration.
func NoRefresh() Option {
	return func(o *callOptions) {
		o.refresh = false
	}
}
