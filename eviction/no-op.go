package eviction

// make sure nilEviction implements the Eviction interface
var _ Eviction[string] = (*nilEviction[string])(nil)

// nilEviction is a no-op/dummy eviction implementation
type nilEviction[K comparable] struct{}

// Get retrieves a value from the eviction cache given a key.
func (n *nilEviction[K]) Get(key K) bool {
	return true
}

// Put records a key, never evicting.
func (n *nilEviction[K]) Put(key K) {}

// Delete removes a key from the eviction tracker.
func (n *nilEviction[K]) Delete(key K) {}

// Clear clears the eviction tracker
func (n *nilEviction[K]) Clear() {}
