package eviction

import (
	"container/list"
)

// lfuItem is a tracked key with its access count.
type lfuItem[K comparable] struct {
	key       K
	frequency int
}

// make sure lfuCache implements the Eviction interface
var _ Eviction[string] = (*lfuCache[string])(nil)

// lfuCache evicts the least frequently used key, the oldest one among
// equally used keys.
type lfuCache[K comparable] struct {
	maxSize   int
	cache     map[K]*list.Element
	frequency map[int]*list.List
	minFreq   int
	finalizer func(K)
}

func newLFU[K comparable](maxSize int, finalizer func(K)) *lfuCache[K] {
	if finalizer == nil {
		finalizer = func(K) {}
	}

	return &lfuCache[K]{
		maxSize:   maxSize,
		cache:     make(map[K]*list.Element),
		frequency: make(map[int]*list.List),
		finalizer: finalizer,
	}
}

// Get records a use of key.
func (c *lfuCache[K]) Get(key K) bool {
	elem, ok := c.cache[key]
	if !ok {
		return false
	}

	c.incrementFrequency(elem)

	return true
}

// Put records key, evicting the least frequently used key when full.
func (c *lfuCache[K]) Put(key K) {
	if c.maxSize == 0 {
		return
	}

	if elem, ok := c.cache[key]; ok {
		c.incrementFrequency(elem)

		return
	}

	if len(c.cache) >= c.maxSize {
		c.evict()
	}

	if c.frequency[1] == nil {
		c.frequency[1] = list.New()
	}

	c.cache[key] = c.frequency[1].PushFront(&lfuItem[K]{key: key, frequency: 1})
	c.minFreq = 1
}

// incrementFrequency moves the element to the list of its next frequency.
func (c *lfuCache[K]) incrementFrequency(elem *list.Element) {
	item := elem.Value.(*lfuItem[K])

	c.unlink(elem)

	item.frequency++

	if c.frequency[item.frequency] == nil {
		c.frequency[item.frequency] = list.New()
	}

	c.cache[item.key] = c.frequency[item.frequency].PushFront(item)
}

// unlink removes elem from its frequency list, dropping the list once empty.
func (c *lfuCache[K]) unlink(elem *list.Element) {
	freq := elem.Value.(*lfuItem[K]).frequency

	c.frequency[freq].Remove(elem)

	if c.frequency[freq].Len() == 0 {
		delete(c.frequency, freq)

		if c.minFreq == freq {
			c.minFreq++
		}
	}
}

// evict evicts the least frequently used key
func (c *lfuCache[K]) evict() {
	l, ok := c.frequency[c.minFreq]
	if !ok {
		c.resetMinFreq()

		if l, ok = c.frequency[c.minFreq]; !ok {
			return
		}
	}

	elem := l.Back()
	if elem == nil {
		return
	}

	item := elem.Value.(*lfuItem[K])

	c.unlink(elem)
	delete(c.cache, item.key)

	c.finalizer(item.key)
}

// resetMinFreq recomputes minFreq after deletions left it stale.
func (c *lfuCache[K]) resetMinFreq() {
	c.minFreq = 0

	for f := range c.frequency {
		if c.minFreq == 0 || f < c.minFreq {
			c.minFreq = f
		}
	}
}

// Delete removes a key from the eviction tracker.
func (c *lfuCache[K]) Delete(key K) {
	elem, ok := c.cache[key]
	if !ok {
		return
	}

	c.unlink(elem)
	delete(c.cache, key)
}

// Clear clears the eviction tracker
func (c *lfuCache[K]) Clear() {
	c.cache = make(map[K]*list.Element)
	c.frequency = make(map[int]*list.List)
	c.minFreq = 0
}
