package eviction

import (
	"container/list"
)

// make sure lruCache implements the Eviction interface
var _ Eviction[string] = (*lruCache[string])(nil)

// lruCache tracks keys in recency order. With fifo set, uses do not move a
// key and the oldest insertion is evicted first.
type lruCache[K comparable] struct {
	capacity  int
	fifo      bool
	cache     map[K]*list.Element
	list      *list.List
	finalizer func(K)
}

func newLRU[K comparable](capacity int, fifo bool, finalizer func(K)) *lruCache[K] {
	if finalizer == nil {
		finalizer = func(K) {}
	}

	return &lruCache[K]{
		capacity:  capacity,
		fifo:      fifo,
		cache:     make(map[K]*list.Element),
		list:      list.New(),
		finalizer: finalizer,
	}
}

// Get records a use of key.
func (lru *lruCache[K]) Get(key K) bool {
	elem, found := lru.cache[key]
	if !found {
		return false
	}

	if !lru.fifo {
		lru.list.MoveToFront(elem)
	}

	return true
}

// Put records key, evicting the least recently used key when full.
func (lru *lruCache[K]) Put(key K) {
	if elem, found := lru.cache[key]; found {
		if !lru.fifo {
			lru.list.MoveToFront(elem)
		}

		return
	}

	if lru.list.Len() >= lru.capacity {
		lru.evict()
	}

	lru.cache[key] = lru.list.PushFront(key)
}

// Delete removes a key from the eviction tracker.
func (lru *lruCache[K]) Delete(key K) {
	if elem, found := lru.cache[key]; found {
		lru.list.Remove(elem)

		delete(lru.cache, key)
	}
}

// evict removes the key at the back of the list and hands it to the finalizer.
func (lru *lruCache[K]) evict() {
	back := lru.list.Back()
	if back == nil {
		return
	}

	key := back.Value.(K)

	delete(lru.cache, key)
	lru.list.Remove(back)

	lru.finalizer(key)
}

// Clear clears the eviction tracker
func (lru *lruCache[K]) Clear() {
	lru.cache = make(map[K]*list.Element)
	lru.list = list.New()
}
