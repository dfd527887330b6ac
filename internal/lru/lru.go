// SPDX-License-Identifier: Unlicense OR MIT

// Package lru implements a bounded least recently used cache.
package lru

// Cache maps keys to values, evicting the least recently used entry
// when it holds more than its capacity. The zero Cache holds DefaultSize
// entries. A Cache must not be used concurrently.
type Cache[K comparable, V any] struct {
	// Size is the capacity. Zero means DefaultSize.
	Size int

	m          map[K]*elem[K, V]
	head, tail *elem[K, V]
}

type elem[K comparable, V any] struct {
	next, prev *elem[K, V]
	key        K
	val        V
}

const DefaultSize = 1000

// Get returns the value for k and marks it as recently used.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.val, true
	}
	var zero V
	return zero, false
}

// Put sets the value for k.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.m == nil {
		c.m = make(map[K]*elem[K, V])
		c.head = new(elem[K, V])
		c.tail = new(elem[K, V])
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		e.val = v
		c.remove(e)
		c.insert(e)
		return
	}
	e := &elem[K, V]{key: k, val: v}
	c.m[k] = e
	c.insert(e)
	if len(c.m) > c.size() {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.m)
}

func (c *Cache[K, V]) size() int {
	if c.Size <= 0 {
		return DefaultSize
	}
	return c.Size
}

func (c *Cache[K, V]) remove(e *elem[K, V]) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *Cache[K, V]) insert(e *elem[K, V]) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
