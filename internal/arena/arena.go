// SPDX-License-Identifier: Unlicense OR MIT

// Package arena implements a bump allocator of typed items addressed by
// dense integer handles.
//
// Items are never freed one by one. A Mark records the allocation cursor
// and Rewind truncates back to it, releasing everything allocated since
// in O(1). Storage is chunked so pointers returned by Alloc and Get stay
// valid until the item is rewound.
package arena

import "fmt"

// Index is a handle to an allocated item. The zero Index is nil.
type Index int32

// Nil is the handle that never refers to an item.
const Nil Index = 0

// Mark is a saved allocation cursor.
type Mark int32

const (
	chunkBits = 8
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
)

// Arena allocates items of type T.
type Arena[T any] struct {
	chunks [][]T
	// n is the number of allocated slots, including the reserved nil
	// slot 0.
	n int
	// limit is the maximum number of items, or 0 for no limit.
	limit int
}

// New returns an arena holding at most capacity items. A zero capacity
// means the arena grows without bound.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{limit: capacity}
	a.Reset()
	return a
}

// Alloc returns a handle to a zeroed item and a pointer to it. It
// panics if the arena is exhausted.
func (a *Arena[T]) Alloc() (Index, *T) {
	if a.limit > 0 && a.n > a.limit {
		panic(fmt.Errorf("arena: exhausted at %d items", a.limit))
	}
	c := a.n >> chunkBits
	if c == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, chunkSize))
	}
	idx := Index(a.n)
	a.n++
	p := &a.chunks[c][int(idx)&chunkMask]
	var zero T
	*p = zero
	return idx, p
}

// Get returns a pointer to the item at idx.
func (a *Arena[T]) Get(idx Index) *T {
	if idx <= Nil || int(idx) >= a.n {
		panic(fmt.Errorf("arena: invalid index %d (len %d)", idx, a.n-1))
	}
	return &a.chunks[idx>>chunkBits][int(idx)&chunkMask]
}

// Len returns the number of live items.
func (a *Arena[T]) Len() int {
	return a.n - 1
}

// Mark returns the current allocation cursor.
func (a *Arena[T]) Mark() Mark {
	return Mark(a.n)
}

// Rewind releases every item allocated after m. Rewinding to a mark
// beyond the cursor means the mark is stale and panics.
func (a *Arena[T]) Rewind(m Mark) {
	if m < 1 || int(m) > a.n {
		panic(fmt.Errorf("arena: stale mark %d (len %d)", m, a.n-1))
	}
	a.n = int(m)
}

// Reset releases every item. The chunks are kept for reuse.
func (a *Arena[T]) Reset() {
	if len(a.chunks) == 0 {
		a.chunks = append(a.chunks, make([]T, chunkSize))
	}
	// Slot 0 is the nil handle.
	a.n = 1
}
