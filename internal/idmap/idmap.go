// SPDX-License-Identifier: Unlicense OR MIT

// Package idmap implements a double-buffered hash map from identity keys
// to per-frame values.
//
// Values for the frame being built are inserted into the back buffer
// while the front buffer holds the values of the previous frame. Swap
// promotes the back buffer to the front and starts a new, empty back
// buffer.
//
// Each buffer is an open-addressing table with a primary region indexed
// by key modulo capacity and an overflow region of chained slots, so an
// insert never probes beyond its chain.
package idmap

// Key identifies a value across frames. The zero Key means no identity.
type Key uint64

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211

	// maxLoad is the back buffer load, in percent, above which both
	// buffers grow.
	maxLoad = 70
)

// Hash returns the FNV-1a hash of label. The empty label hashes to the
// zero Key; no other label does.
func Hash(label string) Key {
	if label == "" {
		return 0
	}
	h := uint64(offset64)
	for i := 0; i < len(label); i++ {
		h ^= uint64(label[i])
		h *= prime64
	}
	if h == 0 {
		h = 1
	}
	return Key(h)
}

// Map is a double-buffered map from Keys to values of type V.
type Map[V any] struct {
	front, back *table[V]
}

type table[V any] struct {
	primary  []slot[V]
	overflow []slot[V]
	// used counts the allocated overflow slots.
	used  int
	count int
}

type slot[V any] struct {
	key Key
	// next is 1 + the overflow index of the next slot in the chain,
	// or 0 at the end of the chain.
	next int32
	val  V
}

// New returns a Map with room for capacity keys per buffer before it
// grows.
func New[V any](capacity int) *Map[V] {
	if capacity < 8 {
		capacity = 8
	}
	return &Map[V]{
		front: newTable[V](capacity),
		back:  newTable[V](capacity),
	}
}

func newTable[V any](capacity int) *table[V] {
	return &table[V]{
		primary:  make([]slot[V], capacity),
		overflow: make([]slot[V], capacity/2),
	}
}

// Insert sets the back buffer value for k, replacing any previous value.
// Inserting the zero Key does nothing.
func (m *Map[V]) Insert(k Key, v V) {
	if k == 0 {
		return
	}
	if (m.back.count+1)*100 > len(m.back.primary)*maxLoad {
		m.grow()
	}
	for !m.back.insert(k, v) {
		m.grow()
	}
}

// Front returns the value for k in the front buffer.
func (m *Map[V]) Front(k Key) (V, bool) {
	return m.front.lookup(k)
}

// Back returns the value for k in the back buffer.
func (m *Map[V]) Back(k Key) (V, bool) {
	return m.back.lookup(k)
}

// FrontRef returns a pointer to the front buffer value for k, or nil.
// The pointer is valid until the next Swap or Insert.
func (m *Map[V]) FrontRef(k Key) *V {
	if s := m.front.find(k); s != nil {
		return &s.val
	}
	return nil
}

// BackRef is like FrontRef for the back buffer.
func (m *Map[V]) BackRef(k Key) *V {
	if s := m.back.find(k); s != nil {
		return &s.val
	}
	return nil
}

// Swap makes the back buffer the front buffer and clears the new back
// buffer.
func (m *Map[V]) Swap() {
	m.front, m.back = m.back, m.front
	m.back.clear()
}

// Len returns the number of keys in the back buffer.
func (m *Map[V]) Len() int {
	return m.back.count
}

// FrontLen returns the number of keys in the front buffer.
func (m *Map[V]) FrontLen() int {
	return m.front.count
}

// Cap returns the primary capacity of each buffer.
func (m *Map[V]) Cap() int {
	return len(m.back.primary)
}

// grow doubles both buffers, rehashing their contents.
func (m *Map[V]) grow() {
	n := len(m.back.primary) * 2
	m.front = m.front.rehash(n)
	m.back = m.back.rehash(n)
}

func (t *table[V]) find(k Key) *slot[V] {
	if k == 0 {
		return nil
	}
	s := &t.primary[uint64(k)%uint64(len(t.primary))]
	for {
		if s.key == k {
			return s
		}
		if s.next == 0 {
			return nil
		}
		s = &t.overflow[s.next-1]
	}
}

func (t *table[V]) lookup(k Key) (V, bool) {
	if s := t.find(k); s != nil {
		return s.val, true
	}
	var zero V
	return zero, false
}

// insert reports false when the overflow region is exhausted.
func (t *table[V]) insert(k Key, v V) bool {
	s := &t.primary[uint64(k)%uint64(len(t.primary))]
	if s.key == 0 {
		s.key = k
		s.val = v
		t.count++
		return true
	}
	for {
		if s.key == k {
			s.val = v
			return true
		}
		if s.next == 0 {
			break
		}
		s = &t.overflow[s.next-1]
	}
	if t.used == len(t.overflow) {
		return false
	}
	o := &t.overflow[t.used]
	t.used++
	*o = slot[V]{key: k, val: v}
	s.next = int32(t.used)
	t.count++
	return true
}

func (t *table[V]) clear() {
	clear(t.primary)
	clear(t.overflow[:t.used])
	t.used = 0
	t.count = 0
}

func (t *table[V]) rehash(capacity int) *table[V] {
	for {
		nt := newTable[V](capacity)
		if t.copyInto(nt) {
			return nt
		}
		capacity *= 2
	}
}

func (t *table[V]) copyInto(nt *table[V]) bool {
	for i := range t.primary {
		if s := &t.primary[i]; s.key != 0 && !nt.insert(s.key, s.val) {
			return false
		}
	}
	for i := 0; i < t.used; i++ {
		if s := &t.overflow[i]; !nt.insert(s.key, s.val) {
			return false
		}
	}
	return true
}
