// SPDX-License-Identifier: Unlicense OR MIT

package idmap

import (
	"fmt"
	"testing"
)

type info struct {
	x, y  int
	hover bool
}

func TestHash(t *testing.T) {
	if Hash("") != 0 {
		t.Error("empty label must hash to 0")
	}
	if Hash("button") == 0 {
		t.Error("non-empty label hashed to 0")
	}
	if Hash("a") == Hash("b") {
		t.Error("distinct labels collided")
	}
	if Hash("panel") != Hash("panel") {
		t.Error("Hash is not deterministic")
	}
}

func TestRoundTrip(t *testing.T) {
	m := New[info](16)
	k := Hash("k")
	want := info{x: 3, y: 4, hover: true}
	m.Insert(k, want)
	if _, ok := m.Front(k); ok {
		t.Fatal("value visible in front before Swap")
	}
	if got, ok := m.Back(k); !ok || got != want {
		t.Fatalf("Back(k) = %v, %v", got, ok)
	}
	m.Swap()
	if got, ok := m.Front(k); !ok || got != want {
		t.Fatalf("Front(k) after Swap = %v, %v", got, ok)
	}
	if _, ok := m.Back(k); ok {
		t.Error("back buffer not cleared by Swap")
	}
	m.Swap()
	if _, ok := m.Front(k); ok {
		t.Error("value survived two swaps without reinsertion")
	}
}

func TestOverwrite(t *testing.T) {
	m := New[info](8)
	k := Hash("dup")
	m.Insert(k, info{x: 1})
	m.Insert(k, info{x: 2})
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	if got, _ := m.Back(k); got.x != 2 {
		t.Errorf("x = %d, want 2", got.x)
	}
}

func TestZeroKey(t *testing.T) {
	m := New[info](8)
	m.Insert(0, info{x: 1})
	if m.Len() != 0 {
		t.Error("zero key was stored")
	}
	if _, ok := m.Back(0); ok {
		t.Error("zero key found")
	}
}

func TestCollisionChain(t *testing.T) {
	m := New[info](8)
	// Keys congruent modulo the capacity share a primary slot.
	keys := []Key{8, 16, 24, 32}
	for i, k := range keys {
		m.back.insert(k, info{x: i})
	}
	for i, k := range keys {
		if got, ok := m.Back(k); !ok || got.x != i {
			t.Errorf("key %d = %v, %v", k, got, ok)
		}
	}
	if m.back.used != len(keys)-1 {
		t.Errorf("overflow slots used = %d", m.back.used)
	}
}

func TestOverflowExhaustion(t *testing.T) {
	tb := newTable[info](8)
	// Primary slot plus 4 overflow slots.
	for i := 1; i <= 5; i++ {
		if !tb.insert(Key(i*8), info{}) {
			t.Fatalf("insert %d failed early", i)
		}
	}
	if tb.insert(Key(48), info{}) {
		t.Error("insert succeeded with exhausted overflow")
	}
}

func TestGrowPreservesBothBuffers(t *testing.T) {
	m := New[info](8)
	for i := 0; i < 5; i++ {
		m.Insert(Hash(fmt.Sprint("old", i)), info{x: i})
	}
	m.Swap()
	for i := 0; i < 100; i++ {
		m.Insert(Hash(fmt.Sprint("new", i)), info{x: i})
	}
	if m.Cap() <= 8 {
		t.Fatalf("map did not grow: cap %d", m.Cap())
	}
	for i := 0; i < 5; i++ {
		if got, ok := m.Front(Hash(fmt.Sprint("old", i))); !ok || got.x != i {
			t.Errorf("front value %d lost by growth: %v, %v", i, got, ok)
		}
	}
	for i := 0; i < 100; i++ {
		if got, ok := m.Back(Hash(fmt.Sprint("new", i))); !ok || got.x != i {
			t.Errorf("back value %d = %v, %v", i, got, ok)
		}
	}
	if m.Len()*100 > m.Cap()*maxLoad {
		t.Errorf("load %d/%d above threshold", m.Len(), m.Cap())
	}
}

func TestFrontRef(t *testing.T) {
	m := New[info](8)
	k := Hash("ref")
	m.Insert(k, info{x: 1})
	m.Swap()
	p := m.FrontRef(k)
	if p == nil {
		t.Fatal("FrontRef returned nil")
	}
	p.hover = true
	if got, _ := m.Front(k); !got.hover {
		t.Error("mutation through FrontRef not visible")
	}
	if m.FrontRef(Hash("missing")) != nil {
		t.Error("FrontRef found a missing key")
	}
}
