// SPDX-License-Identifier: Unlicense OR MIT

package arena

import "testing"

type item struct {
	v    int
	next Index
}

func TestAllocGet(t *testing.T) {
	a := New[item](0)
	var idxs []Index
	for i := 0; i < 3*chunkSize; i++ {
		idx, p := a.Alloc()
		p.v = i
		idxs = append(idxs, idx)
	}
	if got := a.Len(); got != 3*chunkSize {
		t.Fatalf("Len() = %d", got)
	}
	for i, idx := range idxs {
		if idx == Nil {
			t.Fatal("Alloc returned the nil index")
		}
		if got := a.Get(idx).v; got != i {
			t.Errorf("item %d = %d", i, got)
		}
	}
}

func TestPointerStability(t *testing.T) {
	a := New[item](0)
	_, first := a.Alloc()
	first.v = 42
	for i := 0; i < 4*chunkSize; i++ {
		a.Alloc()
	}
	if first.v != 42 {
		t.Errorf("pointer moved after growth: %d", first.v)
	}
}

func TestRewind(t *testing.T) {
	a := New[item](0)
	keep, _ := a.Alloc()
	m := a.Mark()
	for i := 0; i < 10; i++ {
		_, p := a.Alloc()
		p.v = 7
	}
	a.Rewind(m)
	if got := a.Len(); got != 1 {
		t.Fatalf("Len() after rewind = %d, want 1", got)
	}
	idx, p := a.Alloc()
	if idx != keep+1 {
		t.Errorf("rewound allocation at %d, want %d", idx, keep+1)
	}
	if p.v != 0 {
		t.Errorf("reused item not zeroed: %d", p.v)
	}
}

func TestReset(t *testing.T) {
	a := New[item](0)
	for i := 0; i < 5; i++ {
		a.Alloc()
	}
	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Len() after Reset = %d", a.Len())
	}
	if idx, _ := a.Alloc(); idx != 1 {
		t.Errorf("first index after Reset = %d", idx)
	}
}

func TestExhaustion(t *testing.T) {
	a := New[item](2)
	a.Alloc()
	a.Alloc()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on exhaustion")
		}
	}()
	a.Alloc()
}

func TestStaleMark(t *testing.T) {
	a := New[item](0)
	a.Alloc()
	a.Alloc()
	m := a.Mark()
	a.Reset()
	defer func() {
		if recover() == nil {
			t.Error("expected panic rewinding to a stale mark")
		}
	}()
	a.Rewind(m)
}

func TestGetNil(t *testing.T) {
	a := New[item](0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic dereferencing Nil")
		}
	}()
	a.Get(Nil)
}
