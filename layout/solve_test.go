// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"reflect"
	"testing"

	"boxui.org/internal/arena"
	"boxui.org/text"
	"boxui.org/unit"
)

type geometry struct {
	pos   image.Point
	axes  [2]extent
	lines text.Layout
}

func snapshot(c *Context) []geometry {
	var g []geometry
	for i := 1; i <= c.nodes.Len(); i++ {
		b := c.node(arena.Index(i))
		g = append(g, geometry{pos: b.pos, axes: b.axes, lines: b.lines})
	}
	return g
}

func TestSolveIdempotent(t *testing.T) {
	c := NewContext(WithMeasurer(text.Fixed{Advance: 7}))
	steps := []error{
		c.BeginRoot(Style{Width: unit.Px(300), Height: unit.Px(200), Padding: UniformEdges(unit.Px(4)), Gap: unit.Px(3)}),
		c.BeginBox(Style{Width: unit.Available(2), Height: unit.Content(100), MaxWidth: unit.Parent(40), Mode: Flow{Axis: Vertical}}, "left"),
		c.InsertText(text.Style{Size: 12}, "some words that wrap around"),
		c.EndBox(),
		c.BeginBox(Style{Width: unit.Available(1), Height: unit.Parent(100), Mode: Grid{Cols: 2}}, "grid"),
		c.BeginBox(Style{Width: unit.Parent(100), Height: unit.OfWidth(50)}, ""),
		c.EndBox(),
		c.BeginBox(Style{Width: unit.Px(10), Height: unit.Px(10), Detach: DetachRightCenter}, ""),
		c.EndBox(),
		c.EndBox(),
		c.EndRoot(),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	c.solve()
	first := snapshot(c)
	c.solve()
	if second := snapshot(c); !reflect.DeepEqual(first, second) {
		t.Errorf("second solve differs:\n%+v\n%+v", first, second)
	}
}

func growers(extents []extent, weights ...float32) []grower {
	gs := make([]grower, len(weights))
	for i, w := range weights {
		gs[i] = grower{e: &extents[i], weight: w}
	}
	return gs
}

func unboundedExtents(n int) []extent {
	es := make([]extent, n)
	for i := range es {
		es[i].max = unbounded
	}
	return es
}

func sizes(gs []grower) []int {
	s := make([]int, len(gs))
	for i, g := range gs {
		s[i] = g.size
	}
	return s
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		free    int
		weights []float32
		min     []int
		max     []int
		want    []int
	}{
		{name: "even", free: 100, weights: []float32{1, 1, 1}, want: []int{33, 34, 33}},
		{name: "weighted", free: 90, weights: []float32{1, 2}, want: []int{30, 60}},
		{name: "zero weights", free: 10, weights: []float32{0, 0}, want: []int{5, 5}},
		{name: "max", free: 600, weights: []float32{1, 1, 1}, max: []int{unbounded, 100, unbounded}, want: []int{250, 100, 250}},
		{name: "min", free: 100, weights: []float32{1, 1}, min: []int{80, 0}, want: []int{80, 20}},
		{name: "overflow", free: 100, weights: []float32{1, 1}, min: []int{80, 80}, want: []int{80, 80}},
		{name: "negative", free: -10, weights: []float32{1, 1}, want: []int{0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			es := unboundedExtents(len(tc.weights))
			for i := range es {
				if tc.min != nil {
					es[i].min = tc.min[i]
				}
				if tc.max != nil {
					es[i].max = tc.max[i]
				}
			}
			gs := growers(es, tc.weights...)
			distribute(gs, tc.free)
			if got := sizes(gs); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// Without bounds, the shares always add up to the free space.
func TestDistributeConserves(t *testing.T) {
	for free := 0; free < 200; free += 7 {
		for n := 1; n <= 6; n++ {
			weights := make([]float32, n)
			for i := range weights {
				weights[i] = float32(i%3 + 1)
			}
			gs := growers(unboundedExtents(n), weights...)
			distribute(gs, free)
			sum := 0
			for _, s := range sizes(gs) {
				sum += s
			}
			if sum != free {
				t.Fatalf("free %d, %d growers: sum %d", free, n, sum)
			}
		}
	}
}

func TestPlaceGrid(t *testing.T) {
	c := NewContext()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(c.BeginRoot(Style{Width: unit.Px(100), Height: unit.Px(100), Mode: Grid{Cols: 2}}))
	for _, span := range []image.Point{{1, 2}, {1, 1}, {3, 1}, {1, 1}} {
		must(c.BeginBox(Style{Span: span}, ""))
		must(c.EndBox())
	}
	must(c.EndRoot())
	c.place(c.root)
	var cells, spans []image.Point
	for ch := c.node(c.root).first; ch != arena.Nil; ch = c.node(ch).next {
		cells = append(cells, c.node(ch).cell)
		spans = append(spans, c.node(ch).span)
	}
	wantCells := []image.Point{{0, 0}, {1, 0}, {0, 2}, {1, 1}}
	if !reflect.DeepEqual(cells, wantCells) {
		t.Errorf("cells = %v, want %v", cells, wantCells)
	}
	if spans[2] != image.Pt(2, 1) {
		t.Errorf("wide span not capped: %v", spans[2])
	}
	if n := c.gridCount(c.node(c.root), Vertical); n != 3 {
		t.Errorf("rows = %d, want 3", n)
	}
}
