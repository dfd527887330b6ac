// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"boxui.org/internal/arena"
	"boxui.org/text"
	"boxui.org/unit"
)

// solve lays out the frame tree in five ordered passes. Every pass
// reads the output of the previous ones, and solve resets the outputs
// first so that solving twice gives the same geometry.
func (c *Context) solve() {
	c.reset(c.root)
	c.place(c.root)
	c.measure(c.root, Horizontal)
	c.resolveRoot(Horizontal)
	c.resolve(c.root, Horizontal)
	c.measure(c.root, Vertical)
	c.resolveRoot(Vertical)
	c.resolve(c.root, Vertical)
	c.position(c.root)
	r := c.node(c.root)
	h, v := &r.axes[Horizontal], &r.axes[Vertical]
	r.pos = image.Pt(h.margin[0]+h.offset, v.margin[0]+v.offset)
}

// reset restores the solver outputs of the subtree at idx to their
// styled values.
func (c *Context) reset(idx arena.Index) {
	b := c.node(idx)
	for a := range b.axes {
		e := &b.axes[a]
		e.size = e.px
		e.content = 0
		e.min, e.max = e.minPx, e.maxPx
		if e.minUnit == unit.UnitParent {
			e.min = 0
		}
		if e.maxUnit == unit.UnitParent {
			e.max = unbounded
		}
	}
	b.pos = image.Point{}
	b.lines = text.Layout{}
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		c.reset(ch)
	}
}

// measure is the content pass for axis a. It computes the content size
// of every box bottom up and resolves content relative sizes from it.
// For the vertical axis it also flows text at the final width.
func (c *Context) measure(idx arena.Index, a Axis) {
	b := c.node(idx)
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		c.measure(ch, a)
	}
	e := &b.axes[a]
	pads := e.pad[0] + e.pad[1]
	switch {
	case b.kind == kindText && a == Horizontal:
		e.content = text.Measure(c.measurer, b.spans) + pads
	case b.kind == kindText:
		b.lines = text.Flow(c.measurer, b.spans, b.axes[Horizontal].inner())
		e.content = b.lines.Height + pads
	case b.grid:
		e.content = c.gridContent(b, a) + pads
	default:
		e.content = c.flowContent(b, a) + pads
	}
	switch e.unit {
	case unit.UnitContent:
		e.size = e.clamp(unit.Value{V: e.pct, U: unit.UnitContent}.Of(e.content))
	case unit.UnitWidth:
		if a == Vertical {
			e.size = e.clamp(unit.Value{V: e.pct, U: unit.UnitWidth}.Of(b.axes[Horizontal].size))
		}
	}
}

// flowContent returns the size of the children of b along a, not
// counting padding.
func (c *Context) flowContent(b *box, a Axis) int {
	sum, max, n := 0, 0, 0
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		cb := c.node(ch)
		if cb.detached() {
			continue
		}
		s := c.contentContribution(cb, a)
		sum += s
		if s > max {
			max = s
		}
		n++
	}
	if b.flow != a {
		return max
	}
	if n > 1 {
		sum += b.gap * (n - 1)
	}
	return sum
}

// contentContribution is the size of a child along a as seen by the
// content pass of its parent. Children sized by their parent cannot
// contribute their final size yet and use their minimum instead.
func (c *Context) contentContribution(b *box, a Axis) int {
	e := &b.axes[a]
	m := e.margin[0] + e.margin[1]
	switch e.unit {
	case unit.UnitParent, unit.UnitAvailable:
		return e.minPx + m
	}
	return e.size + m
}

// gridContent returns the size of a grid's children along a: the
// largest child per cell times the number of cells, plus gaps.
func (c *Context) gridContent(b *box, a Axis) int {
	count := c.gridCount(b, a)
	cell := 0
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		cb := c.node(ch)
		if cb.detached() {
			continue
		}
		span := axisMain(a, cb.span)
		s := c.contentContribution(cb, a) - b.gap*(span-1)
		// Round up so that the cells cover the child.
		if per := (s + span - 1) / span; per > cell {
			cell = per
		}
	}
	if count == 0 {
		return 0
	}
	return cell*count + b.gap*(count-1)
}

// resolveRoot sizes the root along a. A root can only be absolutely
// sized or sized by its content; other units resolve to zero.
func (c *Context) resolveRoot(a Axis) {
	b := c.node(c.root)
	e := &b.axes[a]
	e.bounds(0)
	switch e.unit {
	case unit.UnitParent, unit.UnitAvailable:
		e.size = e.clamp(0)
	case unit.UnitContent, unit.UnitWidth:
		// Sized by measure.
	default:
		e.size = e.clamp(e.size)
	}
}
