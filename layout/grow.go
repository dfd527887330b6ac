// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"boxui.org/internal/arena"
	"boxui.org/unit"
)

// grower is a box sized by the space left over by its siblings.
type grower struct {
	e      *extent
	weight float32
	size   int
	frozen bool
}

// resolve is the resolve pass for axis a. It sizes the children of the
// box at idx from its final size, then recurses.
func (c *Context) resolve(idx arena.Index, a Axis) {
	b := c.node(idx)
	if b.first == arena.Nil {
		return
	}
	inner := b.axes[a].inner()
	switch {
	case b.grid:
		cell := c.gridCell(b, a)
		for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
			cb := c.node(ch)
			if cb.detached() {
				c.resolveChild(cb, a, inner)
				continue
			}
			span := axisMain(a, cb.span)
			c.resolveChild(cb, a, cell*span+b.gap*(span-1))
		}
	case b.flow == a:
		c.resolveFlow(b, a, inner)
	default:
		for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
			c.resolveChild(c.node(ch), a, inner)
		}
	}
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		c.resolve(ch, a)
	}
}

// resolveChild sizes b along a within space pixels that it does not
// share with siblings.
func (c *Context) resolveChild(b *box, a Axis, space int) {
	e := &b.axes[a]
	e.bounds(space)
	switch e.unit {
	case unit.UnitParent:
		e.size = e.clamp(unit.Value{V: e.pct, U: unit.UnitParent}.Of(space))
	case unit.UnitAvailable:
		free := space - e.margin[0] - e.margin[1]
		if free < 0 {
			free = 0
		}
		e.size = e.clamp(unit.Value{V: e.pct, U: unit.UnitAvailable}.Of(free))
	default:
		if b.kind == kindText && a == Horizontal {
			e.size = textWidth(e, space)
		}
		e.size = e.clamp(e.size)
	}
}

// textWidth returns the width of a text box given space pixels: the
// unwrapped width if it fits, the space otherwise, so that the text
// wraps.
func textWidth(e *extent, space int) int {
	if space < 0 {
		space = 0
	}
	if e.content < space {
		return e.content
	}
	return space
}

// resolveFlow sizes the children of b along its flow axis a. Fixed
// children keep their size, text takes what is left of the fixed
// children and the growers' minimums, and growers share the rest.
func (c *Context) resolveFlow(b *box, a Axis, inner int) {
	growers := c.growers[:0]
	used, n := 0, 0
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		cb := c.node(ch)
		if cb.detached() {
			c.resolveChild(cb, a, inner)
			continue
		}
		n++
		e := &cb.axes[a]
		switch {
		case e.unit == unit.UnitAvailable:
			e.bounds(inner)
			weight := e.pct
			if weight < 0 {
				weight = 0
			}
			growers = append(growers, grower{e: e, weight: weight})
			used += e.margin[0] + e.margin[1]
		case cb.kind == kindText && a == Horizontal:
			// Sized below.
		default:
			c.resolveChild(cb, a, inner)
			used += e.outer()
		}
	}
	if n > 1 {
		used += b.gap * (n - 1)
	}
	if a == Horizontal {
		// Text wraps before squeezing growers below their minimums.
		reserve := 0
		for _, g := range growers {
			reserve += g.e.min
		}
		for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
			cb := c.node(ch)
			if cb.kind != kindText || cb.detached() {
				continue
			}
			e := &cb.axes[a]
			e.bounds(inner)
			e.size = e.clamp(textWidth(e, inner-used-reserve))
			used += e.outer()
		}
	}
	if len(growers) > 0 {
		distribute(growers, inner-used)
		for _, g := range growers {
			g.e.size = g.size
		}
	}
	c.growers = growers[:0]
}

// distribute shares free pixels among growers in proportion to their
// weights, respecting their minimums and maximums.
//
// It follows the resolution of flexible lengths of CSS flexbox: the
// unclamped shares are computed, and if clamping them changes their
// sum, the growers clamped in the direction of the change are frozen
// at their bound and the remaining space is shared again among the
// others. Shares are rounded cumulatively so that the sizes of the
// unfrozen growers add up to exactly the space they share. Weights are
// relative to their total; a zero total shares the space evenly.
func distribute(gs []grower, free int) {
	for {
		remaining := free
		var total float64
		active := 0
		for i := range gs {
			g := &gs[i]
			if g.frozen {
				remaining -= g.size
				continue
			}
			total += float64(g.weight)
			active++
		}
		if active == 0 {
			return
		}
		var acc float64
		prev, k := 0, 0
		for i := range gs {
			g := &gs[i]
			if g.frozen {
				continue
			}
			k++
			if k == active {
				g.size = remaining - prev
				break
			}
			if total > 0 {
				acc += float64(remaining) * float64(g.weight) / total
			} else {
				acc += float64(remaining) / float64(active)
			}
			r := int(math.Round(acc))
			g.size = r - prev
			prev = r
		}
		violation := 0
		for i := range gs {
			g := &gs[i]
			if !g.frozen {
				violation += g.e.clamp(g.size) - g.size
			}
		}
		if violation == 0 {
			for i := range gs {
				gs[i].size = gs[i].e.clamp(gs[i].size)
			}
			return
		}
		for i := range gs {
			g := &gs[i]
			if g.frozen {
				continue
			}
			clamped := g.e.clamp(g.size)
			if (violation > 0 && clamped > g.size) || (violation < 0 && clamped < g.size) {
				g.size = clamped
				g.frozen = true
			}
		}
	}
}
