// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"boxui.org/internal/arena"
)

// place assigns grid cells to the children of every grid in the
// subtree at idx. Children are placed row by row into the first free
// cells that fit their span.
func (c *Context) place(idx arena.Index) {
	b := c.node(idx)
	if b.grid {
		var occupied []bool
		taken := func(x, y int) bool {
			i := y*b.cols + x
			return i < len(occupied) && occupied[i]
		}
		fits := func(x, y int, span image.Point) bool {
			for j := 0; j < span.Y; j++ {
				for i := 0; i < span.X; i++ {
					if taken(x+i, y+j) {
						return false
					}
				}
			}
			return true
		}
		for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
			cb := c.node(ch)
			if cb.detached() {
				continue
			}
			span := cb.span
			if span.X > b.cols {
				span.X = b.cols
				cb.span.X = b.cols
			}
			var cell image.Point
		search:
			for y := 0; ; y++ {
				for x := 0; x+span.X <= b.cols; x++ {
					if fits(x, y, span) {
						cell = image.Pt(x, y)
						break search
					}
				}
			}
			cb.cell = cell
			end := (cell.Y + span.Y) * b.cols
			for len(occupied) < end {
				occupied = append(occupied, false)
			}
			for j := 0; j < span.Y; j++ {
				for i := 0; i < span.X; i++ {
					occupied[(cell.Y+j)*b.cols+cell.X+i] = true
				}
			}
		}
	}
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		c.place(ch)
	}
}

// gridCount returns the number of cells of grid b along a.
func (c *Context) gridCount(b *box, a Axis) int {
	if a == Horizontal {
		return b.cols
	}
	rows := b.rows
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		cb := c.node(ch)
		if cb.detached() {
			continue
		}
		if end := cb.cell.Y + cb.span.Y; end > rows {
			rows = end
		}
	}
	return rows
}

// gridCell returns the size of a cell of grid b along a.
func (c *Context) gridCell(b *box, a Axis) int {
	n := c.gridCount(b, a)
	if n == 0 {
		return 0
	}
	cell := (b.axes[a].inner() - b.gap*(n-1)) / n
	if cell < 0 {
		return 0
	}
	return cell
}

// position is the position pass. It places the children of the box at
// idx relative to its top left corner, then recurses.
func (c *Context) position(idx arena.Index) {
	b := c.node(idx)
	if b.grid {
		c.positionGrid(b)
	} else {
		c.positionFlow(b)
	}
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		c.position(ch)
	}
}

func (c *Context) positionFlow(b *box) {
	main, cross := b.flow, b.flow.Cross()
	pm, pc := &b.axes[main], &b.axes[cross]
	used, n := 0, 0
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		if cb := c.node(ch); !cb.detached() {
			used += cb.axes[main].outer()
			n++
		}
	}
	if n > 1 {
		used += b.gap * (n - 1)
	}
	free := pm.inner() - used
	align := b.align[main]
	if free < 0 && (align == SpaceAround || align == SpaceBetween) {
		align = Start
	}
	off, i := 0, 0
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		cb := c.node(ch)
		if cb.detached() {
			// Placed at its anchor when drawn.
			cb.pos = image.Pt(cb.axes[Horizontal].offset, cb.axes[Vertical].offset)
			continue
		}
		var extra int
		switch align {
		case End:
			extra = free
		case Middle:
			extra = free / 2
		case SpaceAround:
			extra = free * (i + 1) / (n + 1)
		case SpaceBetween:
			if n > 1 {
				extra = free * i / (n - 1)
			}
		}
		em, ec := &cb.axes[main], &cb.axes[cross]
		var cextra int
		switch cfree := pc.inner() - ec.outer(); b.align[cross] {
		case End:
			cextra = cfree
		case Middle, SpaceAround:
			cextra = cfree / 2
		}
		cb.pos = axisPoint(main,
			pm.pad[0]+off+extra+em.margin[0]+em.offset,
			pc.pad[0]+cextra+ec.margin[0]+ec.offset,
		)
		off += em.outer() + b.gap
		i++
	}
}

func (c *Context) positionGrid(b *box) {
	cw, ch := c.gridCell(b, Horizontal), c.gridCell(b, Vertical)
	ex, ey := &b.axes[Horizontal], &b.axes[Vertical]
	for idx := b.first; idx != arena.Nil; idx = c.node(idx).next {
		cb := c.node(idx)
		cx, cy := &cb.axes[Horizontal], &cb.axes[Vertical]
		if cb.detached() {
			cb.pos = image.Pt(cx.offset, cy.offset)
			continue
		}
		cb.pos = image.Pt(
			ex.pad[0]+cb.cell.X*(cw+b.gap)+cx.margin[0]+cx.offset,
			ey.pad[0]+cb.cell.Y*(ch+b.gap)+cy.margin[0]+cy.offset,
		)
	}
}
