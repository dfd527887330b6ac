// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"boxui.org/internal/arena"
	"boxui.org/text"
)

// result is the part of a laid out box needed to draw it.
type result struct {
	node    arena.Index
	pos     image.Point
	size    image.Point
	content image.Point
	lines   text.Layout
	// rect is the box in screen coordinates, set when drawn.
	rect image.Rectangle

	first, next arena.Index
}

type detachedResult struct {
	idx    arena.Index
	parent image.Rectangle
}

// Node describes a drawn box.
type Node struct {
	Key  Key
	Rect image.Rectangle
	// Content is the size of the content, including padding.
	Content  image.Point
	Detached bool
	// Text is the text of a text box.
	Text string
}

// Draw lays out the frame and draws it. It must be called once per
// frame, after EndRoot.
//
// Boxes are drawn in tree order, parents before children, except that
// detached boxes are drawn after all the others so they overlay them.
// The Info of every box with an id is recorded for the next frame.
func (c *Context) Draw() error {
	if c.err != nil {
		return c.err
	}
	switch c.state {
	case rootOpen:
		return c.fail(ErrMissingEnd, "Draw before EndRoot")
	case noRoot:
		return c.fail(ErrRootNode, "Draw without a frame")
	}
	c.state = noRoot
	c.drawn = true
	c.solve()
	c.results.Reset()
	c.resultRoot = c.copyResults(c.root)

	c.hover = 0
	c.detached = c.detached[:0]
	root := c.results.Get(c.resultRoot)
	c.draw(c.resultRoot, root.pos, image.Rectangle{}, false)
	// Detached boxes escape the scissors of their ancestors.
	for i := 0; i < len(c.detached); i++ {
		d := c.detached[i]
		r := c.results.Get(d.idx)
		at := c.node(r.node).detach.Anchor(d.parent, r.size).Add(r.pos)
		c.draw(d.idx, at, image.Rectangle{}, false)
	}
	if c.hover != 0 {
		if info := c.infos.BackRef(c.hover); info != nil {
			info.DirectHover = true
		}
	}
	c.logger.Debug("frame drawn",
		"frame", c.frame,
		"nodes", c.nodes.Len(),
		"results", c.results.Len(),
		"identities", c.infos.Len(),
		"capacity", c.infos.Cap(),
	)
	return nil
}

// Walk calls f for every box of the last drawn frame, in tree order.
func (c *Context) Walk(f func(depth int, n Node)) {
	if c.resultRoot == arena.Nil {
		return
	}
	c.walk(c.resultRoot, 0, f)
}

func (c *Context) walk(idx arena.Index, depth int, f func(int, Node)) {
	r := c.results.Get(idx)
	b := c.node(r.node)
	n := Node{
		Key:      b.key,
		Rect:     r.rect,
		Content:  r.content,
		Detached: b.detached(),
	}
	for _, s := range b.spans {
		n.Text += string(s.Text)
	}
	f(depth, n)
	for ch := r.first; ch != arena.Nil; ch = c.results.Get(ch).next {
		c.walk(ch, depth+1, f)
	}
}

// copyResults copies the laid out subtree at idx into the result arena.
func (c *Context) copyResults(idx arena.Index) arena.Index {
	b := c.node(idx)
	ri, r := c.results.Alloc()
	r.node = idx
	r.pos = b.pos
	r.size = image.Pt(b.axes[Horizontal].size, b.axes[Vertical].size)
	r.content = image.Pt(b.axes[Horizontal].content, b.axes[Vertical].content)
	r.lines = b.lines
	last := arena.Nil
	for ch := b.first; ch != arena.Nil; ch = c.node(ch).next {
		ci := c.copyResults(ch)
		if last == arena.Nil {
			r.first = ci
		} else {
			c.results.Get(last).next = ci
		}
		last = ci
	}
	return ri
}

// draw draws the result at idx with its top left corner at at. If
// hasClip is set, the box is visible only within clip.
func (c *Context) draw(idx arena.Index, at image.Point, clip image.Rectangle, hasClip bool) {
	r := c.results.Get(idx)
	b := c.node(r.node)
	rect := image.Rectangle{Min: at, Max: at.Add(r.size)}
	r.rect = rect
	visible := rect
	if hasClip {
		visible = rect.Intersect(clip)
	}
	rendered := !visible.Empty()
	if rendered {
		c.emit(b, r, clip, hasClip)
	}
	if b.key != 0 {
		hover := c.input != nil && c.input.MousePosition().In(visible)
		info := Info{
			Rect:     rect,
			Content:  r.content,
			Hover:    hover,
			Rendered: rendered,
		}
		if prev, ok := c.infos.Front(b.key); ok {
			info.State = prev.State
		}
		c.insert(b.key, info)
		if hover {
			c.hover = b.key
		}
	}
	if r.first == arena.Nil {
		return
	}
	if b.scissor {
		if hasClip {
			clip = clip.Intersect(rect)
		} else {
			clip = rect
		}
		hasClip = true
		if c.backend != nil {
			c.backend.BeginScissor(clip)
		}
	}
	origin := rect.Min.Sub(b.scroll)
	for ch := r.first; ch != arena.Nil; ch = c.results.Get(ch).next {
		cr := c.results.Get(ch)
		if c.node(cr.node).detached() {
			c.detached = append(c.detached, detachedResult{idx: ch, parent: rect})
			continue
		}
		c.draw(ch, origin.Add(cr.pos), clip, hasClip)
	}
	if b.scissor && c.backend != nil {
		c.backend.EndScissor()
	}
}

// emit issues the drawing of a visible box.
func (c *Context) emit(b *box, r *result, clip image.Rectangle, hasClip bool) {
	if c.backend == nil {
		return
	}
	switch {
	case b.kind == kindText:
		for _, l := range r.lines.Lines {
			pt := r.rect.Min.Add(image.Pt(l.X, l.Y))
			lr := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(l.Width, r.lines.Rows[l.Row].Height))}
			if hasClip && lr.Intersect(clip).Empty() {
				continue
			}
			c.backend.DrawTextLine(l.Style, pt, l.Runes(b.spans))
		}
	case b.texture != nil:
		c.backend.DrawTexturedRectangle(r.rect, b.radius, b.texture)
	case b.background.A != 0 || (b.border > 0 && b.borderColor.A != 0):
		c.backend.DrawRectangle(r.rect, b.radius, b.border, b.borderColor, b.background)
	}
}

// insert records info for the next frame.
func (c *Context) insert(k Key, info Info) {
	before := c.infos.Cap()
	c.infos.Insert(k, info)
	if after := c.infos.Cap(); after != before {
		c.logger.Info("identity map grown", "from", before, "to", after)
	}
}
