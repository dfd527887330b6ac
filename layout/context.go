// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements an immediate mode box layout engine.

Every frame, the program declares a tree of boxes between BeginRoot and
EndRoot, then calls Draw. Draw sizes and positions the boxes, emits
their drawing through the Backend and records the geometry and hover
state of every box with an id. The recorded Info is available during the
next frame, so a program reacts to the previous frame's layout while
declaring the current one:

	for {
		ctx.BeginRoot(layout.Style{Width: unit.Px(800), Height: unit.Px(600)})
		bg := gray
		if ctx.Info("button").DirectHover {
			bg = blue
		}
		ctx.BeginBox(layout.Style{Width: unit.Available(100), Background: bg}, "button")
		ctx.InsertText(text.Style{Size: 16}, "OK")
		ctx.EndBox()
		ctx.EndRoot()
		ctx.Draw()
	}

Builder errors are sticky: after a failed call, every call up to the next
BeginRoot returns the same error and does nothing.
*/
package layout

import (
	"fmt"
	"image"
	"log/slog"

	"boxui.org/internal/arena"
	"boxui.org/internal/idmap"
	"boxui.org/io/input"
	"boxui.org/op"
	"boxui.org/text"
	"boxui.org/unit"
)

// Context builds, lays out and draws frames. A Context must not be used
// concurrently.
type Context struct {
	backend  op.Backend
	measurer text.Measurer
	input    input.Source
	logger   *slog.Logger
	metric   unit.Metric
	validate bool

	nodes   *arena.Arena[box]
	results *arena.Arena[result]
	infos   *idmap.Map[Info]

	state frameState
	err   *Error
	root  arena.Index
	// stack holds the open boxes, root first.
	stack []arena.Index
	// resultRoot is the root of the result tree of the last Draw.
	resultRoot arena.Index
	// growers is scratch space for the resolve pass.
	growers []grower
	// detached is the queue of detached results awaiting drawing.
	detached []detachedResult
	// hover is the last box with an id containing the mouse.
	hover idmap.Key
	frame int
	// drawn reports whether the last frame reached Draw. The identity
	// buffers of a frame that did not are never promoted.
	drawn bool
}

// Key is a hashed box id.
type Key = idmap.Key

// Hash returns the Key of a box id. The empty id has the zero Key.
func Hash(id string) Key {
	return idmap.Hash(id)
}

// Info is the state of a box with an id as of its last drawing.
type Info struct {
	// Rect is the box in screen coordinates, before clipping.
	Rect image.Rectangle
	// Content is the size of the content of the box, including
	// padding. A scrolling box can scroll by Content minus Rect size.
	Content image.Point
	// Hover reports whether the mouse is over the visible part of the
	// box.
	Hover bool
	// DirectHover reports whether the box is the topmost box with an
	// id under the mouse. At most one box has DirectHover set.
	DirectHover bool
	// Rendered reports whether any part of the box was visible.
	Rendered bool
	State    State
}

// State is the part of Info preserved across frames. The engine never
// changes it; widgets update it through SetState.
type State struct {
	// Hover and Press are animation ramps in the range [0, 1].
	Hover, Press float32
	Drag         image.Point
	Scroll       image.Point
	Dragging     bool
	Custom       bool
}

// Stats describes the last frame.
type Stats struct {
	Frame   int
	Nodes   int
	Results int
	// Identities is the number of boxes with an id drawn.
	Identities int
	// Capacity is the size of each identity map buffer.
	Capacity int
}

type frameState uint8

const (
	noRoot frameState = iota
	rootOpen
	closed
)

// NewContext returns a Context configured by opts.
func NewContext(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		backend:  o.backend,
		measurer: o.measurer,
		input:    o.input,
		logger:   o.logger,
		metric:   o.metric,
		validate: o.validate,
		nodes:    arena.New[box](o.nodes),
		results:  arena.New[result](o.nodes),
		infos:    idmap.New[Info](o.identities),
	}
}

// BeginRoot starts a frame with a root box styled by s. It clears a
// latched error, abandoning the frame in progress. The Info of the last
// drawn frame stays readable through frames that fail to draw.
func (c *Context) BeginRoot(s Style) error {
	if c.err == nil && c.state == rootOpen {
		return c.fail(ErrRootNode, "BeginRoot called twice without EndRoot")
	}
	c.err = nil
	if c.drawn {
		c.infos.Swap()
	}
	c.drawn = false
	c.nodes.Reset()
	c.results.Reset()
	c.stack = c.stack[:0]
	c.resultRoot = arena.Nil
	c.frame++
	c.state = rootOpen
	idx, b := c.nodes.Alloc()
	c.root = idx
	if err := c.computeStyle(&s, b, true); err != nil {
		return err
	}
	c.stack = append(c.stack, idx)
	return nil
}

// EndRoot closes the root box. Every other box must be closed.
func (c *Context) EndRoot() error {
	if c.err != nil {
		return c.err
	}
	switch {
	case len(c.stack) == 0:
		return c.fail(ErrRootNode, "EndRoot without an open root")
	case len(c.stack) > 1:
		return c.fail(ErrMissingEnd, "EndRoot with %d boxes open", len(c.stack)-1)
	}
	if err := c.checkLeaf(c.root); err != nil {
		return err
	}
	c.stack = c.stack[:0]
	c.state = closed
	return nil
}

// BeginBox opens a box styled by s as the last child of the innermost
// open box. A non-empty id gives the box an identity for Info.
func (c *Context) BeginBox(s Style, id string) error {
	if c.err != nil {
		return c.err
	}
	if len(c.stack) == 0 {
		return c.fail(ErrRootNode, "BeginBox without an open root")
	}
	idx, b := c.appendChild()
	b.key = idmap.Hash(id)
	if err := c.computeStyle(&s, b, false); err != nil {
		return err
	}
	c.stack = append(c.stack, idx)
	return nil
}

// EndBox closes the innermost open box.
func (c *Context) EndBox() error {
	if c.err != nil {
		return c.err
	}
	switch len(c.stack) {
	case 0:
		return c.fail(ErrRootNode, "EndBox without an open root")
	case 1:
		return c.fail(ErrMissingBegin, "EndBox without BeginBox")
	}
	idx := c.stack[len(c.stack)-1]
	if err := c.checkLeaf(idx); err != nil {
		return err
	}
	if err := c.checkParent(idx); err != nil {
		return err
	}
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// InsertText appends str in style s to the innermost open box. Text
// inserted right after other text joins it in a single block.
func (c *Context) InsertText(s text.Style, str string) error {
	if c.err != nil {
		return c.err
	}
	if len(c.stack) == 0 {
		return c.fail(ErrTextNode, "InsertText without an open box")
	}
	c.appendSpan(s, []rune(normalize(str)))
	return nil
}

// Info returns the state of the box with the given id as of the last
// drawn frame.
func (c *Context) Info(id string) Info {
	return c.InfoKey(idmap.Hash(id))
}

// InfoKey is like Info for a hashed id.
func (c *Context) InfoKey(k Key) Info {
	if c.drawn {
		info, _ := c.infos.Back(k)
		return info
	}
	info, _ := c.infos.Front(k)
	return info
}

// SetState replaces the State of the box with the given id. The new
// state is carried into the next drawing of the box. SetState reports
// whether the box was drawn in the last drawn frame.
func (c *Context) SetState(id string, s State) bool {
	k := idmap.Hash(id)
	info := c.infos.FrontRef(k)
	if c.drawn {
		info = c.infos.BackRef(k)
	}
	if info == nil {
		return false
	}
	info.State = s
	return true
}

// Input returns the input source of the Context.
func (c *Context) Input() input.Source {
	return c.input
}

// Stats returns statistics about the last frame.
func (c *Context) Stats() Stats {
	return Stats{
		Frame:      c.frame,
		Nodes:      c.nodes.Len(),
		Results:    c.results.Len(),
		Identities: c.infos.Len(),
		Capacity:   c.infos.Cap(),
	}
}

func (c *Context) node(idx arena.Index) *box {
	return c.nodes.Get(idx)
}

// appendChild allocates a box as the last child of the top of the
// stack.
func (c *Context) appendChild() (arena.Index, *box) {
	pidx := c.stack[len(c.stack)-1]
	idx, b := c.nodes.Alloc()
	p := c.node(pidx)
	b.parent = pidx
	if p.last == arena.Nil {
		p.first = idx
	} else {
		c.node(p.last).next = idx
	}
	p.last = idx
	p.children++
	return idx, b
}

// appendSpan adds a span to the text child at the end of the top of
// the stack, creating the child if needed.
func (c *Context) appendSpan(s text.Style, runes []rune) {
	p := c.node(c.stack[len(c.stack)-1])
	var t *box
	if p.last != arena.Nil && c.node(p.last).kind == kindText {
		t = c.node(p.last)
	} else {
		_, t = c.appendChild()
		t.kind = kindText
		for a := range t.axes {
			e := &t.axes[a]
			e.unit, e.pct = unit.UnitContent, 100
			e.maxPx = unbounded
		}
		t.span = image.Pt(1, 1)
	}
	t.spans = append(t.spans, text.Span{Style: s, Text: runes})
}

// checkLeaf reports a content relative size on a box without children.
func (c *Context) checkLeaf(idx arena.Index) error {
	b := c.node(idx)
	if !c.validate || b.children > 0 {
		return nil
	}
	for a := Horizontal; a <= Vertical; a++ {
		if b.axes[a].unit == unit.UnitContent {
			return c.fail(ErrLeafNode, "%v %v on a box without children", a.size(), c.unitOf(b, a))
		}
	}
	return nil
}

// checkParent reports a parent relative size in a parent sized by its
// content.
func (c *Context) checkParent(idx arena.Index) error {
	b := c.node(idx)
	if !c.validate || b.detached() {
		return nil
	}
	p := c.node(b.parent)
	for a := Horizontal; a <= Vertical; a++ {
		switch b.axes[a].unit {
		case unit.UnitParent, unit.UnitAvailable:
			if p.axes[a].unit == unit.UnitContent {
				return c.fail(ErrNode, "%v %v in a parent sized by its content", a.size(), c.unitOf(b, a))
			}
		}
	}
	return nil
}

func (c *Context) unitOf(b *box, a Axis) unit.Value {
	e := &b.axes[a]
	return unit.Value{V: e.pct, U: e.unit}
}

// fail latches an error.
func (c *Context) fail(kind ErrorKind, format string, args ...interface{}) error {
	c.err = &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	c.logger.Warn("layout error", "kind", kind.String(), "msg", c.err.Msg, "frame", c.frame)
	return c.err
}

// invalid is like fail for contradictions that are only checked with
// validation enabled. It returns nil without validation.
func (c *Context) invalid(kind ErrorKind, format string, args ...interface{}) error {
	if !c.validate {
		return nil
	}
	return c.fail(kind, format, args...)
}
