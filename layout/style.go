// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"image/color"
	"math"

	"boxui.org/internal/arena"
	"boxui.org/internal/idmap"
	"boxui.org/text"
	"boxui.org/unit"
)

// Style is the declared geometry and appearance of a box.
//
// Only the size fields (Width, Height and their minimums and maximums)
// accept percent units. The zero Style is an empty 0x0 box flowing its
// children horizontally.
type Style struct {
	Width, Height       unit.Value
	MinWidth, MinHeight unit.Value
	// MaxWidth and MaxHeight bound the size. Zero means unbounded.
	MaxWidth, MaxHeight unit.Value

	Margin  Edges
	Padding Edges
	// Offset nudges the box from its laid out position without
	// affecting its siblings.
	Offset Point

	Background  color.NRGBA
	BorderColor color.NRGBA
	Radius      unit.Value
	Border      unit.Value
	// Gap separates adjacent children.
	Gap unit.Value

	// Mode is the arrangement of children, Flow or Grid. Nil means
	// Flow{}.
	Mode Mode
	// Span is the number of grid cells covered by the box when its
	// parent is a Grid. Zero means one cell.
	Span image.Point

	// Scroll offsets the children by -Scroll.
	Scroll image.Point
	// Scissor clips children to the box.
	Scissor bool
	Detach  Detach
	// Texture, if set, is drawn scaled to the box instead of the
	// background.
	Texture image.Image
}

// Edges are the four sides of a margin or padding.
type Edges struct {
	Top, Right, Bottom, Left unit.Value
}

// Point is a two dimensional unit.Value.
type Point struct {
	X, Y unit.Value
}

// Mode is Flow or Grid.
type Mode interface {
	mode()
}

// Flow lays out children one after the other along Axis.
type Flow struct {
	Axis Axis
	// AlignX and AlignY align children horizontally and vertically,
	// independent of Axis.
	AlignX, AlignY Alignment
}

// Grid lays out children in a grid of equally sized cells, row by row.
type Grid struct {
	// Rows is the number of rows. Zero means as many as needed.
	Rows int
	// Cols is the number of columns. Zero means one.
	Cols int
}

func (Flow) mode() {}
func (Grid) mode() {}

// UniformEdges returns Edges with v on every side.
func UniformEdges(v unit.Value) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// unbounded is the maximum of a box without one.
const unbounded = math.MaxInt32

type kind uint8

const (
	kindBox kind = iota
	kindText
)

// extent is the geometry of a box along one axis.
type extent struct {
	// unit is the kind of the size; pct its raw percentage, px its
	// value when known before layout.
	unit unit.Unit
	pct  float32
	px   int

	// Bounds. A bound with unit UnitParent is resolved from minPct or
	// maxPct during layout.
	minUnit, maxUnit unit.Unit
	minPct, maxPct   float32
	minPx, maxPx     int

	margin [2]int
	pad    [2]int
	offset int

	// Solver output.
	size     int
	min, max int
	content  int
}

// box is a node of the frame tree.
type box struct {
	key  idmap.Key
	kind kind

	axes [2]extent
	gap  int

	grid       bool
	flow       Axis
	align      [2]Alignment
	rows, cols int
	span       image.Point
	// cell is the grid position of the box in its parent.
	cell image.Point

	scroll  image.Point
	scissor bool
	detach  Detach

	background  color.NRGBA
	borderColor color.NRGBA
	radius      int
	border      int
	texture     image.Image

	spans []text.Span
	lines text.Layout

	// pos is the position of the box relative to the top left corner
	// of its parent.
	pos image.Point

	parent, first, last, next arena.Index
	children                  int
}

// inner returns the size minus padding along a.
func (e *extent) inner() int {
	if v := e.size - e.pad[0] - e.pad[1]; v > 0 {
		return v
	}
	return 0
}

// outer returns the size plus margins.
func (e *extent) outer() int {
	return e.size + e.margin[0] + e.margin[1]
}

// bounds resolves the minimum and maximum against base, the inner size
// of the parent.
func (e *extent) bounds(base int) {
	e.min, e.max = e.minPx, e.maxPx
	if e.minUnit == unit.UnitParent {
		e.min = unit.Value{V: e.minPct, U: unit.UnitParent}.Of(base)
	}
	if e.maxUnit == unit.UnitParent {
		e.max = unit.Value{V: e.maxPct, U: unit.UnitParent}.Of(base)
	}
	if e.max < e.min {
		e.max = e.min
	}
}

func (e *extent) clamp(v int) int {
	return clamp(v, e.min, e.max)
}

func (b *box) detached() bool {
	return b.detach != DetachNone
}

// computeStyle converts s into b. Absolute and root relative units are
// resolved to pixels; the other percent units are recorded for the
// solver.
func (c *Context) computeStyle(s *Style, b *box, isRoot bool) error {
	var root *box
	if !isRoot {
		root = c.nodes.Get(c.root)
	}
	sizes := [2][3]unit.Value{
		{s.Width, s.MinWidth, s.MaxWidth},
		{s.Height, s.MinHeight, s.MaxHeight},
	}
	margins := [2][2]unit.Value{{s.Margin.Left, s.Margin.Right}, {s.Margin.Top, s.Margin.Bottom}}
	pads := [2][2]unit.Value{{s.Padding.Left, s.Padding.Right}, {s.Padding.Top, s.Padding.Bottom}}
	offsets := [2]unit.Value{s.Offset.X, s.Offset.Y}
	for a := Horizontal; a <= Vertical; a++ {
		e := &b.axes[a]
		v := sizes[a][0]
		e.unit, e.pct = v.U, v.V
		switch v.U {
		case unit.UnitPx, unit.UnitMm, unit.UnitCm, unit.UnitIn:
			e.unit = unit.UnitPx
			e.px = c.metric.Px(v)
		case unit.UnitRoot:
			if isRoot {
				if err := c.invalid(ErrRootNode, "root %v %v is relative to itself", a.size(), v); err != nil {
					return err
				}
				break
			}
			re := &root.axes[a]
			if re.unit != unit.UnitPx {
				if err := c.invalid(ErrNode, "%v %v needs an absolutely sized root", a.size(), v); err != nil {
					return err
				}
			}
			e.px = v.Of(re.px)
		case unit.UnitParent, unit.UnitAvailable:
			if isRoot {
				if err := c.invalid(ErrRootNode, "root %v %v has no parent", a.size(), v); err != nil {
					return err
				}
			}
		case unit.UnitWidth:
			if a != Vertical {
				if err := c.invalid(ErrUnitType, "width %v is relative to itself", v); err != nil {
					return err
				}
				e.unit = unit.UnitPx
			}
		}
		var err error
		if e.minUnit, e.minPct, e.minPx, err = c.bound(sizes[a][1], root, a, 0); err != nil {
			return err
		}
		if e.maxUnit, e.maxPct, e.maxPx, err = c.bound(sizes[a][2], root, a, unbounded); err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			if e.margin[i], err = c.absolute("margin", margins[a][i]); err != nil {
				return err
			}
			if e.pad[i], err = c.absolute("padding", pads[a][i]); err != nil {
				return err
			}
		}
		if e.offset, err = c.absolute("offset", offsets[a]); err != nil {
			return err
		}
	}
	var err error
	if b.gap, err = c.absolute("gap", s.Gap); err != nil {
		return err
	}
	if b.radius, err = c.absolute("radius", s.Radius); err != nil {
		return err
	}
	if b.border, err = c.absolute("border", s.Border); err != nil {
		return err
	}
	switch m := s.Mode.(type) {
	case nil:
	case Flow:
		b.flow = m.Axis
		b.align = [2]Alignment{m.AlignX, m.AlignY}
	case Grid:
		b.grid = true
		b.rows, b.cols = m.Rows, m.Cols
		if b.cols <= 0 {
			b.cols = 1
		}
	}
	b.span = s.Span
	if b.span.X <= 0 {
		b.span.X = 1
	}
	if b.span.Y <= 0 {
		b.span.Y = 1
	}
	b.scroll = s.Scroll
	b.scissor = s.Scissor
	b.detach = s.Detach
	b.background = s.Background
	b.borderColor = s.BorderColor
	b.texture = s.Texture
	return nil
}

// bound converts a minimum or maximum. A zero bound returns def.
func (c *Context) bound(v unit.Value, root *box, a Axis, def int) (unit.Unit, float32, int, error) {
	switch v.U {
	case unit.UnitPx, unit.UnitMm, unit.UnitCm, unit.UnitIn:
		if v.V == 0 {
			return unit.UnitPx, 0, def, nil
		}
		return unit.UnitPx, 0, c.metric.Px(v), nil
	case unit.UnitParent:
		if root == nil {
			if err := c.invalid(ErrRootNode, "root %v bound %v has no parent", a.size(), v); err != nil {
				return 0, 0, 0, err
			}
		}
		return unit.UnitParent, v.V, 0, nil
	case unit.UnitRoot:
		if root == nil {
			err := c.invalid(ErrRootNode, "root %v bound %v is relative to itself", a.size(), v)
			return unit.UnitPx, 0, def, err
		}
		if root.axes[a].unit != unit.UnitPx {
			if err := c.invalid(ErrNode, "%v bound %v needs an absolutely sized root", a.size(), v); err != nil {
				return 0, 0, 0, err
			}
		}
		return unit.UnitPx, 0, v.Of(root.axes[a].px), nil
	default:
		err := c.invalid(ErrUnitType, "%v bound %v must be absolute or relative to the parent or root", a.size(), v)
		return unit.UnitPx, 0, def, err
	}
}

func (c *Context) absolute(field string, v unit.Value) (int, error) {
	if !v.IsAbsolute() {
		return 0, c.invalid(ErrUnitType, "%s %v must be absolute", field, v)
	}
	return c.metric.Px(v), nil
}

func (a Axis) size() string {
	if a == Horizontal {
		return "width"
	}
	return "height"
}
