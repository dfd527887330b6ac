// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op defines the drawing capability the layout engine renders
through, and Ops, a recording implementation of it.

A Backend receives one call per visible box: a rounded rectangle, a
textured rectangle or one call per line of text, bracketed by scissor
push and pop calls for clipping boxes.

Ops records the calls in serialized form to avoid garbage during a
frame. A recorded frame can be inspected with Commands or replayed into
another Backend:

	ops := new(op.Ops)
	ctx := layout.NewContext(layout.WithBackend(ops))
	...
	ctx.Draw()
	ops.Replay(canvas)
	ops.Reset()
*/
package op

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"

	"boxui.org/internal/opconst"
	"boxui.org/text"
)

// Backend draws boxes.
type Backend interface {
	// DrawRectangle fills r with bg, with corners of the given radius
	// and a border of the given width.
	DrawRectangle(r image.Rectangle, radius, border int, borderColor, bg color.NRGBA)
	// DrawTexturedRectangle draws img scaled to r.
	DrawTexturedRectangle(r image.Rectangle, radius int, img image.Image)
	// DrawTextLine draws runes in style with the top left corner of the
	// line at pt.
	DrawTextLine(style text.Style, pt image.Point, runes []rune)
	// BeginScissor restricts drawing to r until the matching
	// EndScissor. Scissors nest.
	BeginScissor(r image.Rectangle)
	EndScissor()
}

// Ops holds a list of drawing operations.
type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the serialized operations.
	data []byte
	// External references for operations.
	refs []interface{}
	// depth tracks the scissor nesting.
	depth int
}

// Command is a decoded operation.
type Command struct {
	Type opconst.OpType
	// Rect is the drawn rectangle or the scissor rectangle.
	Rect        image.Rectangle
	Radius      int
	Border      int
	BorderColor color.NRGBA
	Color       color.NRGBA
	Image       image.Image
	Style       text.Style
	// Pos is the origin of a text line.
	Pos  image.Point
	Text string
}

var bo = binary.LittleEndian

func (o *Ops) DrawRectangle(r image.Rectangle, radius, border int, borderColor, bg color.NRGBA) {
	data := o.write(opconst.TypeRectLen)
	data[0] = byte(opconst.TypeRect)
	putRect(data[1:], r)
	bo.PutUint32(data[17:], uint32(int32(radius)))
	bo.PutUint32(data[21:], uint32(int32(border)))
	putColor(data[25:], borderColor)
	putColor(data[29:], bg)
}

func (o *Ops) DrawTexturedRectangle(r image.Rectangle, radius int, img image.Image) {
	data := o.write(opconst.TypeImageLen, img)
	data[0] = byte(opconst.TypeImage)
	putRect(data[1:], r)
	bo.PutUint32(data[17:], uint32(int32(radius)))
}

func (o *Ops) DrawTextLine(style text.Style, pt image.Point, runes []rune) {
	data := o.write(opconst.TypeTextLen, string(runes))
	data[0] = byte(opconst.TypeText)
	bo.PutUint32(data[1:], uint32(int32(pt.X)))
	bo.PutUint32(data[5:], uint32(int32(pt.Y)))
	bo.PutUint32(data[9:], uint32(int32(style.Size)))
	bo.PutUint32(data[13:], uint32(int32(style.LineSpacing)))
	bo.PutUint32(data[17:], math.Float32bits(style.Spacing))
	putColor(data[21:], style.Color)
	putColor(data[25:], style.Background)
}

func (o *Ops) BeginScissor(r image.Rectangle) {
	o.depth++
	data := o.write(opconst.TypeScissorLen)
	data[0] = byte(opconst.TypeScissor)
	putRect(data[1:], r)
}

func (o *Ops) EndScissor() {
	if o.depth == 0 {
		panic("unbalanced scissor")
	}
	o.depth--
	data := o.write(opconst.TypePopScissorLen)
	data[0] = byte(opconst.TypePopScissor)
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	// Leave references to the GC.
	for i := range o.refs {
		o.refs[i] = nil
	}
	o.data = o.data[:0]
	o.refs = o.refs[:0]
	o.depth = 0
	o.version++
}

// Version is incremented by every Reset.
func (o *Ops) Version() int {
	return o.version
}

// Commands decodes the recorded operations.
func (o *Ops) Commands() []Command {
	var cmds []Command
	o.decode(func(c Command) {
		cmds = append(cmds, c)
	})
	return cmds
}

// Replay issues the recorded operations to b in order.
func (o *Ops) Replay(b Backend) {
	o.decode(func(c Command) {
		switch c.Type {
		case opconst.TypeRect:
			b.DrawRectangle(c.Rect, c.Radius, c.Border, c.BorderColor, c.Color)
		case opconst.TypeImage:
			b.DrawTexturedRectangle(c.Rect, c.Radius, c.Image)
		case opconst.TypeText:
			b.DrawTextLine(c.Style, c.Pos, []rune(c.Text))
		case opconst.TypeScissor:
			b.BeginScissor(c.Rect)
		case opconst.TypePopScissor:
			b.EndScissor()
		}
	})
}

func (o *Ops) write(n int, refs ...interface{}) []byte {
	o.data = append(o.data, make([]byte, n)...)
	o.refs = append(o.refs, refs...)
	return o.data[len(o.data)-n:]
}

func (o *Ops) decode(f func(c Command)) {
	data, refs := o.data, o.refs
	for len(data) > 0 {
		t := opconst.OpType(data[0])
		if t < opconst.TypeRect || t > opconst.TypePopScissor {
			panic(fmt.Errorf("op: invalid op type %d", data[0]))
		}
		n, nrefs := t.Size(), t.NumRefs()
		d := data[:n]
		c := Command{Type: t}
		switch t {
		case opconst.TypeRect:
			c.Rect = getRect(d[1:])
			c.Radius = int(int32(bo.Uint32(d[17:])))
			c.Border = int(int32(bo.Uint32(d[21:])))
			c.BorderColor = getColor(d[25:])
			c.Color = getColor(d[29:])
		case opconst.TypeImage:
			c.Rect = getRect(d[1:])
			c.Radius = int(int32(bo.Uint32(d[17:])))
			c.Image, _ = refs[0].(image.Image)
		case opconst.TypeText:
			c.Pos = image.Pt(int(int32(bo.Uint32(d[1:]))), int(int32(bo.Uint32(d[5:]))))
			c.Style = text.Style{
				Size:        int(int32(bo.Uint32(d[9:]))),
				LineSpacing: int(int32(bo.Uint32(d[13:]))),
				Spacing:     math.Float32frombits(bo.Uint32(d[17:])),
				Color:       getColor(d[21:]),
				Background:  getColor(d[25:]),
			}
			c.Color = c.Style.Color
			c.Text = refs[0].(string)
		case opconst.TypeScissor:
			c.Rect = getRect(d[1:])
		}
		f(c)
		data, refs = data[n:], refs[nrefs:]
	}
}

func putRect(data []byte, r image.Rectangle) {
	bo.PutUint32(data[0:], uint32(int32(r.Min.X)))
	bo.PutUint32(data[4:], uint32(int32(r.Min.Y)))
	bo.PutUint32(data[8:], uint32(int32(r.Max.X)))
	bo.PutUint32(data[12:], uint32(int32(r.Max.Y)))
}

func getRect(data []byte) image.Rectangle {
	return image.Rect(
		int(int32(bo.Uint32(data[0:]))),
		int(int32(bo.Uint32(data[4:]))),
		int(int32(bo.Uint32(data[8:]))),
		int(int32(bo.Uint32(data[12:]))),
	)
}

func putColor(data []byte, c color.NRGBA) {
	data[0], data[1], data[2], data[3] = c.R, c.G, c.B, c.A
}

func getColor(data []byte) color.NRGBA {
	return color.NRGBA{R: data[0], G: data[1], B: data[2], A: data[3]}
}
