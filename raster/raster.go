// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software Backend drawing into an
*image.RGBA.

Shapes are rasterized with anti-aliasing by golang.org/x/image/vector,
textures are scaled bilinearly and text is drawn with
golang.org/x/image/font.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"boxui.org/font"
	"boxui.org/text"
	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a Backend drawing into an image.
type Canvas struct {
	dst  *image.RGBA
	face font.Face
	// clips is the scissor stack. Each entry is already intersected
	// with its parent.
	clips []image.Rectangle
	err   error

	scratch struct {
		z   vector.Rasterizer
		pts []point
		tex *image.RGBA
	}
}

type point struct {
	x, y float32
}

// cornerSegments is the number of segments approximating a quarter
// circle.
const cornerSegments = 8

// NewCanvas returns a Canvas drawing into dst. Text is drawn with face;
// a nil face draws no text.
func NewCanvas(dst *image.RGBA, face font.Face) *Canvas {
	return &Canvas{dst: dst, face: face}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Err returns the first error met while drawing, such as a font size
// the face cannot provide.
func (c *Canvas) Err() error {
	return c.err
}

// Clear fills the whole image with col, ignoring scissors.
func (c *Canvas) Clear(col color.NRGBA) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) clip() image.Rectangle {
	if n := len(c.clips); n > 0 {
		return c.clips[n-1]
	}
	return c.dst.Bounds()
}

// BeginScissor implements op.Backend.
func (c *Canvas) BeginScissor(r image.Rectangle) {
	c.clips = append(c.clips, r.Intersect(c.clip()))
}

// EndScissor implements op.Backend.
func (c *Canvas) EndScissor() {
	if len(c.clips) == 0 {
		panic("raster: unbalanced scissor")
	}
	c.clips = c.clips[:len(c.clips)-1]
}

// DrawRectangle implements op.Backend. A positive border is drawn
// inside r.
func (c *Canvas) DrawRectangle(r image.Rectangle, radius, border int, borderColor, bg color.NRGBA) {
	v := r.Intersect(c.clip())
	if v.Empty() {
		return
	}
	inner := r.Inset(border)
	if border <= 0 || borderColor.A == 0 {
		inner = r
	}
	if bg.A != 0 && !inner.Empty() {
		c.fill(v, image.NewUniform(bg), image.Point{}, func(z *vector.Rasterizer) {
			c.path(z, inner, innerRadius(radius, border), v.Min, false)
		})
	}
	if border > 0 && borderColor.A != 0 {
		c.fill(v, image.NewUniform(borderColor), image.Point{}, func(z *vector.Rasterizer) {
			c.path(z, r, radius, v.Min, false)
			if !inner.Empty() {
				c.path(z, inner, innerRadius(radius, border), v.Min, true)
			}
		})
	}
}

func innerRadius(radius, border int) int {
	if border <= 0 {
		return radius
	}
	if r := radius - border; r > 0 {
		return r
	}
	return 0
}

// DrawTexturedRectangle implements op.Backend. The image is scaled to
// fill r.
func (c *Canvas) DrawTexturedRectangle(r image.Rectangle, radius int, img image.Image) {
	v := r.Intersect(c.clip())
	if v.Empty() || img == nil {
		return
	}
	tex := c.scratch.tex
	if tex == nil || !tex.Rect.Eq(r) {
		tex = image.NewRGBA(r)
		c.scratch.tex = tex
	}
	xdraw.ApproxBiLinear.Scale(tex, r, img, img.Bounds(), draw.Src, nil)
	c.fill(v, tex, v.Min, func(z *vector.Rasterizer) {
		c.path(z, r, radius, v.Min, false)
	})
}

// DrawTextLine implements op.Backend. pt is the top left corner of the
// line; the baseline is at the ascent of the face below it.
func (c *Canvas) DrawTextLine(style text.Style, pt image.Point, runes []rune) {
	clip := c.clip()
	if c.face == nil || clip.Empty() || len(runes) == 0 {
		return
	}
	face, err := c.face.DrawFace(style.Size)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return
	}
	spacing := fixed.Int26_6(style.Spacing * 64)
	if style.Background.A != 0 {
		var w fixed.Int26_6
		for _, r := range runes {
			w += c.face.GlyphAdvance(r, style.Size, style.Spacing)
		}
		bg := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(w.Ceil(), style.RowHeight()))}
		draw.Draw(c.dst, bg.Intersect(clip), image.NewUniform(style.Background), image.Point{}, draw.Over)
	}
	d := xfont.Drawer{
		Dst:  c.dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y).Add(fixed.Point26_6{Y: face.Metrics().Ascent}),
	}
	// Runes are drawn one by one to advance exactly as they were
	// measured.
	for _, r := range runes {
		start := d.Dot.X
		d.DrawString(string(r))
		d.Dot.X = start + c.face.GlyphAdvance(r, style.Size, 0) + spacing
	}
}

// fill rasterizes the path built by build over v and draws src through
// it.
func (c *Canvas) fill(v image.Rectangle, src image.Image, sp image.Point, build func(z *vector.Rasterizer)) {
	z := &c.scratch.z
	z.Reset(v.Dx(), v.Dy())
	z.DrawOp = draw.Over
	build(z)
	z.Draw(c.dst, v, src, sp)
}

// path adds the outline of r with rounded corners to z, translated by
// -off. A reversed outline cuts a hole in an enclosing one.
func (c *Canvas) path(z *vector.Rasterizer, r image.Rectangle, radius int, off image.Point, reverse bool) {
	pts := roundRect(c.scratch.pts[:0], r.Sub(off), radius)
	c.scratch.pts = pts
	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
}

// roundRect appends the outline of r to pts, clockwise in screen
// coordinates, with corners of the given radius approximated by line
// segments.
func roundRect(pts []point, r image.Rectangle, radius int) []point {
	rad := float64(radius)
	if m := float64(min(r.Dx(), r.Dy())) / 2; rad > m {
		rad = m
	}
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	if rad <= 0 {
		return append(pts, point{float32(x0), float32(y0)}, point{float32(x1), float32(y0)},
			point{float32(x1), float32(y1)}, point{float32(x0), float32(y1)})
	}
	corners := [4]struct {
		cx, cy float64
		start  float64
	}{
		{x1 - rad, y0 + rad, -math.Pi / 2},
		{x1 - rad, y1 - rad, 0},
		{x0 + rad, y1 - rad, math.Pi / 2},
		{x0 + rad, y0 + rad, math.Pi},
	}
	for _, k := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := k.start + float64(i)*math.Pi/2/cornerSegments
			pts = append(pts, point{
				x: float32(k.cx + rad*math.Cos(a)),
				y: float32(k.cy + rad*math.Sin(a)),
			})
		}
	}
	return pts
}
