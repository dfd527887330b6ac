// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"unicode"

	"golang.org/x/image/math/fixed"
)

// Flow breaks spans into rows no wider than maxWidth pixels. A negative
// maxWidth disables wrapping.
//
// Rows break at newlines, and at the last whitespace before a glyph that
// would overflow. The whitespace at a break is dropped. A run without
// whitespace wider than maxWidth overflows instead of being broken.
func Flow(m Measurer, spans []Span, maxWidth int) Layout {
	f := flower{
		m:     m,
		spans: spans,
		max:   fixed.I(maxWidth),
		wrap:  maxWidth >= 0,
	}
	return f.run()
}

// Measure returns the width of the widest row of spans laid out without
// wrapping.
func Measure(m Measurer, spans []Span) int {
	return Flow(m, spans, -1).Width
}

type pos struct {
	span, idx int
}

type flower struct {
	m     Measurer
	spans []Span
	max   fixed.Int26_6
	wrap  bool

	out Layout

	// x is the pen position in the current row.
	x fixed.Int26_6
	// row is the current row.
	row Row
	// rowLine is the index of the first Line of the current row.
	rowLine int

	// start and startX locate the start of the line being accumulated
	// in the current span.
	start  pos
	startX fixed.Int26_6

	// brk is the most recent whitespace in the current row.
	brk    pos
	brkX   fixed.Int26_6
	hasBrk bool
}

func (f *flower) run() Layout {
	if !f.hasText() {
		return Layout{}
	}
	p := pos{}
	f.beginRow(p, 0)
	for p.span < len(f.spans) {
		sp := &f.spans[p.span]
		if p.idx >= len(sp.Text) {
			f.closeLine(p.idx, f.x)
			p = pos{span: p.span + 1}
			f.start, f.startX = p, f.x
			continue
		}
		r := sp.Text[p.idx]
		if r == '\n' {
			f.closeLine(p.idx, f.x)
			f.endRow(f.x)
			p.idx++
			f.beginRow(p, f.row.Y+f.row.Height)
			continue
		}
		adv := f.m.GlyphAdvance(r, sp.Style.Size, sp.Style.Spacing)
		if f.x > 0 && unicode.IsSpace(r) {
			f.brk, f.brkX, f.hasBrk = p, f.x, true
		}
		if f.wrap && f.hasBrk && f.x+adv > f.max {
			brk := f.brk
			f.truncate(brk, f.brkX)
			f.endRow(f.brkX)
			// Resume after the whitespace.
			p = pos{span: brk.span, idx: brk.idx + 1}
			f.beginRow(p, f.row.Y+f.row.Height)
			continue
		}
		f.x += adv
		p.idx++
	}
	f.endRow(f.x)
	return f.out
}

func (f *flower) hasText() bool {
	for _, s := range f.spans {
		if len(s.Text) > 0 {
			return true
		}
	}
	return false
}

// beginRow starts a row at y whose first glyph is at p.
func (f *flower) beginRow(p pos, y int) {
	f.row = Row{Y: y, Height: f.styleAt(p).RowHeight()}
	f.rowLine = len(f.out.Lines)
	f.x = 0
	f.start, f.startX = p, 0
	f.hasBrk = false
}

func (f *flower) endRow(x fixed.Int26_6) {
	f.row.Width = x.Ceil()
	f.out.Rows = append(f.out.Rows, f.row)
	if f.row.Width > f.out.Width {
		f.out.Width = f.row.Width
	}
	f.out.Height = f.row.Y + f.row.Height
}

// closeLine emits the line from f.start up to end in the start span.
func (f *flower) closeLine(end int, x fixed.Int26_6) {
	if end <= f.start.idx {
		return
	}
	f.out.Lines = append(f.out.Lines, Line{
		Span:  f.start.span,
		Start: f.start.idx,
		End:   end,
		Style: f.spans[f.start.span].Style,
		Row:   len(f.out.Rows),
		X:     f.startX.Round(),
		Y:     f.row.Y,
		Width: (x - f.startX).Ceil(),
	})
}

// truncate cuts the current row at the whitespace at brk, which may lie
// in an earlier span than the glyph that overflowed.
func (f *flower) truncate(brk pos, brkX fixed.Int26_6) {
	keep := f.rowLine
	for i := f.rowLine; i < len(f.out.Lines); i++ {
		l := &f.out.Lines[i]
		if l.Span < brk.span || (l.Span == brk.span && l.End <= brk.idx) {
			keep = i + 1
			continue
		}
		if l.Span == brk.span && l.Start < brk.idx {
			l.End = brk.idx
			l.Width = brkX.Ceil() - l.X
			keep = i + 1
		}
		break
	}
	f.out.Lines = f.out.Lines[:keep]
	if f.start.span == brk.span && f.start.idx < brk.idx {
		f.closeLine(brk.idx, brkX)
	}
}

// styleAt returns the style of the first glyph at or after p, or of the
// last span at the end of the text.
func (f *flower) styleAt(p pos) Style {
	for s := p.span; s < len(f.spans); s++ {
		idx := 0
		if s == p.span {
			idx = p.idx
		}
		if idx < len(f.spans[s].Text) {
			return f.spans[s].Style
		}
	}
	return f.spans[len(f.spans)-1].Style
}
