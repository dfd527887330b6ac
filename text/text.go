// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements line breaking of styled text runs.

A body of text is a sequence of Spans, each a run of code points sharing
one Style. Flow breaks the spans into rows no wider than a maximum width,
breaking only at whitespace, and returns Lines that reference rune ranges
of the original spans rather than copies of them.
*/
package text

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Style is the appearance of a run of text.
type Style struct {
	// Size is the font size in pixels.
	Size int
	// LineSpacing is the extra space between rows, in pixels.
	LineSpacing int
	// Spacing is the extra advance added after every glyph, in pixels.
	Spacing    float32
	Color      color.NRGBA
	Background color.NRGBA
}

// Span is a run of code points sharing a Style.
type Span struct {
	Style Style
	Text  []rune
}

// Line is the part of a row that belongs to a single span. A row with
// several styles is made of several Lines sharing the same Row and Y.
type Line struct {
	// Span is the index of the span the line refers to.
	Span int
	// Start and End delimit the rune range in the span's Text.
	Start, End int
	Style      Style
	// Row is the index of the row in Layout.Rows.
	Row int
	// X and Y are the offsets of the line from the top left corner of
	// the text.
	X, Y  int
	Width int
}

// Row is one visual line of text.
type Row struct {
	Y      int
	Width  int
	Height int
}

// Layout is the result of Flow.
type Layout struct {
	Lines []Line
	Rows  []Row
	// Width is the width of the widest row.
	Width  int
	Height int
}

// Measurer reports glyph advances.
type Measurer interface {
	// GlyphAdvance returns the advance of r at the given pixel size,
	// including the extra spacing.
	GlyphAdvance(r rune, size int, spacing float32) fixed.Int26_6
}

// Runes returns the code points of l within spans.
func (l Line) Runes(spans []Span) []rune {
	return spans[l.Span].Text[l.Start:l.End]
}

// RowHeight returns the height of a row starting in style s.
func (s Style) RowHeight() int {
	return s.Size + s.LineSpacing
}

// Fixed is a Measurer returning the same advance for every glyph. It is
// useful for tests and fixed-cell displays.
type Fixed struct {
	Advance int
}

func (f Fixed) GlyphAdvance(r rune, size int, spacing float32) fixed.Int26_6 {
	return fixed.I(f.Advance) + fixed.Int26_6(spacing*64)
}
