// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"boxui.org/font"
	"boxui.org/font/opentype"
	"boxui.org/text"
)

func TestAdvances(t *testing.T) {
	shaped, err := Parse(goregular.TTF, "en")
	if err != nil {
		t.Fatal(err)
	}
	plain, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var _ font.Face = shaped
	for _, r := range "Amw .!" {
		s, p := shaped.GlyphAdvance(r, 32, 0), plain.GlyphAdvance(r, 32, 0)
		if s <= 0 {
			t.Errorf("%q: advance %v", r, s)
		}
		// Both scale the same design units.
		if d := s - p; d > fixed.I(1) || d < -fixed.I(1) {
			t.Errorf("%q: shaped %v, unshaped %v", r, s, p)
		}
	}
	if got, want := shaped.GlyphAdvance('A', 32, 2), shaped.GlyphAdvance('A', 32, 0)+fixed.I(2); got != want {
		t.Errorf("spaced advance = %v, want %v", got, want)
	}
}

func TestFlow(t *testing.T) {
	face, err := Parse(goregular.TTF, "en")
	if err != nil {
		t.Fatal(err)
	}
	spans := []text.Span{{Style: text.Style{Size: 16}, Text: []rune("hello shaped world")}}
	w := text.Measure(face, spans)
	l := text.Flow(face, spans, w/2)
	if len(l.Rows) < 2 {
		t.Errorf("got %d rows at half width, want at least 2", len(l.Rows))
	}
	if l.Width > w {
		t.Errorf("wrapped width %d exceeds unwrapped %d", l.Width, w)
	}
	if _, err := face.DrawFace(16); err != nil {
		t.Error(err)
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse(nil, "en"); err == nil {
		t.Error("no error for empty font")
	}
}
