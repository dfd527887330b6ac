// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type testFace int

func (f testFace) GlyphAdvance(r rune, size int, spacing float32) fixed.Int26_6 {
	return fixed.I(int(f))
}

func (testFace) DrawFace(size int) (font.Face, error) {
	return nil, nil
}

func TestLookup(t *testing.T) {
	faces := []FontFace{
		{Font: Font{Typeface: "Go"}, Face: testFace(1)},
		{Font: Font{Typeface: "Go", Weight: Bold}, Face: testFace(2)},
		{Font: Font{Typeface: "Go", Style: Italic}, Face: testFace(3)},
		{Font: Font{Typeface: "Go", Variant: "Mono"}, Face: testFace(4)},
		{Font: Font{Typeface: "Other", Weight: SemiBold}, Face: testFace(5)},
	}
	tests := []struct {
		font Font
		want testFace
	}{
		{Font{}, 1},
		{Font{Typeface: "Go", Weight: Bold}, 2},
		{Font{Weight: ExtraBold}, 2},
		{Font{Style: Italic}, 3},
		{Font{Variant: "Mono", Weight: Bold}, 4},
		{Font{Typeface: "Other"}, 5},
		{Font{Typeface: "Missing"}, 1},
	}
	for _, tc := range tests {
		if got := Lookup(faces, tc.font); got != Face(tc.want) {
			t.Errorf("Lookup(%+v) = %v, want %v", tc.font, got, tc.want)
		}
	}
	if Lookup(nil, Font{}) != nil {
		t.Error("Lookup of no faces is not nil")
	}
}

func TestStrings(t *testing.T) {
	if s := Bold.String(); s != "Bold" {
		t.Errorf("Bold = %q", s)
	}
	if s := Italic.String(); s != "Italic" {
		t.Errorf("Italic = %q", s)
	}
}
