// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides types describing font faces attributes.
*/
package font

import (
	"boxui.org/text"
	"golang.org/x/image/font"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is a loaded typeface. It measures glyphs for layout and provides
// faces for drawing them.
type Face interface {
	text.Measurer
	// DrawFace returns a face for drawing glyphs size pixels high.
	DrawFace(size int) (font.Face, error)
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Lookup returns the face of faces that best matches f, or nil if faces
// is empty. Matching the typeface matters most, then the variant, the
// style and finally the closest weight. The empty typeface matches
// any typeface.
func Lookup(faces []FontFace, f Font) Face {
	var best Face
	bestScore := 0
	for i, ff := range faces {
		score := 0
		if f.Typeface == "" || ff.Font.Typeface == f.Typeface {
			score += 10000
		}
		if ff.Font.Variant == f.Variant {
			score += 1000
		}
		if ff.Font.Style == f.Style {
			score += 100
		}
		d := int(ff.Font.Weight - f.Weight)
		if d < 0 {
			d = -d
		}
		score -= d / 10
		if i == 0 || score > bestScore {
			best, bestScore = ff.Face, score
		}
	}
	return best
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
