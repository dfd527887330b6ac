// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements font faces for OpenType and TrueType
// files.
//
// NOTE: the OpenType specification allows for fonts to include bitmap images
// in a variety of formats. In the interest of small binary sizes, the opentype
// package only automatically imports the PNG image decoder. If you have a font
// with glyphs in JPEG or TIFF formats, register those decoders with the image
// package in order to ensure those glyphs are visible in text.
package opentype

import (
	"fmt"
	_ "image/png"
	"strings"
	"sync"

	giofont "boxui.org/font"
	"boxui.org/internal/lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a parsed font. It is safe for concurrent use. For efficiency,
// applications should parse a font file once and share the Face.
type Face struct {
	font    *sfnt.Font
	family  string
	subfam  string
	variant string

	mu       sync.Mutex
	buf      sfnt.Buffer
	advances lru.Cache[advanceKey, fixed.Int26_6]
	faces    map[int]font.Face
}

type advanceKey struct {
	r    rune
	size int
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(f), nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are supported, returning a slice with
// length 1. The faces carry font metadata inferred from their names.
// BUG: the only Variant that can be detected automatically is "Mono".
func ParseCollection(src []byte) ([]giofont.FontFace, error) {
	c, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]giofont.FontFace, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		face := newFace(f)
		out[i] = giofont.FontFace{Font: face.Font(), Face: face}
	}
	return out, nil
}

func newFace(f *sfnt.Font) *Face {
	face := &Face{font: f, faces: make(map[int]font.Face)}
	face.family, _ = f.Name(&face.buf, sfnt.NameIDFamily)
	face.subfam, _ = f.Name(&face.buf, sfnt.NameIDSubfamily)
	if strings.Contains(face.family, "Mono") {
		face.variant = "Mono"
	}
	return face
}

// GlyphAdvance implements text.Measurer. Runes missing from the font
// advance by the missing glyph.
func (f *Face) GlyphAdvance(r rune, size int, spacing float32) fixed.Int26_6 {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := advanceKey{r: r, size: size}
	adv, ok := f.advances.Get(k)
	if !ok {
		adv = f.advance(r, size)
		f.advances.Put(k, adv)
	}
	return adv + fixed.Int26_6(spacing*64)
}

func (f *Face) advance(r rune, size int) fixed.Int26_6 {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	adv, err := f.font.GlyphAdvance(&f.buf, gid, fixed.I(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return adv
}

// DrawFace implements font.Face. The returned face must not be used
// concurrently.
func (f *Face) DrawFace(size int) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype: face of size %d: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Font returns a font.Font with populated font metadata for the font.
func (f *Face) Font() giofont.Font {
	return giofont.Font{
		Typeface: giofont.Typeface(f.family),
		Style:    f.style(),
		Weight:   f.weight(),
		Variant:  giofont.Variant(f.variant),
	}
}

func (f *Face) style() giofont.Style {
	if strings.Contains(f.subfam, "Italic") || strings.Contains(f.subfam, "Oblique") {
		return giofont.Italic
	}
	return giofont.Regular
}

func (f *Face) weight() giofont.Weight {
	s := strings.ToLower(f.subfam)
	for _, w := range []struct {
		name   string
		weight giofont.Weight
	}{
		// Prefixed names first.
		{"extralight", giofont.ExtraLight},
		{"extrabold", giofont.ExtraBold},
		{"semibold", giofont.SemiBold},
		{"thin", giofont.Thin},
		{"light", giofont.Light},
		{"medium", giofont.Medium},
		{"bold", giofont.Bold},
		{"black", giofont.Black},
	} {
		if strings.Contains(s, w.name) {
			return w.weight
		}
	}
	return giofont.Normal
}
