// SPDX-License-Identifier: Unlicense OR MIT

// Package shaping implements font faces measured by a HarfBuzz shaper.
//
// Glyph advances come from shaping each rune on its own, so they
// include the font's positioning of isolated glyphs but no kerning or
// ligatures across runes.
package shaping

import (
	"bytes"
	"fmt"
	"sync"

	"boxui.org/font/opentype"
	"boxui.org/internal/lru"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a shaped font face. It is safe for concurrent use.
type Face struct {
	lang language.Language
	// draw provides the faces for drawing.
	draw *opentype.Face

	mu       sync.Mutex
	face     *font.Face
	shaper   shaping.HarfbuzzShaper
	advances lru.Cache[advanceKey, fixed.Int26_6]
}

type advanceKey struct {
	r    rune
	size int
}

// Parse constructs a Face from source bytes. Text is shaped for lang,
// for example "en".
func Parse(src []byte, lang string) (*Face, error) {
	ft, err := font.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("shaping: %w", err)
	}
	draw, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("shaping: %w", err)
	}
	return &Face{
		lang: language.NewLanguage(lang),
		draw: draw,
		face: font.NewFace(ft.Font),
	}, nil
}

// GlyphAdvance implements text.Measurer.
func (f *Face) GlyphAdvance(r rune, size int, spacing float32) fixed.Int26_6 {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := advanceKey{r: r, size: size}
	adv, ok := f.advances.Get(k)
	if !ok {
		adv = f.shape(r, size)
		f.advances.Put(k, adv)
	}
	return adv + fixed.Int26_6(spacing*64)
}

func (f *Face) shape(r rune, size int) fixed.Int26_6 {
	runes := []rune{r}
	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.I(size),
		Script:    language.LookupScript(r),
		Language:  f.lang,
	})
	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return adv
}

// DrawFace implements font.Face.
func (f *Face) DrawFace(size int) (xfont.Face, error) {
	return f.draw.DrawFace(size)
}
