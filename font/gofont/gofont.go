// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides the Go fonts as measuring and drawing faces.
//
// Faces are parsed on first use, so a program using only Face pays for
// one font. See https://blog.golang.org/go-fonts for the fonts.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"boxui.org/font"
	"boxui.org/font/opentype"
)

// Typeface is the typeface of every Go font.
const Typeface font.Typeface = "Go"

type entry struct {
	font font.Font
	ttf  []byte

	once sync.Once
	face *opentype.Face
}

func (e *entry) load() *opentype.Face {
	e.once.Do(func() {
		face, err := opentype.Parse(e.ttf)
		if err != nil {
			panic(fmt.Errorf("gofont: %v", err))
		}
		e.face = face
	})
	return e.face
}

// entries lists the fonts, regular first and mono regular second.
var entries = []*entry{
	{font: font.Font{}, ttf: goregular.TTF},
	{font: font.Font{Variant: "Mono"}, ttf: gomono.TTF},
	{font: font.Font{Style: font.Italic}, ttf: goitalic.TTF},
	{font: font.Font{Weight: font.Bold}, ttf: gobold.TTF},
	{font: font.Font{Style: font.Italic, Weight: font.Bold}, ttf: gobolditalic.TTF},
	{font: font.Font{Weight: font.Medium}, ttf: gomedium.TTF},
	{font: font.Font{Style: font.Italic, Weight: font.Medium}, ttf: gomediumitalic.TTF},
	{font: font.Font{Variant: "Mono", Weight: font.Bold}, ttf: gomonobold.TTF},
	{font: font.Font{Variant: "Mono", Style: font.Italic, Weight: font.Bold}, ttf: gomonobolditalic.TTF},
	{font: font.Font{Variant: "Mono", Style: font.Italic}, ttf: gomonoitalic.TTF},
	{font: font.Font{Variant: "Smallcaps"}, ttf: gosmallcaps.TTF},
	{font: font.Font{Variant: "Smallcaps", Style: font.Italic}, ttf: gosmallcapsitalic.TTF},
}

var (
	collectionOnce sync.Once
	collection     []font.FontFace
)

// Face returns the Go regular face.
func Face() font.Face {
	return entries[0].load()
}

// Mono returns the Go Mono regular face.
func Mono() font.Face {
	return entries[1].load()
}

// Collection returns every Go face, the regular face first.
func Collection() []font.FontFace {
	collectionOnce.Do(func() {
		collection = make([]font.FontFace, len(entries))
		for i, e := range entries {
			f := e.font
			f.Typeface = Typeface
			collection[i] = font.FontFace{Font: f, Face: e.load()}
		}
	})
	// Full slice expression so appends by callers copy.
	return collection[:len(collection):len(collection)]
}
