// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"boxui.org/layout"
	"boxui.org/text"
	"boxui.org/unit"
	"github.com/pelletier/go-toml/v2"
)

const sample = `
[engine]
nodes = 4096
px_per_inch = 110
validate = false
log_level = "debug"

[theme]
background = "#202020"
foreground = "White"
accent = "#6495ed80"
text_size = 14
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if c.Engine.Nodes != 4096 || c.Engine.PxPerInch != 110 {
		t.Errorf("engine = %+v", c.Engine)
	}
	if c.Engine.Validate == nil || *c.Engine.Validate {
		t.Error("validate not disabled")
	}
	// Missing keys keep their defaults.
	if c.Engine.Identities != 256 || c.Engine.Font != "go" || c.Theme.Radius != 4 {
		t.Errorf("defaults lost: %+v", c)
	}
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"background", c.Theme.Background, Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff}},
		{"foreground", c.Theme.Foreground, Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"accent", c.Theme.Accent, Color{R: 0x64, G: 0x95, B: 0xed, A: 0x80}},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
	if s := c.Theme.TextStyle(); s != (text.Style{Size: 14, Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}) {
		t.Errorf("text style = %+v", s)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"[engine]\nnodes = -1",
		"[engine]\nlog_level = \"loud\"",
		"[engine]\nunknown = 1",
		"[theme]\naccent = \"notacolor\"",
		"[theme]\naccent = \"#12345\"",
		"[theme]\ntext_size = 0",
		"[theme\n",
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%q: no error", src)
		}
	}
	_, err := Parse([]byte("[engine]\nunknown = 1"))
	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		t.Errorf("unknown key error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxui.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme.TextSize != 14 {
		t.Errorf("text size = %d", c.Theme.TextSize)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestColorRoundTrip(t *testing.T) {
	want := Color{R: 1, G: 2, B: 3, A: 4}
	b, err := want.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got Color
	if err := got.UnmarshalText(b); err != nil || got != want {
		t.Errorf("round trip of %s = %v, %v", b, got, err)
	}
}

func TestColorText(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ff8000", Color{R: 0xff, G: 0x80, A: 0xff}, true},
		{" #0000ff80 ", Color{B: 0xff, A: 0x80}, true},
		{"Red", Color{R: 0xff, A: 0xff}, true},
		{"#ff80", Color{}, false},
		{"#gg0000", Color{}, false},
		{"ff0000", Color{}, false},
	} {
		var got Color
		err := got.UnmarshalText([]byte(tc.in))
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("UnmarshalText(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestOptions(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	face, err := c.Face()
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	ctx := layout.NewContext(c.Options(face, c.Logger(&logs))...)
	// Validation is disabled: a content sized leaf is allowed.
	if err := ctx.BeginRoot(layout.Style{Width: unit.In(1), Height: unit.Px(10)}); err != nil {
		t.Fatal(err)
	}
	if err := ctx.BeginBox(layout.Style{Width: unit.Content(100)}, "leaf"); err != nil {
		t.Fatal(err)
	}
	if err := ctx.EndBox(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.InsertText(c.Theme.TextStyle(), "hi"); err != nil {
		t.Fatal(err)
	}
	if err := ctx.EndRoot(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Draw(); err != nil {
		t.Fatal(err)
	}
	var root layout.Node
	ctx.Walk(func(depth int, n layout.Node) {
		if depth == 0 {
			root = n
		}
	})
	if w := root.Rect.Dx(); w != 110 {
		t.Errorf("root width = %d, want 110", w)
	}
	if !strings.Contains(logs.String(), "frame drawn") {
		t.Errorf("debug log missing: %q", logs.String())
	}
}

func TestFaces(t *testing.T) {
	for _, name := range []string{"go", "gomono"} {
		c := Default()
		c.Engine.Font = name
		face, err := c.Face()
		if err != nil || face == nil {
			t.Errorf("%s: %v, %v", name, face, err)
		}
	}
	c := Default()
	c.Engine.Font = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := c.Face(); err == nil {
		t.Error("no error for a missing font file")
	}
}
