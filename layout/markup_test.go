// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"
	"testing"

	"boxui.org/text"
)

func TestParseMarkup(t *testing.T) {
	base := text.Style{Size: 10}
	red := color.NRGBA{R: 0xff, A: 0xff}
	spans, err := parseMarkup(base, `a\c{ff0000}b\s{20}c\rd\\e\nf\b{#00ff0080}`)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		text  string
		style text.Style
	}{
		{"a", base},
		{"b", text.Style{Size: 10, Color: red}},
		{"c", text.Style{Size: 20, Color: red}},
		{"d\\e\nf", base},
	}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i, w := range want {
		if got := string(spans[i].Text); got != w.text {
			t.Errorf("span %d: text %q, want %q", i, got, w.text)
		}
		if spans[i].Style != w.style {
			t.Errorf("span %d: style %+v, want %+v", i, spans[i].Style, w.style)
		}
	}
}

func TestParseMarkupErrors(t *testing.T) {
	for _, s := range []string{
		`trailing\`,
		`\q`,
		`\c{zz0000}`,
		`\c{fff}`,
		`\c`,
		`\c{ff0000`,
		`\s{}`,
		`\s{-3}`,
	} {
		if _, err := parseMarkup(text.Style{}, s); err == nil {
			t.Errorf("%q: no error", s)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{"#10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}
	for _, tc := range tests {
		got, ok := ParseHexColor(tc.in)
		if !ok || got != tc.want {
			t.Errorf("ParseHexColor(%q) = %v, %v", tc.in, got, ok)
		}
	}
}
