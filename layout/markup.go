// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"boxui.org/text"
)

// InsertMarkup is like InsertText, except that str may change style
// with backslash directives:
//
//	\c{RRGGBB} or \c{RRGGBBAA}  text color
//	\b{RRGGBB} or \b{RRGGBBAA}  background color
//	\s{N}                       size in pixels
//	\r                          reset to s
//	\n                          newline
//	\\                          backslash
//
// An unknown or malformed directive is an ErrTextEscape error and no
// text is inserted.
func (c *Context) InsertMarkup(s text.Style, str string) error {
	if c.err != nil {
		return c.err
	}
	if len(c.stack) == 0 {
		return c.fail(ErrTextNode, "InsertMarkup without an open box")
	}
	spans, err := parseMarkup(s, normalize(str))
	if err != nil {
		return c.fail(ErrTextEscape, "%v", err)
	}
	for _, sp := range spans {
		c.appendSpan(sp.Style, sp.Text)
	}
	return nil
}

type markupError struct {
	pos int
	msg string
}

func (e *markupError) Error() string {
	return "offset " + strconv.Itoa(e.pos) + ": " + e.msg
}

func parseMarkup(base text.Style, str string) ([]text.Span, error) {
	var spans []text.Span
	var buf []rune
	style := base
	flush := func() {
		if len(buf) > 0 {
			spans = append(spans, text.Span{Style: style, Text: buf})
			buf = nil
		}
	}
	for i := 0; i < len(str); {
		if str[i] != '\\' {
			j := strings.IndexByte(str[i:], '\\')
			if j == -1 {
				j = len(str) - i
			}
			buf = append(buf, []rune(str[i:i+j])...)
			i += j
			continue
		}
		if i+1 == len(str) {
			return nil, &markupError{i, "trailing backslash"}
		}
		d := str[i+1]
		i += 2
		switch d {
		case '\\':
			buf = append(buf, '\\')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			flush()
			style = base
		case 'c', 'b', 's':
			arg, n, ok := braced(str[i:])
			if !ok {
				return nil, &markupError{i - 2, "missing {argument} for \\" + string(d)}
			}
			i += n
			next := style
			switch d {
			case 'c', 'b':
				col, ok := ParseHexColor(arg)
				if !ok {
					return nil, &markupError{i - n, "invalid color " + strconv.Quote(arg)}
				}
				if d == 'c' {
					next.Color = col
				} else {
					next.Background = col
				}
			case 's':
				size, err := strconv.Atoi(arg)
				if err != nil || size <= 0 {
					return nil, &markupError{i - n, "invalid size " + strconv.Quote(arg)}
				}
				next.Size = size
			}
			if next != style {
				flush()
				style = next
			}
		default:
			return nil, &markupError{i - 2, "unknown directive \\" + string(d)}
		}
	}
	flush()
	return spans, nil
}

// braced returns the argument of a {...} prefix of s and the length of
// the prefix.
func braced(s string) (string, int, bool) {
	if len(s) == 0 || s[0] != '{' {
		return "", 0, false
	}
	end := strings.IndexByte(s, '}')
	if end == -1 {
		return "", 0, false
	}
	return s[1:end], end + 1, true
}

// ParseHexColor parses RRGGBB or RRGGBBAA, with an optional leading #.
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// normalize returns str in Unicode normalization form C, so that
// composed and decomposed input measure and wrap alike.
func normalize(str string) string {
	return norm.NFC.String(str)
}
