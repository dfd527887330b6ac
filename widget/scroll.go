// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"boxui.org/layout"
)

// Scroll moves the scroll offset of the box id by the mouse wheel,
// step pixels per wheel unit, while the mouse is over the box. The
// offset stays within the overflow of the box content and is meant for
// the box's Style.Scroll.
func Scroll(ctx *layout.Context, id string, step int) image.Point {
	info := ctx.Info(id)
	s := info.State
	if in := ctx.Input(); in != nil && info.Hover {
		s.Scroll = s.Scroll.Add(in.MouseWheel().Mul(step))
	}
	max := info.Content.Sub(info.Rect.Size())
	s.Scroll = image.Pt(clampScroll(s.Scroll.X, max.X), clampScroll(s.Scroll.Y, max.Y))
	ctx.SetState(id, s)
	return s.Scroll
}

// ScrollTo sets the scroll offset of the box id.
func ScrollTo(ctx *layout.Context, id string, off image.Point) {
	s := ctx.Info(id).State
	s.Scroll = off
	ctx.SetState(id, s)
}

func clampScroll(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}
