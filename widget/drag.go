// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"boxui.org/layout"
)

// Drag tracks the dragging of the box id with the primary button. It
// returns the mouse movement since the previous frame while the box
// holds the capture, and whether it does.
func Drag(ctx *layout.Context, id string) (delta image.Point, dragging bool) {
	in := ctx.Input()
	if in == nil {
		return image.Point{}, false
	}
	info := ctx.Info(id)
	s := info.State
	was := s.Dragging
	capture(in, info, &s)
	mouse := in.MousePosition()
	if was && s.Dragging {
		delta = mouse.Sub(s.Drag)
	}
	s.Drag = mouse
	ctx.SetState(id, s)
	return delta, s.Dragging
}

// Slider maps the horizontal mouse position over the box id to a
// value between min and max while the box holds the capture. The
// value is kept in value and Slider reports whether it changed.
func Slider(ctx *layout.Context, id string, value *float32, min, max float32) bool {
	in := ctx.Input()
	if in == nil {
		return false
	}
	if min > max {
		min, max = max, min
	}
	info := ctx.Info(id)
	s := info.State
	capture(in, info, &s)
	ctx.SetState(id, s)
	v := *value
	if s.Dragging {
		if w := info.Rect.Dx(); w > 0 {
			pos := float32(in.MousePosition().X-info.Rect.Min.X) / float32(w)
			v = min + (max-min)*pos
		}
	}
	if v < min {
		v = min
	} else if v > max {
		v = max
	}
	if v == *value {
		return false
	}
	*value = v
	return true
}

// SliderPos returns the offset in pixels of value along a slider of
// the given width.
func SliderPos(value, min, max float32, width int) int {
	if min == max {
		return 0
	}
	pos := (value - min) / (max - min)
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	return int(pos * float32(width))
}
