// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"boxui.org/layout"
)

// Animate advances the hover and press ramps of the box id by dt. A
// ramp moves toward 1 while the box is hovered or holds the capture,
// toward 0 otherwise, and takes d to go all the way. It returns the
// updated state.
func Animate(ctx *layout.Context, id string, dt, d time.Duration) layout.State {
	info := ctx.Info(id)
	s := info.State
	step := float32(1)
	if d > 0 {
		step = float32(dt) / float32(d)
	}
	s.Hover = ramp(s.Hover, info.Hover, step)
	s.Press = ramp(s.Press, s.Dragging, step)
	ctx.SetState(id, s)
	return s
}

// Animating reports whether a ramp of s is between its ends.
func Animating(s layout.State) bool {
	return (s.Hover > 0 && s.Hover < 1) || (s.Press > 0 && s.Press < 1)
}

func ramp(v float32, up bool, step float32) float32 {
	if up {
		v += step
	} else {
		v -= step
	}
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
