// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface behaviors on top of
// the boxes of a layout.Context.
//
// Widgets are functions of a box id. They read the Info of the box
// from the previous frame and the input of the Context, and keep their
// persistent state in the box's layout.State, so they must be called
// between BeginRoot and the BeginBox of their box. A box captures the
// pointer while the primary button pressed over it is held;
// State.Dragging records the capture.
package widget

import (
	"boxui.org/io/input"
	"boxui.org/layout"
)

// capture updates the pointer capture of a box and reports whether
// the capture was released this frame.
func capture(in input.Source, info layout.Info, s *layout.State) (released bool) {
	switch {
	case in.MousePressed(input.ButtonPrimary) && info.DirectHover:
		s.Dragging = true
	case s.Dragging && !in.MouseDown(input.ButtonPrimary):
		s.Dragging = false
		released = true
	}
	return released
}

// Clicked reports whether the box id was clicked: the primary button
// was pressed over it and released over it.
func Clicked(ctx *layout.Context, id string) bool {
	in := ctx.Input()
	if in == nil {
		return false
	}
	info := ctx.Info(id)
	s := info.State
	clicked := capture(in, info, &s) && info.DirectHover
	ctx.SetState(id, s)
	return clicked
}

// Pressed reports whether the box id holds the pointer capture.
func Pressed(ctx *layout.Context, id string) bool {
	return ctx.Info(id).State.Dragging
}

// Toggle flips a boolean kept by the box id when it is clicked. It
// returns the value and whether it changed this frame.
func Toggle(ctx *layout.Context, id string) (on, changed bool) {
	if Clicked(ctx, id) {
		info := ctx.Info(id)
		info.State.Custom = !info.State.Custom
		ctx.SetState(id, info.State)
		return info.State.Custom, true
	}
	return ctx.Info(id).State.Custom, false
}

// SetToggle sets the boolean of Toggle.
func SetToggle(ctx *layout.Context, id string, on bool) {
	s := ctx.Info(id).State
	s.Custom = on
	ctx.SetState(id, s)
}
