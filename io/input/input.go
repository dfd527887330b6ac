// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input defines the polled input state the layout engine and
widgets read each frame.

The engine never receives events. Instead it queries a Source for the
state of the mouse and keyboard at the time the frame is built. State
is a Source the host fills from its own event loop:

	var in input.State
	for {
		in.Frame()
		for _, e := range hostEvents() {
			switch e := e.(type) {
			case mouseMove:
				in.Move(e.Pos)
			case mouseDown:
				in.Press(input.ButtonPrimary)
			}
		}
		buildFrame(&in)
	}
*/
package input

import (
	"image"
	"strings"
)

// Source is a snapshot of input state for one frame.
type Source interface {
	// MousePosition returns the pointer position in screen pixels.
	MousePosition() image.Point
	// MouseDown reports whether all of buttons are held.
	MouseDown(buttons Buttons) bool
	// MousePressed reports whether any of buttons went down this frame.
	MousePressed(buttons Buttons) bool
	// MouseReleased reports whether any of buttons went up this frame.
	MouseReleased(buttons Buttons) bool
	// MouseWheel returns the scroll amount of this frame.
	MouseWheel() image.Point
	// KeyDown reports whether k is held.
	KeyDown(k Key) bool
	// KeyPressed reports whether k went down this frame.
	KeyPressed(k Key) bool
	// ScreenSize returns the size of the drawing surface.
	ScreenSize() image.Point
}

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Key is the identifier for a keyboard key.
//
// For letters and numbers, the key is the upper case character.
type Key string

const (
	KeyLeftArrow      Key = "←"
	KeyRightArrow     Key = "→"
	KeyUpArrow        Key = "↑"
	KeyDownArrow      Key = "↓"
	KeyReturn         Key = "⏎"
	KeyEscape         Key = "⎋"
	KeyHome           Key = "⇱"
	KeyEnd            Key = "⇲"
	KeyDeleteBackward Key = "⌫"
	KeyDeleteForward  Key = "⌦"
	KeyPageUp         Key = "⇞"
	KeyPageDown       Key = "⇟"
	KeyTab            Key = "Tab"
	KeySpace          Key = "Space"
	KeyCtrl           Key = "Ctrl"
	KeyShift          Key = "Shift"
	KeyAlt            Key = "Alt"
)

// State is a Source maintained by the host. The zero value is ready to
// use.
type State struct {
	mouse   image.Point
	buttons Buttons
	// prev holds the buttons at the end of the previous frame.
	prev   Buttons
	wheel  image.Point
	screen image.Point

	down    map[Key]bool
	pressed map[Key]bool
}

var _ Source = (*State)(nil)

// Frame marks the start of a new frame. Transitions and wheel movement
// recorded before the call are forgotten.
func (s *State) Frame() {
	s.prev = s.buttons
	s.wheel = image.Point{}
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// Move sets the pointer position.
func (s *State) Move(p image.Point) {
	s.mouse = p
}

// Press marks buttons as held.
func (s *State) Press(buttons Buttons) {
	s.buttons |= buttons
}

// Release marks buttons as released.
func (s *State) Release(buttons Buttons) {
	s.buttons &^= buttons
}

// Scroll accumulates wheel movement for the current frame.
func (s *State) Scroll(d image.Point) {
	s.wheel = s.wheel.Add(d)
}

// Resize sets the screen size.
func (s *State) Resize(size image.Point) {
	s.screen = size
}

// KeyPress marks k as held and pressed this frame.
func (s *State) KeyPress(k Key) {
	if s.down == nil {
		s.down = make(map[Key]bool)
		s.pressed = make(map[Key]bool)
	}
	if !s.down[k] {
		s.pressed[k] = true
	}
	s.down[k] = true
}

// KeyRelease marks k as released.
func (s *State) KeyRelease(k Key) {
	delete(s.down, k)
}

func (s *State) MousePosition() image.Point { return s.mouse }

func (s *State) MouseDown(buttons Buttons) bool {
	return s.buttons.Contain(buttons)
}

func (s *State) MousePressed(buttons Buttons) bool {
	return s.buttons&^s.prev&buttons != 0
}

func (s *State) MouseReleased(buttons Buttons) bool {
	return s.prev&^s.buttons&buttons != 0
}

func (s *State) MouseWheel() image.Point { return s.wheel }

func (s *State) KeyDown(k Key) bool { return s.down[k] }

func (s *State) KeyPressed(k Key) bool { return s.pressed[k] }

func (s *State) ScreenSize() image.Point { return s.screen }

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}
