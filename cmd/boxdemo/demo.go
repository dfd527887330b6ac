// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"boxui.org/config"
	"boxui.org/layout"
	"boxui.org/text"
	"boxui.org/unit"
	"boxui.org/widget"
)

// frameTime is the simulated duration of a frame.
const frameTime = time.Second / 60

var sections = []string{"General", "Display", "Sound", "Network", "About"}

// demo is the state of the sample interface.
type demo struct {
	theme   *config.Theme
	ids     map[layout.Key]string
	volume  float32
	applied int
}

func newDemo(t *config.Theme) *demo {
	return &demo{
		theme:  t,
		ids:    make(map[layout.Key]string),
		volume: 0.5,
	}
}

// id records the name of a box id for the tree dump.
func (d *demo) id(name string) string {
	d.ids[layout.Hash(name)] = name
	return name
}

func (d *demo) frame(ctx *layout.Context, size image.Point) error {
	t := d.theme
	gap := unit.Px(t.Spacing)
	body := t.TextStyle()
	if err := ctx.BeginRoot(layout.Style{
		Width:      unit.Px(float32(size.X)),
		Height:     unit.Px(float32(size.Y)),
		Padding:    layout.UniformEdges(gap),
		Gap:        gap,
		Background: t.Background.NRGBA(),
	}); err != nil {
		return err
	}

	if err := d.sidebar(ctx, body); err != nil {
		return err
	}
	if err := d.panel(ctx, body); err != nil {
		return err
	}
	return ctx.EndRoot()
}

func (d *demo) sidebar(ctx *layout.Context, body text.Style) error {
	t := d.theme
	gap := unit.Px(t.Spacing)
	if err := ctx.BeginBox(layout.Style{
		Width:       unit.Parent(30),
		Height:      unit.Parent(100),
		Padding:     layout.UniformEdges(gap),
		Gap:         gap,
		Mode:        layout.Flow{Axis: layout.Vertical},
		Background:  mix(t.Background.NRGBA(), t.Foreground.NRGBA(), 0.08),
		BorderColor: t.Border.NRGBA(),
		Border:      unit.Px(1),
		Radius:      unit.Px(t.Radius),
	}, d.id("sidebar")); err != nil {
		return err
	}
	for _, name := range sections {
		id := d.id("section/" + name)
		on, _ := widget.Toggle(ctx, id)
		s := widget.Animate(ctx, id, frameTime, 150*time.Millisecond)
		bg := mix(t.Background.NRGBA(), t.Accent.NRGBA(), 0.2*s.Hover+0.3*s.Press)
		if on {
			bg = t.Accent.NRGBA()
		}
		if err := ctx.BeginBox(layout.Style{
			Width:      unit.Parent(100),
			Height:     unit.Content(100),
			Padding:    layout.UniformEdges(unit.Px(t.Spacing / 2)),
			Background: bg,
			Radius:     unit.Px(t.Radius),
		}, id); err != nil {
			return err
		}
		if err := ctx.InsertText(body, name); err != nil {
			return err
		}
		if err := ctx.EndBox(); err != nil {
			return err
		}
	}
	return ctx.EndBox()
}

func (d *demo) panel(ctx *layout.Context, body text.Style) error {
	t := d.theme
	gap := unit.Px(t.Spacing)
	if err := ctx.BeginBox(layout.Style{
		Width:  unit.Available(100),
		Height: unit.Parent(100),
		Gap:    gap,
		Mode:   layout.Flow{Axis: layout.Vertical},
	}, d.id("panel")); err != nil {
		return err
	}
	title := body
	title.Size = body.Size * 3 / 2
	if err := ctx.InsertMarkup(title, fmt.Sprintf(`Settings \s{%d}\c{%s}(applied %d times)`,
		body.Size, hex(t.Accent.NRGBA()), d.applied)); err != nil {
		return err
	}
	if err := d.slider(ctx, body); err != nil {
		return err
	}
	if err := d.list(ctx, body); err != nil {
		return err
	}
	if err := d.apply(ctx, body); err != nil {
		return err
	}
	return ctx.EndBox()
}

func (d *demo) slider(ctx *layout.Context, body text.Style) error {
	t := d.theme
	id := d.id("volume")
	widget.Slider(ctx, id, &d.volume, 0, 1)
	if err := ctx.InsertText(body, fmt.Sprintf("Volume %d%%", int(d.volume*100+0.5))); err != nil {
		return err
	}
	if err := ctx.BeginBox(layout.Style{
		Width:      unit.Parent(100),
		Height:     unit.Px(float32(body.Size)),
		Background: mix(t.Background.NRGBA(), t.Foreground.NRGBA(), 0.15),
		Radius:     unit.Px(float32(body.Size) / 2),
	}, id); err != nil {
		return err
	}
	knob := float32(body.Size)
	w := ctx.Info(id).Rect.Dx() - int(knob)
	if w < 0 {
		w = 0
	}
	pos := widget.SliderPos(d.volume, 0, 1, w)
	if err := ctx.BeginBox(layout.Style{
		Width:      unit.Px(knob),
		Height:     unit.Px(knob),
		Offset:     layout.Point{X: unit.Px(float32(pos))},
		Background: t.Accent.NRGBA(),
		Radius:     unit.Px(knob / 2),
	}, d.id("volume/knob")); err != nil {
		return err
	}
	if err := ctx.EndBox(); err != nil {
		return err
	}
	return ctx.EndBox()
}

func (d *demo) list(ctx *layout.Context, body text.Style) error {
	t := d.theme
	id := d.id("list")
	off := widget.Scroll(ctx, id, body.Size)
	if err := ctx.BeginBox(layout.Style{
		Width:       unit.Parent(100),
		Height:      unit.Available(100),
		Padding:     layout.UniformEdges(unit.Px(t.Spacing / 2)),
		Mode:        layout.Flow{Axis: layout.Vertical},
		Scroll:      off,
		Scissor:     true,
		BorderColor: t.Border.NRGBA(),
		Border:      unit.Px(1),
		Radius:      unit.Px(t.Radius),
	}, id); err != nil {
		return err
	}
	for i := 0; i < 30; i++ {
		s := body
		if i%2 == 1 {
			s.Background = mix(t.Background.NRGBA(), t.Foreground.NRGBA(), 0.05)
		}
		if err := ctx.InsertText(s, fmt.Sprintf("Option %d\n", i+1)); err != nil {
			return err
		}
	}
	return ctx.EndBox()
}

func (d *demo) apply(ctx *layout.Context, body text.Style) error {
	t := d.theme
	id := d.id("apply")
	if widget.Clicked(ctx, id) {
		d.applied++
	}
	s := widget.Animate(ctx, id, frameTime, 150*time.Millisecond)
	if err := ctx.BeginBox(layout.Style{
		Width:      unit.Content(100),
		Height:     unit.Content(100),
		Padding:    layout.UniformEdges(unit.Px(t.Spacing)),
		Background: mix(t.Accent.NRGBA(), t.Foreground.NRGBA(), 0.2*s.Hover),
		Radius:     unit.Px(t.Radius),
	}, id); err != nil {
		return err
	}
	if err := ctx.InsertText(body, "Apply"); err != nil {
		return err
	}
	if ctx.Info(id).Hover {
		if err := d.tooltip(ctx, body); err != nil {
			return err
		}
	}
	return ctx.EndBox()
}

func (d *demo) tooltip(ctx *layout.Context, body text.Style) error {
	t := d.theme
	small := body
	small.Size = body.Size * 3 / 4
	if err := ctx.BeginBox(layout.Style{
		Width:       unit.Content(100),
		Height:      unit.Content(100),
		Padding:     layout.UniformEdges(unit.Px(t.Spacing / 2)),
		Detach:      layout.DetachTopCenter,
		Background:  t.Background.NRGBA(),
		BorderColor: t.Border.NRGBA(),
		Border:      unit.Px(1),
		Radius:      unit.Px(t.Radius),
	}, d.id("apply/tip")); err != nil {
		return err
	}
	if err := ctx.InsertText(small, "Save the settings"); err != nil {
		return err
	}
	return ctx.EndBox()
}

// mix linearly interpolates from a to b.
func mix(a, b color.NRGBA, t float32) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
