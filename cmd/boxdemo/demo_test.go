// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"boxui.org/config"
	"boxui.org/font"
	"boxui.org/io/input"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/raster"
)

type runner struct {
	t    *testing.T
	cfg  *config.Config
	face font.Face
	in   input.State
	ops  op.Ops
	ctx  *layout.Context
	demo *demo
	size image.Point
}

func newRunner(t *testing.T) *runner {
	r := &runner{t: t, cfg: config.Default(), size: image.Pt(640, 400)}
	face, err := r.cfg.Face()
	if err != nil {
		t.Fatal(err)
	}
	r.face = face
	opts := append(r.cfg.Options(face, nil), layout.WithBackend(&r.ops), layout.WithInput(&r.in))
	r.ctx = layout.NewContext(opts...)
	r.demo = newDemo(&r.cfg.Theme)
	return r
}

// frame runs a frame. Between frames, Info describes the last frame.
func (r *runner) frame() {
	r.t.Helper()
	r.ops.Reset()
	if err := r.demo.frame(r.ctx, r.size); err != nil {
		r.t.Fatal(err)
	}
	if err := r.ctx.Draw(); err != nil {
		r.t.Fatal(err)
	}
	r.in.Frame()
}

// click moves the pointer to the center of the box id and clicks it.
func (r *runner) click(id string) {
	r.t.Helper()
	rect := r.ctx.Info(id).Rect
	if rect.Empty() {
		r.t.Fatalf("%s not laid out", id)
	}
	r.in.Move(rect.Min.Add(rect.Size().Div(2)))
	r.frame()
	r.in.Press(input.ButtonPrimary)
	r.frame()
	r.in.Release(input.ButtonPrimary)
	r.frame()
	r.frame()
}

func TestDemoLayout(t *testing.T) {
	r := newRunner(t)
	r.frame()
	r.frame()
	root := image.Rectangle{Max: r.size}
	for _, id := range []string{"sidebar", "panel", "volume", "volume/knob", "list", "apply"} {
		info := r.ctx.Info(id)
		if !info.Rendered {
			t.Errorf("%s not rendered", id)
		}
		if !info.Rect.In(root) {
			t.Errorf("%s at %v outside the window", id, info.Rect)
		}
	}
	if list := r.ctx.Info("list"); list.Content.Y <= list.Rect.Dy() {
		t.Errorf("list content %v does not overflow %v", list.Content, list.Rect)
	}
	if s := r.ctx.Stats(); s.Frame != 2 || s.Nodes == 0 {
		t.Errorf("stats %+v", s)
	}
}

func TestDemoInteraction(t *testing.T) {
	r := newRunner(t)
	r.frame()
	r.frame()
	r.click("section/Sound")
	if !r.ctx.Info("section/Sound").State.Custom {
		t.Error("section not toggled")
	}
	if r.ctx.Info("section/General").State.Custom {
		t.Error("wrong section toggled")
	}

	r.click("apply")
	if r.demo.applied != 1 {
		t.Errorf("applied %d times", r.demo.applied)
	}
	tip := r.ctx.Info("apply/tip")
	if !tip.Rendered {
		t.Fatal("no tooltip over the hovered button")
	}
	if apply := r.ctx.Info("apply").Rect; tip.Rect.Max.Y > apply.Min.Y {
		t.Errorf("tooltip %v not above %v", tip.Rect, apply)
	}

	list := r.ctx.Info("list").Rect
	r.in.Move(list.Min.Add(image.Pt(5, 5)))
	r.frame()
	r.in.Scroll(image.Pt(0, 2))
	r.frame()
	r.frame()
	if off := r.ctx.Info("list").State.Scroll; off != image.Pt(0, 2*r.cfg.Theme.TextSize) {
		t.Errorf("list scrolled to %v", off)
	}
}

func TestDemoRender(t *testing.T) {
	r := newRunner(t)
	r.frame()
	r.frame()
	img := image.NewRGBA(image.Rectangle{Max: r.size})
	canvas := raster.NewCanvas(img, r.face)
	canvas.Clear(r.cfg.Theme.Background.NRGBA())
	bg := color.RGBAModel.Convert(r.cfg.Theme.Background.NRGBA())
	r.ops.Replay(canvas)
	if err := canvas.Err(); err != nil {
		t.Fatal(err)
	}
	if got := img.At(1, 1); got != bg {
		t.Errorf("padding pixel %v, want %v", got, bg)
	}
	apply := r.ctx.Info("apply").Rect
	if got := img.At(apply.Min.X+apply.Dx()/2, apply.Min.Y+2); got == bg {
		t.Errorf("button pixel %v is the background", got)
	}
}

func TestPrintTree(t *testing.T) {
	r := newRunner(t)
	r.frame()
	var buf bytes.Buffer
	printTree(&buf, r.ctx, r.demo.ids, 200)
	out := buf.String()
	for _, want := range []string{"sidebar", "section/Network", "list", `"Apply"`, "frame 1:"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree lacks %q:\n%s", want, out)
		}
	}
}
