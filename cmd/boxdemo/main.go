// SPDX-License-Identifier: Unlicense OR MIT

// Command boxdemo lays out and renders a sample user interface.
//
// It builds a few frames of a settings panel, feeding them the pointer
// position and clicks given on the command line, renders the last frame
// to a PNG file and prints the laid out box tree.
//
//	boxdemo -config demo.toml -mouse 120,80 -click -o demo.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"boxui.org/config"
	"boxui.org/io/input"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/raster"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	outPath    = flag.String("o", "boxdemo.png", "output PNG file")
	width      = flag.Int("width", 640, "window width in pixels")
	height     = flag.Int("height", 400, "window height in pixels")
	mouse      = flag.String("mouse", "", "pointer position as x,y")
	click      = flag.Bool("click", false, "click the primary button at the pointer")
	frames     = flag.Int("frames", 3, "number of frames to run before rendering")
	tree       = flag.Bool("tree", true, "print the laid out box tree")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: boxdemo [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "boxdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	if *width <= 0 || *height <= 0 {
		return errors.New("width and height must be positive")
	}
	if *frames < 1 {
		return errors.New("at least one frame is needed")
	}
	face, err := cfg.Face()
	if err != nil {
		return err
	}
	logger := cfg.Logger(os.Stderr)

	var in input.State
	in.Resize(image.Pt(*width, *height))
	if *mouse != "" {
		var p image.Point
		if _, err := fmt.Sscanf(*mouse, "%d,%d", &p.X, &p.Y); err != nil {
			return fmt.Errorf("invalid -mouse %q: %w", *mouse, err)
		}
		in.Move(p)
	}

	ops := new(op.Ops)
	opts := append(cfg.Options(face, logger), layout.WithBackend(ops), layout.WithInput(&in))
	ctx := layout.NewContext(opts...)
	d := newDemo(&cfg.Theme)

	n := *frames
	if *click && n < 3 {
		// Hover, press and release each take a frame.
		n = 3
	}
	for i := 0; i < n; i++ {
		in.Frame()
		if *click {
			switch i {
			case n - 2:
				in.Press(input.ButtonPrimary)
			case n - 1:
				in.Release(input.ButtonPrimary)
			}
		}
		ops.Reset()
		if err := d.frame(ctx, image.Pt(*width, *height)); err != nil {
			return err
		}
		if err := ctx.Draw(); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	canvas := raster.NewCanvas(img, face)
	canvas.Clear(cfg.Theme.Background.NRGBA())
	ops.Replay(canvas)
	if err := canvas.Err(); err != nil {
		return err
	}
	if err := writePNG(*outPath, img); err != nil {
		return err
	}
	logger.Info("rendered", "file", *outPath, "stats", fmt.Sprintf("%+v", ctx.Stats()))
	if *tree {
		printTree(stdout, ctx, d.ids, terminalWidth())
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
