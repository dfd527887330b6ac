// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"context"
	"log/slog"

	"boxui.org/io/input"
	"boxui.org/op"
	"boxui.org/text"
	"boxui.org/unit"
)

// Option configures a Context.
//
// Example:
//
//	ops := new(op.Ops)
//	ctx := layout.NewContext(
//		layout.WithBackend(ops),
//		layout.WithMeasurer(gofont.Face()),
//	)
type Option func(*options)

type options struct {
	backend  op.Backend
	measurer text.Measurer
	input    input.Source
	logger   *slog.Logger
	metric   unit.Metric
	validate bool
	// Initial capacities.
	nodes, identities int
}

func defaultOptions() options {
	return options{
		measurer:   text.Fixed{Advance: 8},
		input:      new(input.State),
		logger:     slog.New(nopHandler{}),
		validate:   true,
		nodes:      1024,
		identities: 256,
	}
}

// WithBackend sets the Backend boxes are drawn through. Without a
// backend, Draw only computes geometry and hit tests.
func WithBackend(b op.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithMeasurer sets the source of glyph advances. The default is a
// fixed advance of 8 pixels.
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithInput sets the input state used for hit testing.
func WithInput(s input.Source) Option {
	return func(o *options) {
		o.input = s
	}
}

// WithLogger sets the logger. By default, a Context produces no log
// output.
//
// Log levels used:
//   - [slog.LevelDebug]: per frame statistics
//   - [slog.LevelInfo]: identity map growth
//   - [slog.LevelWarn]: builder errors
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(nopHandler{})
		}
		o.logger = l
	}
}

// WithMetric sets the conversion of absolute units.
func WithMetric(m unit.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithValidation enables or disables the unit contradiction checks.
// Stack discipline is always checked.
func WithValidation(enable bool) Option {
	return func(o *options) {
		o.validate = enable
	}
}

// WithCapacity sets the maximum number of boxes per frame and the
// initial number of identities. Zero means the default. A frame with
// more boxes than the capacity panics.
func WithCapacity(nodes, identities int) Option {
	return func(o *options) {
		if nodes > 0 {
			o.nodes = nodes
		}
		if identities > 0 {
			o.identities = identities
		}
	}
}

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
