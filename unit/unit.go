// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements the length units of box styles.

A Value is a number with a Unit attached. Absolute units (px, mm, cm, in)
convert to pixels through a Metric as soon as a style is resolved. Percent
units are relative to something that is only known during layout: the
parent, the root, the box's own content, the space left over by siblings
or, for heights, the box's own width. Their raw percentage is kept until
the solver has the base it needs.
*/
package unit

import (
	"fmt"
	"math"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

const (
	// UnitPx is device pixels. The zero Value is therefore 0px.
	UnitPx Unit = iota
	// UnitMm is millimeters, converted through Metric.PxPerInch.
	UnitMm
	// UnitCm is centimeters.
	UnitCm
	// UnitIn is inches.
	UnitIn
	// UnitParent is a percentage of the parent's inner size on the
	// same axis.
	UnitParent
	// UnitRoot is a percentage of the root box size on the same axis.
	UnitRoot
	// UnitContent is a percentage of the size of the box's own
	// content.
	UnitContent
	// UnitAvailable is a percentage weight of the space left over by
	// the siblings along the parent's flow axis. Weights are relative
	// to the total of the growers, so a lone Available(50) takes all
	// the space. On the cross axis it is a plain percentage of the
	// parent's inner size minus margins.
	UnitAvailable
	// UnitWidth is a percentage of the box's own resolved width. Only
	// heights may use it.
	UnitWidth
)

// Standard conversion factors.
const (
	PxPerInch = 96
	MmPerInch = 25.4
	CmPerInch = 2.54
)

// Metric converts absolute Values to pixels.
type Metric struct {
	// PxPerInch is the display density. Zero means PxPerInch.
	PxPerInch float32
}

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Mm returns the Value for v millimeters.
func Mm(v float32) Value {
	return Value{V: v, U: UnitMm}
}

// Cm returns the Value for v centimeters.
func Cm(v float32) Value {
	return Value{V: v, U: UnitCm}
}

// In returns the Value for v inches.
func In(v float32) Value {
	return Value{V: v, U: UnitIn}
}

// Parent returns the Value for pct percent of the parent size.
func Parent(pct float32) Value {
	return Value{V: pct, U: UnitParent}
}

// Root returns the Value for pct percent of the root size.
func Root(pct float32) Value {
	return Value{V: pct, U: UnitRoot}
}

// Content returns the Value for pct percent of the content size.
func Content(pct float32) Value {
	return Value{V: pct, U: UnitContent}
}

// Available returns the Value for a pct weight of the available
// space.
func Available(pct float32) Value {
	return Value{V: pct, U: UnitAvailable}
}

// OfWidth returns the Value for pct percent of the box width.
func OfWidth(pct float32) Value {
	return Value{V: pct, U: UnitWidth}
}

// IsAbsolute reports whether v converts to pixels without layout
// information.
func (v Value) IsAbsolute() bool {
	return v.U <= UnitIn
}

// IsPercent reports whether v is relative to a layout quantity.
func (v Value) IsPercent() bool {
	return !v.IsAbsolute()
}

// Of returns pct percent of base, rounded to the nearest pixel.
func (v Value) Of(base int) int {
	return Round(float32(base) * v.V / 100)
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitMm:
		return "mm"
	case UnitCm:
		return "cm"
	case UnitIn:
		return "in"
	case UnitParent:
		return "%parent"
	case UnitRoot:
		return "%root"
	case UnitContent:
		return "%content"
	case UnitAvailable:
		return "%avail"
	case UnitWidth:
		return "%width"
	default:
		panic("unknown unit")
	}
}

// Px converts an absolute value to pixels. It panics for percent
// units.
func (m Metric) Px(v Value) int {
	switch v.U {
	case UnitPx:
		return Round(v.V)
	case UnitMm:
		return Round(v.V * m.ppi() / MmPerInch)
	case UnitCm:
		return Round(v.V * m.ppi() / CmPerInch)
	case UnitIn:
		return Round(v.V * m.ppi())
	default:
		panic(fmt.Errorf("unit: %v is not an absolute unit", v.U))
	}
}

func (m Metric) ppi() float32 {
	if m.PxPerInch == 0 {
		return PxPerInch
	}
	return m.PxPerInch
}

// Round rounds v to the nearest integer, halves away from zero.
func Round(v float32) int {
	return int(math.Round(float64(v)))
}
