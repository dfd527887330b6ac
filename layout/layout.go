// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"golang.org/x/exp/constraints"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of boxes along one axis.
type Alignment uint8

// Detach is the anchor of a box placed outside the flow of its
// siblings, relative to the rectangle of its parent.
type Detach uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// Start packs boxes at the start of the axis.
	Start Alignment = iota
	// End packs boxes at the end of the axis.
	End
	// Middle centers boxes.
	Middle
	// SpaceAround distributes the free space in equal gaps before,
	// between and after boxes.
	SpaceAround
	// SpaceBetween distributes the free space in equal gaps between
	// boxes only. A single box is packed at the start.
	SpaceBetween
)

const (
	DetachNone Detach = iota
	// Above the parent.
	DetachTopLeft
	DetachTopCenter
	DetachTopRight
	// Below the parent.
	DetachBottomLeft
	DetachBottomCenter
	DetachBottomRight
	// Left of the parent.
	DetachLeftTop
	DetachLeftCenter
	DetachLeftBottom
	// Right of the parent.
	DetachRightTop
	DetachRightCenter
	DetachRightBottom
)

// Anchor returns the position of a box of the given size detached from
// the rectangle p.
func (d Detach) Anchor(p image.Rectangle, size image.Point) image.Point {
	pw, ph := p.Dx(), p.Dy()
	switch d {
	case DetachTopLeft:
		return image.Pt(p.Min.X, p.Min.Y-size.Y)
	case DetachTopCenter:
		return image.Pt(p.Min.X+(pw-size.X)/2, p.Min.Y-size.Y)
	case DetachTopRight:
		return image.Pt(p.Max.X-size.X, p.Min.Y-size.Y)
	case DetachBottomLeft:
		return image.Pt(p.Min.X, p.Max.Y)
	case DetachBottomCenter:
		return image.Pt(p.Min.X+(pw-size.X)/2, p.Max.Y)
	case DetachBottomRight:
		return image.Pt(p.Max.X-size.X, p.Max.Y)
	case DetachLeftTop:
		return image.Pt(p.Min.X-size.X, p.Min.Y)
	case DetachLeftCenter:
		return image.Pt(p.Min.X-size.X, p.Min.Y+(ph-size.Y)/2)
	case DetachLeftBottom:
		return image.Pt(p.Min.X-size.X, p.Max.Y-size.Y)
	case DetachRightTop:
		return image.Pt(p.Max.X, p.Min.Y)
	case DetachRightCenter:
		return image.Pt(p.Max.X, p.Min.Y+(ph-size.Y)/2)
	case DetachRightBottom:
		return image.Pt(p.Max.X, p.Max.Y-size.Y)
	default:
		return p.Min
	}
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	return 1 - a
}

func axisPoint(a Axis, main, cross int) image.Point {
	if a == Horizontal {
		return image.Point{main, cross}
	} else {
		return image.Point{cross, main}
	}
}

func axisMain(a Axis, sz image.Point) int {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func clamp[T constraints.Integer | constraints.Float](v, min, max T) T {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Detach) String() string {
	switch d {
	case DetachNone:
		return "None"
	case DetachTopLeft:
		return "TopLeft"
	case DetachTopCenter:
		return "TopCenter"
	case DetachTopRight:
		return "TopRight"
	case DetachBottomLeft:
		return "BottomLeft"
	case DetachBottomCenter:
		return "BottomCenter"
	case DetachBottomRight:
		return "BottomRight"
	case DetachLeftTop:
		return "LeftTop"
	case DetachLeftCenter:
		return "LeftCenter"
	case DetachLeftBottom:
		return "LeftBottom"
	case DetachRightTop:
		return "RightTop"
	case DetachRightCenter:
		return "RightCenter"
	case DetachRightBottom:
		return "RightBottom"
	default:
		panic("unreachable")
	}
}
