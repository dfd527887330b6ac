// SPDX-License-Identifier: Unlicense OR MIT

package opconst

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeRect OpType = iota + firstOpIndex
	TypeImage
	TypeText
	TypeScissor
	TypePopScissor
)

const (
	TypeRectLen       = 1 + 4*4 + 4 + 4 + 4 + 4
	TypeImageLen      = 1 + 4*4 + 4
	TypeTextLen       = 1 + 4*2 + 4 + 4 + 4 + 4 + 4
	TypeScissorLen    = 1 + 4*4
	TypePopScissorLen = 1
)

func (t OpType) Size() int {
	return [...]int{
		TypeRectLen,
		TypeImageLen,
		TypeTextLen,
		TypeScissorLen,
		TypePopScissorLen,
	}[t-firstOpIndex]
}

func (t OpType) NumRefs() int {
	switch t {
	case TypeImage, TypeText:
		return 1
	default:
		return 0
	}
}

func (t OpType) String() string {
	switch t {
	case TypeRect:
		return "Rect"
	case TypeImage:
		return "Image"
	case TypeText:
		return "Text"
	case TypeScissor:
		return "Scissor"
	case TypePopScissor:
		return "PopScissor"
	default:
		panic("unknown op type")
	}
}
