// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "fmt"

// ErrorKind classifies misuse of the builder API.
type ErrorKind uint8

const (
	// ErrUnitType is a unit used where it has no meaning.
	ErrUnitType ErrorKind = iota + 1
	// ErrNode is a parent and child whose sizes depend on each other.
	ErrNode
	// ErrLeafNode is a content relative size on a box without content.
	ErrLeafNode
	// ErrRootNode is a root with a parent relative size, or a root
	// begun or ended out of sequence.
	ErrRootNode
	// ErrMissingBegin is an EndBox without a matching BeginBox.
	ErrMissingBegin
	// ErrMissingEnd is a frame ended or drawn with boxes still open.
	ErrMissingEnd
	// ErrTextNode is text inserted outside a box.
	ErrTextNode
	// ErrTextEscape is an unknown markup directive.
	ErrTextEscape
)

// Error is a builder error. Once a builder call fails, the Context
// ignores every call until the next BeginRoot.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("layout: %v: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Msg == ""
}

func (k ErrorKind) String() string {
	switch k {
	case ErrUnitType:
		return "unit type contradiction"
	case ErrNode:
		return "node contradiction"
	case ErrLeafNode:
		return "leaf node contradiction"
	case ErrRootNode:
		return "root node contradiction"
	case ErrMissingBegin:
		return "missing begin"
	case ErrMissingEnd:
		return "missing end"
	case ErrTextNode:
		return "text node contradiction"
	case ErrTextEscape:
		return "unknown text escape"
	default:
		panic("unreachable")
	}
}
