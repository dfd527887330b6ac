// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"strings"

	"boxui.org/layout"
	"boxui.org/text"
	"boxui.org/unit"
)

func ExampleContext() {
	ctx := layout.NewContext(layout.WithMeasurer(text.Fixed{Advance: 8}))

	ctx.BeginRoot(layout.Style{
		Width:   unit.Px(800),
		Height:  unit.Px(600),
		Padding: layout.UniformEdges(unit.Px(10)),
		Gap:     unit.Px(10),
	})
	ctx.BeginBox(layout.Style{Width: unit.Px(200), Height: unit.Parent(100)}, "sidebar")
	ctx.EndBox()
	ctx.BeginBox(layout.Style{
		Width:  unit.Available(100),
		Height: unit.Content(100),
		Mode:   layout.Flow{Axis: layout.Vertical},
	}, "main")
	ctx.InsertText(text.Style{Size: 16}, "Hello, world")
	ctx.EndBox()
	ctx.EndRoot()
	if err := ctx.Draw(); err != nil {
		fmt.Println(err)
		return
	}

	ctx.Walk(func(depth int, n layout.Node) {
		fmt.Printf("%s%v", strings.Repeat("  ", depth), n.Rect)
		if n.Text != "" {
			fmt.Printf(" %q", n.Text)
		}
		fmt.Println()
	})
	// Output:
	// (0,0)-(800,600)
	//   (10,10)-(210,590)
	//   (220,10)-(790,26)
	//     (220,10)-(316,26) "Hello, world"
}
