// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"boxui.org/layout"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	idStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	rectStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	detachedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true)
)

// terminalWidth returns the width of the terminal on stdout, or 80.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// printTree writes the boxes of the last frame, one per line, indented
// by depth and truncated to width columns.
func printTree(w io.Writer, ctx *layout.Context, ids map[layout.Key]string, width int) {
	line := lipgloss.NewStyle().MaxWidth(width)
	ctx.Walk(func(depth int, n layout.Node) {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		if name, ok := ids[n.Key]; ok {
			b.WriteString(idStyle.Render(name))
			b.WriteByte(' ')
		}
		b.WriteString(rectStyle.Render(n.Rect.String()))
		if n.Detached {
			b.WriteString(detachedStyle.Render(" detached"))
		}
		if n.Text != "" {
			b.WriteString(textStyle.Render(fmt.Sprintf(" %q", n.Text)))
		}
		fmt.Fprintln(w, line.Render(b.String()))
	})
	s := ctx.Stats()
	fmt.Fprintln(w, rectStyle.Render(fmt.Sprintf("frame %d: %d boxes, %d identities", s.Frame, s.Nodes, s.Identities)))
}
