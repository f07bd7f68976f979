package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws the text field on one visual line no wider than w.
func renderInputLine(w int, inputView string) string {
	w = max(w, 10)
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	return cutLine(line, w)
}

// cutLine truncates s to w cells, terminating styling so it does not bleed.
func cutLine(s string, w int) string {
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Cut(s, 0, w) + "\x1b[0m"
}

// fitCell centers s in a cell of exactly w columns, truncating with an ellipsis.
func fitCell(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) > w {
		if w == 1 {
			return xansi.Cut(s, 0, 1)
		}
		s = xansi.Cut(s, 0, w-1) + "…"
	}
	pad := w - xansi.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
