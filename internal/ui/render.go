package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"menucontainer/internal/ui/textutil"
)

// shadowGlyph picks a shade block for the shadow opacity.
func shadowGlyph(opacity float64) string {
	switch {
	case opacity <= 0:
		return ""
	case opacity < 0.34:
		return "░"
	case opacity < 0.67:
		return "▒"
	default:
		return "▓"
	}
}

// fitBlock pads or truncates lines to exactly h lines of w columns.
func fitBlock(lines []string, w, h int) []string {
	out := make([]string, h)
	for i := range out {
		var l string
		if i < len(lines) {
			l = lines[i]
		}
		out[i] = textutil.FitStyled(l, w)
	}
	return out
}

// composeRow places the central line at column x over the background row.
// Both inputs are exactly width columns wide. A shadow glyph is drawn in the
// background column adjacent to the central panel's exposed edge.
func composeRow(background, central string, x, width int, shadow string) string {
	switch {
	case x == 0:
		return central
	case x >= width || x <= -width:
		return background
	case x > 0:
		left := ansi.Cut(background, 0, x)
		if shadow != "" {
			left = ansi.Cut(background, 0, x-1) + Styles.Shadow.Render(shadow)
		}
		return left + ansi.Cut(central, 0, width-x)
	default:
		right := ansi.Cut(background, width+x, width)
		if shadow != "" {
			right = Styles.Shadow.Render(shadow) + ansi.Cut(background, width+x+1, width)
		}
		return ansi.Cut(central, -x, width) + right
	}
}

// compose renders the panel stack: the visible side panel underneath, the
// central panel shifted by x columns on top.
func compose(background, central []string, x, width int, shadow string) string {
	rows := make([]string, len(central))
	for i := range central {
		bg := strings.Repeat(" ", width)
		if i < len(background) {
			bg = background[i]
		}
		rows[i] = composeRow(bg, central[i], x, width, shadow)
	}
	return strings.Join(rows, "\n")
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

// overlayCenter draws box centered over the rendered block base.
func overlayCenter(base, box string, width int) string {
	rows := strings.Split(base, "\n")
	boxRows := strings.Split(box, "\n")
	bw := 0
	for _, r := range boxRows {
		bw = max(bw, ansi.StringWidth(r))
	}
	bw = min(bw, width)
	x := (width - bw) / 2
	y := max((len(rows)-len(boxRows))/2, 0)
	for i, r := range boxRows {
		if y+i >= len(rows) {
			break
		}
		row := rows[y+i]
		rows[y+i] = ansi.Cut(row, 0, x) + textutil.FitStyled(r, bw) + ansi.Cut(row, x+bw, width)
	}
	return strings.Join(rows, "\n")
}
