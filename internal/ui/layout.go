package ui

import (
	"math"

	"menucontainer/internal/panel"
)

// statusBarHeight is the number of rows reserved below the panels.
const statusBarHeight = 1

// DrawerLayout converts drawer distance units into terminal columns and
// places the three panels. Side panels are pinned to their screen edge;
// only the central panel moves.
type DrawerLayout struct {
	CellsPerUnit float64
	SideWidth    float64 // drawer units
}

// Cells converts a distance in drawer units to columns.
func (l DrawerLayout) Cells(units float64) int {
	return int(math.Round(units * l.CellsPerUnit))
}

// Units converts columns to drawer units.
func (l DrawerLayout) Units(cells int) float64 {
	if l.CellsPerUnit == 0 {
		return 0
	}
	return float64(cells) / l.CellsPerUnit
}

// SideCells is the width of a side panel in columns, capped at the terminal width.
func (l DrawerLayout) SideCells(width int) int {
	c := l.Cells(l.SideWidth)
	if c > width {
		return width
	}
	if c < 0 {
		return 0
	}
	return c
}

// Bounds returns the BoundsFunc for panel id.
func (l DrawerLayout) Bounds(id panel.ID) BoundsFunc {
	return func(width, height int) (x, y, w, h int) {
		h = height - statusBarHeight
		if h < 0 {
			h = 0
		}
		switch id {
		case panel.Left:
			return 0, 0, l.SideCells(width), h
		case panel.Right:
			sw := l.SideCells(width)
			return width - sw, 0, sw, h
		default:
			return 0, 0, width, h
		}
	}
}

// CentralX is the column of the central panel's left edge for offset units.
func (l DrawerLayout) CentralX(offset float64) int {
	return l.Cells(offset)
}
