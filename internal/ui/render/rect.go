package render

import "fmt"

// Rect is an area of the terminal measured in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%d,%d", r.Width, r.Height, r.X, r.Y)
}

// Empty reports whether the area has no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Inner shrinks the area by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	inner := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
	inner.Width = max(inner.Width, 0)
	inner.Height = max(inner.Height, 0)
	return inner
}

// SplitBottom cuts rows off the bottom of the area. The top part keeps at
// least one row when r has any.
func (r Rect) SplitBottom(rows int) (top, bottom Rect) {
	rows = min(max(rows, 0), max(r.Height-1, 0))
	top = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - rows}
	bottom = Rect{X: r.X, Y: r.Y + top.Height, Width: r.Width, Height: rows}
	return top, bottom
}

// CenteredRect returns a width×height area centred in r, shrunk to fit.
func CenteredRect(width, height int, r Rect) Rect {
	width = min(width, r.Width)
	height = min(height, r.Height)
	return Rect{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y + (r.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
