package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrOutOfBounds is returned when drawing outside the frame.
var ErrOutOfBounds = errors.New("area outside frame")

// Frame is the surface components draw on.
type Frame interface {
	// Size is the full drawable area.
	Size() Rect
	// Clear blanks the area.
	Clear(area Rect) error
	// Render paints content into the area, one line per row. Lines are
	// clipped to the area's width; surplus lines are dropped.
	Render(area Rect, content string) error
}

// Canvas is a Frame backed by a grid of ANSI-styled lines, composited on top
// of whatever was painted first.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas creates a canvas of the given size with base as the background.
func NewCanvas(width, height int, base string) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.lines = make([]string, c.height)
	var src []string
	if base != "" {
		src = strings.Split(base, "\n")
	}
	for y := range c.lines {
		line := ""
		if y < len(src) {
			line = src[y]
		}
		c.lines[y] = fit(line, c.width)
	}
	return c
}

func (c *Canvas) Size() Rect {
	return Rect{Width: c.width, Height: c.height}
}

func (c *Canvas) Clear(area Rect) error {
	return c.Render(area, "")
}

func (c *Canvas) Render(area Rect, content string) error {
	if area.Empty() {
		return nil
	}
	if !c.Size().Contains(area) {
		return fmt.Errorf("%w: %s in %s", ErrOutOfBounds, area, c.Size())
	}
	rows := strings.Split(content, "\n")
	for i := 0; i < area.Height; i++ {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		y := area.Y + i
		c.lines[y] = splice(c.lines[y], fit(row, area.Width), area.X, area.Width)
	}
	return nil
}

// String returns the composited canvas.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// splice replaces width cells of line starting at column x with segment.
func splice(line, segment string, x, width int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, x+width, "")
	return left + ansi.ResetStyle + segment + ansi.ResetStyle + right
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if w := ansi.StringWidth(s); w > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
