package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box draws a border around area with title set into the top edge.
func Box(f Frame, area Rect, border lipgloss.Border, style, titleStyle lipgloss.Style, title string) error {
	if area.Width < 2 || area.Height < 2 {
		return f.Render(area, "")
	}
	inner := area.Width - 2
	if ansi.StringWidth(title) > inner {
		title = ansi.Truncate(title, inner, "")
	}
	top := style.Render(border.TopLeft) +
		titleStyle.Render(title) +
		style.Render(strings.Repeat(border.Top, inner-ansi.StringWidth(title))+border.TopRight)
	middle := border.Left + strings.Repeat(" ", inner) + border.Right
	bottom := border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight

	rows := make([]string, 0, area.Height)
	rows = append(rows, top)
	for i := 0; i < area.Height-2; i++ {
		rows = append(rows, style.Render(middle))
	}
	rows = append(rows, style.Render(bottom))
	return f.Render(area, strings.Join(rows, "\n"))
}
