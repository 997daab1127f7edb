// Package cmdbar renders the single-line command bar at the bottom of the
// screen from the commands the visible components offer.
package cmdbar

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/theme"
)

const separator = " │ "

// Bar draws command labels side by side.
type Bar struct {
	styles *theme.Styles
}

func New(styles *theme.Styles) *Bar {
	if styles == nil {
		styles = theme.Default()
	}
	return &Bar{styles: styles}
}

// Entries returns the commands shown in the bar: available ones only, first
// occurrence of each label kept, ordered by Order with ties left in
// collection order.
func Entries(cmds []command.Info) []command.Info {
	out := make([]command.Info, 0, len(cmds))
	for _, c := range cmds {
		if !c.Available {
			continue
		}
		if slices.ContainsFunc(out, c.Same) {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b command.Info) int {
		return a.Order - b.Order
	})
	return out
}

// View renders the bar truncated to width.
func (b *Bar) View(cmds []command.Info, width int) string {
	entries := Entries(cmds)
	parts := make([]string, 0, len(entries))
	for _, c := range entries {
		style := b.styles.CommandBarKey
		if !c.Enabled {
			style = b.styles.CommandBarOff
		}
		parts = append(parts, render(style, c.Label()))
	}
	line := strings.Join(parts, render(b.styles.CommandSeparator, separator))
	if width > 0 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return render(b.styles.CommandBar, line)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
