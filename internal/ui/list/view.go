package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	indicator   = "▌"
	promptText  = "» "
	placeholder = "(/ to filter)"
)

// View renders the visible items followed by the filter prompt. The result
// has exactly the configured height when one was set.
func (m *Model) View(width int) string {
	rows := m.itemRows()
	lines := make([]string, 0, rows+1)
	switch {
	case m.loading:
		lines = append(lines, render(m.styles.Info, "Loading…"))
	case len(m.level.Items) == 0:
		msg := "(no entries)"
		if m.level.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.level.Filter)
		}
		lines = append(lines, render(m.styles.Info, truncate(msg, width)))
	default:
		m.level.EnsureCursorVisible(rows)
		start := m.level.ViewportOffset
		end := len(m.level.Items)
		if rows > 0 {
			end = min(start+rows, end)
		}
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.itemLine(idx, width))
		}
	}
	for rows > 0 && len(lines) < rows {
		lines = append(lines, "")
	}
	if rows > 0 && len(lines) > rows {
		lines = lines[:rows]
	}
	lines = append(lines, m.prompt(width))
	return strings.Join(lines, "\n")
}

func (m *Model) itemRows() int {
	return max(m.height-1, 0)
}

func (m *Model) itemLine(idx, width int) string {
	item := m.level.Items[idx]
	indicatorStyle, lineStyle := m.styles.ItemIndicator, m.styles.Item
	if idx == m.level.Cursor {
		indicatorStyle, lineStyle = m.styles.SelectedItemIndicator, m.styles.SelectedItem
	}
	text := " " + item.Label
	if width > 1 {
		text = truncate(text, width-1)
		if pad := width - 1 - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return render(indicatorStyle, indicator) + render(lineStyle, text)
}

func (m *Model) prompt(width int) string {
	prompt := render(m.styles.FilterPrompt, promptText)
	filter := m.level.Filter
	if !m.filtering {
		if filter == "" {
			return prompt + render(m.styles.FilterPlaceholder, truncate(placeholder, width-2))
		}
		return prompt + render(m.styles.Filter, truncate(filter, width-2))
	}

	runes := []rune(filter)
	pos := m.level.FilterCursorPos()
	caretRune := " "
	var after string
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = string(runes[pos+1:])
	}
	m.caret.SetChar(caretRune)
	return prompt + render(m.styles.Filter, string(runes[:pos])) + m.caret.View() + render(m.styles.Filter, after)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncate(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
