package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/logging"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/ui/render"
)

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.size()

	bottom := make([]string, 0, 2)
	if m.errMsg != "" {
		bottom = append(bottom, m.errorLine(m.errMsg, width))
	}
	bottom = append(bottom, m.bar.View(command.Collect(false, m.sources()...), width))

	m.list.SetHeight(max(height-len(bottom), 1))
	base := m.list.View(width) + "\n" + strings.Join(bottom, "\n")

	canvas := render.NewCanvas(width, height, base)
	if err := m.overlay.Draw(canvas); err != nil {
		events.UI.DrawError(err)
		logging.Error(err)
		return base
	}
	return canvas.String()
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) errorLine(msg string, width int) string {
	text := fmt.Sprintf("Error: %s", msg)
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	if m.styles.Error == nil {
		return text
	}
	return m.styles.Error.Render(text)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
