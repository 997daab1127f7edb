package list

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleFilterInput(msg tea.KeyMsg) bool {
	before := m.level.FilterCursorPos()
	switch msg.String() {
	case "ctrl+u":
		if m.level.Filter == "" {
			return false
		}
		m.setFilter("")
		return true
	case "ctrl+w":
		if !m.level.DeleteFilterWordBackward() {
			return false
		}
		m.filterChanged(before)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.level.DeleteFilterRuneBackward() {
			return false
		}
		m.filterChanged(before)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes), before)
	case tea.KeySpace:
		return m.appendToFilter(" ", before)
	case tea.KeyLeft:
		if !m.level.MoveFilterCursorRuneBackward() {
			return false
		}
		m.caretDirty = true
		return true
	case tea.KeyRight:
		if !m.level.MoveFilterCursorRuneForward() {
			return false
		}
		m.caretDirty = true
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string, before int) bool {
	if !m.level.InsertFilterText(text) {
		return false
	}
	m.filterChanged(before)
	return true
}
