package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-pick/internal/logging/events"
)

type keyTarget struct {
	name   string
	handle func(tea.KeyMsg) (bool, tea.Cmd)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		events.UI.Key(keyMsg.String(), "app")
		return m.quit()
	}
	for _, target := range m.keyTargets() {
		if handled, cmd := target.handle(keyMsg); handled {
			events.UI.Key(keyMsg.String(), target.name)
			return cmd
		}
	}
	events.UI.Key(keyMsg.String(), "")
	return nil
}

// keyTargets returns the components offered a key press, in order.
func (m *Model) keyTargets() []keyTarget {
	overlay := keyTarget{name: "help", handle: func(msg tea.KeyMsg) (bool, tea.Cmd) {
		return m.overlay.HandleKey(msg), nil
	}}
	if m.overlay.IsVisible() {
		return []keyTarget{overlay}
	}
	list := keyTarget{name: "list", handle: m.list.HandleKey}
	app := keyTarget{name: "app", handle: m.handleAppKey}
	if m.list.Filtering() {
		return []keyTarget{list, overlay, app}
	}
	return []keyTarget{overlay, list, app}
}

func (m *Model) handleAppKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return true, m.quit()
	}
	return false, nil
}
