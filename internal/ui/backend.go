package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/logging"
	"github.com/atomicstack/popup-pick/internal/state"
	uistate "github.com/atomicstack/popup-pick/internal/ui/state"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	m.list.SetLoading(false)
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = evt.Err.Error()
		m.list.SetLoading(false)
		return
	}
	if res := m.dispatcher.Handle(evt); !res.ItemsUpdated {
		return
	}
	m.errMsg = ""
	m.list.SetItems(itemsFromEntries(m.items.Entries()))
}

func itemsFromEntries(entries []state.Entry) []uistate.Item {
	items := make([]uistate.Item, len(entries))
	for i, e := range entries {
		items[i] = uistate.Item{Value: e.Value, Label: e.Label}
	}
	return items
}
