package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/ui/list"
)

// appCommands reports the commands handled by the model itself.
type appCommands struct {
	m *Model
}

func (a appCommands) Commands(out []command.Info, _ bool) ([]command.Info, command.Blocking) {
	out = append(out, command.New(command.Quit(a.m.keys), !a.m.list.Filtering(), true).WithOrder(98))
	return out, command.PassOn
}

// CommandList returns every command the picker knows about, as shown in the
// help overlay.
func (m *Model) CommandList() []command.Info {
	return command.Aggregate(command.Collect(true, m.sources()...))
}

func (m *Model) handlePickedMsg(msg tea.Msg) tea.Cmd {
	picked, ok := msg.(list.PickedMsg)
	if !ok {
		return nil
	}
	item := picked.Item
	m.picked = &item
	events.App.Exit(item.Value, true)
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	events.App.Exit("", false)
	return tea.Quit
}
