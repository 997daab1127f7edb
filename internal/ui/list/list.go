// Package list is the pickable item list shown behind the help overlay. It
// owns cursor movement, the filter prompt and the pick action, and reports
// the commands it offers through command.Source.
package list

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/keys"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/theme"
	"github.com/atomicstack/popup-pick/internal/ui/state"
)

// PickedMsg is emitted when the user picks the item under the cursor.
type PickedMsg struct {
	Item state.Item
}

// Model is the list component.
type Model struct {
	level     *state.Level
	keys      keys.Map
	styles    *theme.Styles
	filtering bool
	loading   bool
	height    int

	caret      cursor.Model
	caretDirty bool
	focused    bool
}

// New builds an empty list.
func New(styles *theme.Styles, km keys.Map) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	return &Model{
		level:  state.NewLevel(nil),
		keys:   km,
		styles: styles,
		caret:  c,
	}
}

// SetItems replaces the listed items. The filter is kept and reapplied, and
// the cursor follows the highlighted value when it is still listed.
func (m *Model) SetItems(items []state.Item) {
	m.loading = false
	prev, had := m.level.Current()
	m.level.UpdateItems(items)
	if had {
		if idx := m.level.IndexOf(prev.Value); idx >= 0 {
			m.level.Cursor = idx
		}
	}
	m.level.EnsureCursorVisible(m.itemRows())
}

func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

func (m *Model) Loading() bool {
	return m.loading
}

// SetHeight sets the number of rows View renders, prompt included.
func (m *Model) SetHeight(rows int) {
	m.height = rows
	m.level.EnsureCursorVisible(m.itemRows())
}

// Items returns the items currently shown, after filtering.
func (m *Model) Items() []state.Item {
	return m.level.Items
}

func (m *Model) Current() (state.Item, bool) {
	return m.level.Current()
}

func (m *Model) Cursor() int {
	return m.level.Cursor
}

func (m *Model) Filter() string {
	return m.level.Filter
}

// Filtering reports whether key presses are being typed into the filter.
func (m *Model) Filtering() bool {
	return m.filtering
}

// Focus starts the filter caret.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.caret.Focus()
}

// UpdateCaret forwards blink messages to the filter caret. It returns a
// command restarting the blink after the caret moved.
func (m *Model) UpdateCaret(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.caretDirty && m.focused {
		m.caretDirty = false
		m.caret.Blink = false
		if cmd := m.caret.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// HandleKey processes a key event and reports whether it was consumed. While
// the filter is being edited printable keys go to the filter first.
func (m *Model) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.filtering {
		if m.handleFilterInput(msg) {
			return true, nil
		}
		if msg.Type == tea.KeyEnter {
			m.filtering = false
			return true, nil
		}
	}

	rows := m.itemRows()
	switch {
	case key.Matches(msg, m.keys.ExitPopup):
		if !m.filtering && m.level.Filter == "" {
			return false, nil
		}
		m.filtering = false
		m.setFilter("")
	case key.Matches(msg, m.keys.MoveUp):
		m.moved(m.level.MoveCursorUp())
	case key.Matches(msg, m.keys.MoveDown):
		m.moved(m.level.MoveCursorDown())
	case key.Matches(msg, m.keys.PageUp):
		m.moved(m.level.MoveCursorPageUp(rows))
	case key.Matches(msg, m.keys.PageDown):
		m.moved(m.level.MoveCursorPageDown(rows))
	case key.Matches(msg, m.keys.Home):
		m.moved(m.level.MoveCursorHome())
	case key.Matches(msg, m.keys.End):
		m.moved(m.level.MoveCursorEnd())
	case key.Matches(msg, m.keys.Select):
		item, ok := m.level.Current()
		if !ok {
			return true, nil
		}
		events.List.Pick(item.Value)
		return true, func() tea.Msg { return PickedMsg{Item: item} }
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.caretDirty = true
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) moved(changed bool) {
	if !changed {
		return
	}
	m.level.EnsureCursorVisible(m.itemRows())
	events.List.Cursor(m.level.Cursor)
}

func (m *Model) setFilter(query string) {
	before := m.level.FilterCursorPos()
	m.level.SetFilter(query, 0)
	m.filterChanged(before)
}

func (m *Model) filterChanged(before int) {
	if before != m.level.FilterCursorPos() {
		m.caretDirty = true
	}
	m.level.EnsureCursorVisible(m.itemRows())
	events.List.Filter(m.level.Filter, len(m.level.Items))
}

// Commands implements command.Source. The list never blocks.
func (m *Model) Commands(out []command.Info, _ bool) ([]command.Info, command.Blocking) {
	hasItems := len(m.level.Items) > 0
	out = append(out,
		command.New(command.Move(m.keys), hasItems, true),
		command.New(command.Page(m.keys), hasItems, false).WithOrder(1),
		command.New(command.Jump(m.keys), hasItems, true).WithOrder(2),
		command.New(command.Pick(m.keys), hasItems, true),
		command.New(command.Filter(m.keys), !m.filtering, true).WithOrder(1),
	)
	if m.filtering || m.level.Filter != "" {
		out = append(out, command.New(command.ClearFilter(m.keys), true, true).WithOrder(2))
	}
	out = append(out, command.New(command.ForceQuit(m.keys), true, true).WithOrder(97))
	return out, command.PassOn
}
