package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Map is the key table shared by every component.
type Map struct {
	OpenHelp  key.Binding
	ExitPopup key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	Filter    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Default returns the built-in bindings.
func Default() Map {
	return Map{
		OpenHelp:  binding([]string{"?"}, "?", "open help"),
		ExitPopup: binding([]string{"esc"}, "esc", "close"),
		MoveUp:    binding([]string{"up", "k"}, "↑", "move up"),
		MoveDown:  binding([]string{"down", "j"}, "↓", "move down"),
		PageUp:    binding([]string{"pgup"}, "pgup", "page up"),
		PageDown:  binding([]string{"pgdown"}, "pgdn", "page down"),
		Home:      binding([]string{"home", "g"}, "home", "first item"),
		End:       binding([]string{"end", "G"}, "end", "last item"),
		Select:    binding([]string{"enter"}, "enter", "pick"),
		Filter:    binding([]string{"/"}, "/", "filter"),
		Quit:      binding([]string{"q"}, "q", "quit"),
		ForceQuit: binding([]string{"ctrl+c"}, "ctrl+c", "force quit"),
	}
}

func binding(keys []string, label, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(label, desc),
	)
}

func (m *Map) byName() map[string]*key.Binding {
	return map[string]*key.Binding{
		"open_help":  &m.OpenHelp,
		"exit_popup": &m.ExitPopup,
		"move_up":    &m.MoveUp,
		"move_down":  &m.MoveDown,
		"page_up":    &m.PageUp,
		"page_down":  &m.PageDown,
		"home":       &m.Home,
		"end":        &m.End,
		"select":     &m.Select,
		"filter":     &m.Filter,
		"quit":       &m.Quit,
		"force_quit": &m.ForceQuit,
	}
}

// Names lists the binding names accepted by Apply, sorted.
func Names() []string {
	var m Map
	names := make([]string, 0, 12)
	for name := range m.byName() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply rebinds the named bindings. The first key of each override becomes
// the label shown in help. Unknown names and empty key lists are rejected
// before anything is changed.
func (m *Map) Apply(overrides map[string][]string) error {
	table := m.byName()
	for name, keys := range overrides {
		if _, ok := table[name]; !ok {
			return fmt.Errorf("unknown key binding %q (valid: %s)", name, strings.Join(Names(), ", "))
		}
		if len(keys) == 0 {
			return fmt.Errorf("key binding %q has no keys", name)
		}
	}
	for name, keys := range overrides {
		b := table[name]
		desc := b.Help().Desc
		*b = binding(keys, keys[0], desc)
	}
	return nil
}

// Label joins the help labels of the bindings, e.g. "↑↓".
func Label(bindings ...key.Binding) string {
	var b strings.Builder
	for i, kb := range bindings {
		label := kb.Help().Key
		if i > 0 && len([]rune(label)) > 1 {
			b.WriteString("/")
		}
		b.WriteString(label)
	}
	return b.String()
}
