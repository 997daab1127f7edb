package command

import "strings"

// Text is the display text of a command shared by the command bar and the
// help overlay.
type Text struct {
	Name     string
	Desc     string
	Group    string
	HideHelp bool
}

// Hidden returns a copy of the text excluded from the help overlay.
func (t Text) Hidden() Text {
	t.HideHelp = true
	return t
}

// Info describes one command a component currently offers.
type Info struct {
	Text      Text
	Enabled   bool
	Available bool
	Order     int
}

// New builds an Info with the default order.
func New(text Text, enabled, available bool) Info {
	return Info{Text: text, Enabled: enabled, Available: available}
}

// WithOrder returns a copy of the command with a different rank. Lower ranks
// are shown first within a group.
func (i Info) WithOrder(order int) Info {
	i.Order = order
	return i
}

// Label is the short text shown for the command.
func (i Info) Label() string {
	return i.Text.Name
}

// Same reports whether both commands share the same label, group and
// description.
func (i Info) Same(other Info) bool {
	return compareIdentity(i, other) == 0
}

func compareIdentity(a, b Info) int {
	if c := strings.Compare(a.Text.Name, b.Text.Name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Text.Desc, b.Text.Desc); c != 0 {
		return c
	}
	return strings.Compare(a.Text.Group, b.Text.Group)
}
