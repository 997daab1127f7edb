package help

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/keys"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/theme"
	"github.com/atomicstack/popup-pick/internal/ui/state"
)

const (
	popupWidth  = 65
	popupHeight = 24
	title       = "Help"
)

// scrollThreshold keeps the selected line within the top third of the popup
// once the body starts scrolling.
const scrollThreshold = popupHeight / 3

// Overlay is the help popup listing every command the application offers.
// It is hidden until the help key is pressed and, while shown, takes every
// key event and hides the commands of every other component.
type Overlay struct {
	cmds      []command.Info
	visible   bool
	selection state.Selection
	styles    *theme.Styles
	keys      keys.Map
	footer    string
	// blocked is set while another component captures the help key.
	blocked bool
}

// New builds a hidden overlay. footer is shown right-aligned at the bottom
// of the popup, normally the program name and version.
func New(styles *theme.Styles, km keys.Map, footer string) *Overlay {
	if styles == nil {
		styles = theme.Default()
	}
	return &Overlay{styles: styles, keys: km, footer: footer}
}

// SetCommands replaces the listed commands with the aggregated form of batch.
// The selection is left alone and re-clamped on the next move.
func (o *Overlay) SetCommands(batch []command.Info) {
	prev := len(o.cmds)
	o.cmds = command.Aggregate(batch)
	if len(o.cmds) != prev {
		events.Help.Commands(len(batch), len(o.cmds))
	}
}

// SetBlocked marks the help key as captured elsewhere, for instance by a
// text input. The open help command is then reported disabled.
func (o *Overlay) SetBlocked(blocked bool) {
	o.blocked = blocked
}

// List returns the aggregated commands in display order of their groups.
func (o *Overlay) List() []command.Info {
	out := make([]command.Info, len(o.cmds))
	copy(out, o.cmds)
	return out
}

// Cursor is the index of the selected command in the flattened list.
func (o *Overlay) Cursor() int {
	return o.selection.Index
}

func (o *Overlay) IsVisible() bool {
	return o.visible
}

func (o *Overlay) Show() {
	if o.visible {
		return
	}
	o.visible = true
	events.Help.Open(len(o.cmds))
}

func (o *Overlay) Hide() {
	if !o.visible {
		return
	}
	o.visible = false
	events.Help.Close()
}

// Move steps the selection through the flattened command list.
func (o *Overlay) Move(dir state.Direction) {
	if o.selection.Move(dir, len(o.cmds)) {
		events.Help.Cursor(o.selection.Index, o.ScrollOffset())
	}
}

// ScrollOffset is the first body row shown for the current selection.
func (o *Overlay) ScrollOffset() int {
	sel := o.selection
	sel.Clamp(len(o.cmds))
	return sel.Offset(scrollThreshold)
}

// HandleKey processes a key event and reports whether it was consumed.
// While shown every key is consumed; while hidden only the help key is.
func (o *Overlay) HandleKey(msg tea.KeyMsg) bool {
	if o.visible {
		switch {
		case key.Matches(msg, o.keys.ExitPopup):
			o.Hide()
		case key.Matches(msg, o.keys.MoveDown):
			o.Move(state.Forward)
		case key.Matches(msg, o.keys.MoveUp):
			o.Move(state.Backward)
		}
		return true
	}
	if key.Matches(msg, o.keys.OpenHelp) {
		o.Show()
		return true
	}
	return false
}

// Commands implements command.Source. While shown, and unless forceAll is
// set, the commands reported by earlier sources are dropped so only the
// overlay's own commands remain.
func (o *Overlay) Commands(out []command.Info, forceAll bool) ([]command.Info, command.Blocking) {
	if o.visible && !forceAll {
		out = out[:0]
	}
	if o.visible {
		out = append(out,
			command.New(command.Scroll(o.keys), true, true),
			command.New(command.ClosePopup(o.keys), true, true),
		)
	}
	if !o.visible || forceAll {
		out = append(out, command.New(command.OpenHelp(o.keys), !o.blocked, true).WithOrder(99))
	}
	return out, command.Visibility(o.visible)
}
