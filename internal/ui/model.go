package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/data/dispatcher"
	"github.com/atomicstack/popup-pick/internal/keys"
	"github.com/atomicstack/popup-pick/internal/state"
	"github.com/atomicstack/popup-pick/internal/theme"
	"github.com/atomicstack/popup-pick/internal/ui/cmdbar"
	"github.com/atomicstack/popup-pick/internal/ui/help"
	"github.com/atomicstack/popup-pick/internal/ui/list"
	uistate "github.com/atomicstack/popup-pick/internal/ui/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Keys   keys.Map
	Styles *theme.Styles
	// Width and Height pin the view size; zero follows the terminal.
	Width  int
	Height int
	// Footer is shown in the bottom edge of the help popup.
	Footer string
	// Delimiter splits input lines into value and label.
	Delimiter string
	Watcher   *backend.Watcher
}

// Model implements the Bubble Tea model for the picker.
type Model struct {
	list    *list.Model
	overlay *help.Overlay
	bar     *cmdbar.Bar
	keys    keys.Map
	styles  *theme.Styles

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	errMsg      string

	backend    *backend.Watcher
	items      state.ItemStore
	dispatcher *dispatcher.Dispatcher

	picked *uistate.Item

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker with an empty list. Items arrive from the
// watcher once the program starts.
func NewModel(opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	items := state.NewItemStore()
	m := &Model{
		list:       list.New(styles, opts.Keys),
		overlay:    help.New(styles, opts.Keys, opts.Footer),
		bar:        cmdbar.New(styles),
		keys:       opts.Keys,
		styles:     styles,
		backend:    opts.Watcher,
		items:      items,
		dispatcher: dispatcher.New(items, opts.Delimiter),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.backend != nil {
		m.list.SetLoading(true)
	}
	m.registerHandlers()
	m.refreshHelp()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.list.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.list.UpdateCaret(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.refreshHelp()
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(list.PickedMsg{}):    m.handlePickedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// sources lists the command sources in collection order. The overlay comes
// last so a shown overlay can drop what the others reported.
func (m *Model) sources() []command.Source {
	return []command.Source{m.list, appCommands{m}, m.overlay}
}

func (m *Model) refreshHelp() {
	m.overlay.SetBlocked(m.list.Filtering())
	m.overlay.SetCommands(command.Collect(true, m.sources()...))
}

// Picked returns the value chosen by the user, if any.
func (m *Model) Picked() (string, bool) {
	if m.picked == nil {
		return "", false
	}
	return m.picked.Value, true
}

// Overlay exposes the help overlay.
func (m *Model) Overlay() *help.Overlay {
	return m.overlay
}

// List exposes the item list.
func (m *Model) List() *list.Model {
	return m.list
}
