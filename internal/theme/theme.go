package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. A single
// *Styles is handed to every component; nothing mutates it after startup.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style

	PopupBorder      *lipgloss.Style
	PopupTitle       *lipgloss.Style
	PopupFooter      *lipgloss.Style
	HelpGroup        *lipgloss.Style
	Command          *lipgloss.Style
	CommandSelected  *lipgloss.Style
	CommandDisabled  *lipgloss.Style
	CommandBar       *lipgloss.Style
	CommandBarKey    *lipgloss.Style
	CommandBarOff    *lipgloss.Style
	CommandSeparator *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	PopupBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PopupFooter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	HelpGroup: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Command: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CommandSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	CommandDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	CommandBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CommandBarKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	CommandBarOff: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	CommandSeparator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// CommandText picks the style for a command line in the help overlay.
// Selection wins over the disabled treatment so the cursor stays visible.
func (s *Styles) CommandText(enabled, selected bool) lipgloss.Style {
	switch {
	case selected:
		return deref(s.CommandSelected)
	case !enabled:
		return deref(s.CommandDisabled)
	default:
		return deref(s.Command)
	}
}

func deref(style *lipgloss.Style) lipgloss.Style {
	if style == nil {
		return lipgloss.NewStyle()
	}
	return *style
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
