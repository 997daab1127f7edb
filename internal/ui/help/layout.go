package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/popup-pick/internal/command"
)

// LineKind tells the renderer how to treat a body line.
type LineKind int

const (
	LineGroup LineKind = iota
	LineCommand
	LineDescription
)

const (
	selectedMarker   = ">"
	unselectedMarker = " "
	descIndent       = "  "
)

// Line is one row of the help body.
type Line struct {
	Text     string
	Kind     LineKind
	Selected bool
	Enabled  bool
}

// Lines lays out every group header, command and the selected command's
// description. The full list is returned; scrolling is left to the caller.
func (o *Overlay) Lines() []Line {
	sel := o.selection
	sel.Clamp(len(o.cmds))

	lines := make([]Line, 0, len(o.cmds)+8)
	processed := 0
	for _, group := range command.Groups(o.cmds) {
		lines = append(lines, Line{Text: group.Name, Kind: LineGroup, Enabled: true})
		for _, cmd := range group.Commands {
			selected := len(o.cmds) > 0 && processed == sel.Index
			processed++

			marker := unselectedMarker
			if selected {
				marker = selectedMarker
			}
			lines = append(lines, Line{
				Text:     marker + cmd.Label(),
				Kind:     LineCommand,
				Selected: selected,
				Enabled:  cmd.Enabled,
			})
			if selected {
				lines = append(lines, Line{
					Text:     descIndent + cmd.Text.Desc,
					Kind:     LineDescription,
					Selected: true,
					Enabled:  cmd.Enabled,
				})
			}
		}
	}
	return lines
}

// renderLines styles the layout for a body of the given width.
func (o *Overlay) renderLines(width int) string {
	lines := o.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.Text
		if width > 0 && ansi.StringWidth(text) > width {
			text = truncate.StringWithTail(text, uint(width-1), "…")
		}
		var style lipgloss.Style
		if line.Kind == LineGroup {
			if o.styles.HelpGroup != nil {
				style = *o.styles.HelpGroup
			}
		} else {
			style = o.styles.CommandText(line.Enabled, line.Selected)
		}
		out[i] = style.Render(text)
	}
	return strings.Join(out, "\n")
}
