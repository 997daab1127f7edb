package help

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/popup-pick/internal/ui/render"
)

// Draw paints the popup centred on f. Nothing is drawn while hidden. Errors
// from the frame are returned as is.
func (o *Overlay) Draw(f render.Frame) error {
	if !o.visible {
		return nil
	}
	area := render.CenteredRect(popupWidth, popupHeight, f.Size())
	if err := f.Clear(area); err != nil {
		return err
	}
	if err := render.Box(f, area, lipgloss.ThickBorder(), o.style(o.styles.PopupBorder), o.style(o.styles.PopupTitle), title); err != nil {
		return err
	}

	body, footer := area.Inner(1).SplitBottom(1)
	vp := viewport.New(body.Width, body.Height)
	vp.SetContent(o.renderLines(body.Width))
	vp.SetYOffset(o.ScrollOffset())
	if err := f.Render(body, vp.View()); err != nil {
		return err
	}

	footerText := lipgloss.NewStyle().
		Width(footer.Width).
		Align(lipgloss.Right).
		Render(o.style(o.styles.PopupFooter).Render(o.footer))
	return f.Render(footer, footerText)
}

func (o *Overlay) style(s *lipgloss.Style) lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	return *s
}
