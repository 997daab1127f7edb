package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/popup-pick/internal/command"
	"github.com/atomicstack/popup-pick/internal/keys"
	uistate "github.com/atomicstack/popup-pick/internal/ui/state"
)

func newTestModel(values ...string) *Model {
	m := NewModel(Options{Keys: keys.Default(), Width: 120, Height: 30, Footer: "popup-pick test"})
	items := make([]uistate.Item, len(values))
	for i, v := range values {
		items[i] = uistate.Item{Value: v, Label: v}
	}
	m.list.SetItems(items)
	m.refreshHelp()
	return m
}

func labels(cmds []command.Info) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Label()
	}
	return out
}

func TestHelpKeyOpensOverlayAndSwallowsKeys(t *testing.T) {
	h := NewHarness(newTestModel("a", "b", "c"))
	h.Keys("?")
	if !h.Model().Overlay().IsVisible() {
		t.Fatalf("expected help overlay to open")
	}
	h.Keys("j", "q", "enter")
	if h.Model().List().Cursor() != 0 {
		t.Fatalf("expected list to receive no keys while help is shown")
	}
	if h.Quit() {
		t.Fatalf("expected quit key to be swallowed by the overlay")
	}
	if _, ok := h.Model().Picked(); ok {
		t.Fatalf("expected nothing picked while help is shown")
	}
	h.Keys("esc", "j")
	if h.Model().Overlay().IsVisible() || h.Model().List().Cursor() != 1 {
		t.Fatalf("expected overlay closed and list moved, cursor %d", h.Model().List().Cursor())
	}
}

func TestOverlayScrollsItsOwnSelection(t *testing.T) {
	h := NewHarness(newTestModel("a"))
	h.Keys("?", "j", "j")
	if h.Model().Overlay().Cursor() != 2 {
		t.Fatalf("expected overlay cursor 2, got %d", h.Model().Overlay().Cursor())
	}
}

func TestFilterTakesHelpKey(t *testing.T) {
	h := NewHarness(newTestModel("what?", "other"))
	h.Keys("/", "?", "q")
	if h.Model().Overlay().IsVisible() {
		t.Fatalf("expected help key typed into the filter")
	}
	if h.Quit() {
		t.Fatalf("expected quit key typed into the filter")
	}
	if got := h.Model().List().Filter(); got != "?q" {
		t.Fatalf("expected filter %q, got %q", "?q", got)
	}
	h.Keys("enter", "?")
	if !h.Model().Overlay().IsVisible() {
		t.Fatalf("expected help key to open the overlay once editing stopped")
	}
}

func TestHelpCommandDimmedWhileFiltering(t *testing.T) {
	h := NewHarness(newTestModel("a", "b"))
	helpEnabled := func() bool {
		for _, c := range command.Collect(false, h.Model().sources()...) {
			if c.Text == command.OpenHelp(keys.Default()) {
				return c.Enabled
			}
		}
		t.Fatalf("expected help command in the bar")
		return false
	}
	if !helpEnabled() {
		t.Fatalf("expected help enabled before filtering")
	}
	h.Keys("/")
	if helpEnabled() {
		t.Fatalf("expected help disabled while editing the filter")
	}
	h.Keys("enter")
	if !helpEnabled() {
		t.Fatalf("expected help enabled after editing stopped")
	}
}

func TestForceQuitWorksWhileHelpShown(t *testing.T) {
	h := NewHarness(newTestModel("a"))
	h.Keys("?", "ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected force quit to exit")
	}
}

func TestQuitKey(t *testing.T) {
	h := NewHarness(newTestModel("a"))
	h.Keys("q")
	if !h.Quit() {
		t.Fatalf("expected quit key to exit")
	}
	if _, ok := h.Model().Picked(); ok {
		t.Fatalf("expected nothing picked")
	}
}

func TestPickReturnsValue(t *testing.T) {
	h := NewHarness(newTestModel("alpha", "beta"))
	h.Keys("down", "enter")
	got, ok := h.Model().Picked()
	if !ok || got != "beta" {
		t.Fatalf("expected beta picked, got %q (%v)", got, ok)
	}
	if !h.Quit() {
		t.Fatalf("expected pick to exit")
	}
}

func TestHelpListsEveryVisibleCommand(t *testing.T) {
	m := newTestModel("a")
	km := keys.Default()
	got := strings.Join(labels(m.Overlay().List()), ",")
	for _, want := range []command.Text{
		command.Move(km), command.Page(km), command.Jump(km),
		command.Pick(km), command.Filter(km), command.Quit(km), command.OpenHelp(km),
	} {
		if !strings.Contains(got, want.Name) {
			t.Fatalf("expected %q in help, got %s", want.Name, got)
		}
	}
	if strings.Contains(got, command.ForceQuit(km).Name) {
		t.Fatalf("expected hidden force quit to stay out of help, got %s", got)
	}
}

func TestHelpKeepsOtherCommandsWhileShown(t *testing.T) {
	h := NewHarness(newTestModel("a"))
	h.Keys("?")
	km := keys.Default()
	got := strings.Join(labels(h.Model().Overlay().List()), ",")
	for _, want := range []string{command.Scroll(km).Name, command.ClosePopup(km).Name, command.Pick(km).Name, command.OpenHelp(km).Name} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in help while shown, got %s", want, got)
		}
	}
}

func TestCommandBarFollowsOverlay(t *testing.T) {
	h := NewHarness(newTestModel("a"))
	view := ansi.Strip(h.View())
	if !strings.Contains(view, "Help [?]") || !strings.Contains(view, "Pick [enter]") {
		t.Fatalf("expected list commands in the bar:\n%s", view)
	}

	h.Keys("?")
	lines := strings.Split(ansi.Strip(h.View()), "\n")
	bar := lines[len(lines)-1]
	if strings.TrimSpace(bar) != "Scroll [↑↓] │ Close [esc]" {
		t.Fatalf("expected only overlay commands in the bar, got %q", bar)
	}
}

func TestCommandListAggregates(t *testing.T) {
	m := newTestModel()
	cmds := m.CommandList()
	seen := map[string]bool{}
	for _, c := range cmds {
		if c.Text.HideHelp {
			t.Fatalf("expected hidden commands dropped, got %+v", c)
		}
		key := c.Label() + c.Text.Group
		if seen[key] {
			t.Fatalf("expected no duplicates, got %s twice", key)
		}
		seen[key] = true
	}
}
