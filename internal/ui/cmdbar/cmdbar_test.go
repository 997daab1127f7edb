package cmdbar

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/popup-pick/internal/command"
)

func info(name string, enabled, available bool, order int) command.Info {
	return command.New(command.Text{Name: name, Group: "G"}, enabled, available).WithOrder(order)
}

func TestEntriesFiltersAndOrders(t *testing.T) {
	cmds := []command.Info{
		info("help", true, true, 99),
		info("move", true, true, 0),
		info("page", true, false, 1),
		info("jump", true, true, 2),
		info("pick", false, true, 0),
		info("move", true, true, 5),
	}
	got := Entries(cmds)
	want := []string{"move", "pick", "jump", "help"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].Label() != w {
			t.Fatalf("entry %d: expected %q, got %q", i, w, got[i].Label())
		}
	}
}

func TestViewJoinsLabels(t *testing.T) {
	b := New(nil)
	got := ansi.Strip(b.View([]command.Info{info("a", true, true, 0), info("b", false, true, 1)}, 0))
	if got != "a │ b" {
		t.Fatalf("unexpected bar %q", got)
	}
}

func TestViewTruncates(t *testing.T) {
	b := New(nil)
	got := ansi.Strip(b.View([]command.Info{info("alpha", true, true, 0), info("beta", true, true, 0)}, 8))
	if ansi.StringWidth(got) != 8 || got != "alpha │…" {
		t.Fatalf("expected truncated bar, got %q", got)
	}
}

func TestViewEmpty(t *testing.T) {
	if got := New(nil).View(nil, 20); ansi.Strip(got) != "" {
		t.Fatalf("expected empty bar, got %q", got)
	}
}
