package command

import (
	"reflect"
	"testing"
)

func info(name, group string, order int) Info {
	return Info{Text: Text{Name: name, Desc: name + " desc", Group: group}, Enabled: true, Available: true, Order: order}
}

func names(cmds []Info) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Text.Name
	}
	return out
}

func TestAggregateDropsHiddenCommands(t *testing.T) {
	hidden := info("secret", "x", 0)
	hidden.Text = hidden.Text.Hidden()
	got := Aggregate([]Info{info("a", "x", 0), hidden, info("b", "y", 0)})
	for _, c := range got {
		if c.Text.HideHelp {
			t.Fatalf("expected hidden commands dropped, got %#v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(got))
	}
}

func TestAggregateRemovesExactDuplicates(t *testing.T) {
	batch := []Info{info("a", "x", 0), info("b", "x", 1), info("a", "x", 0), info("a", "x", 5)}
	got := Aggregate(batch)
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct commands, got %#v", got)
	}
	seen := map[string]int{}
	for _, c := range got {
		seen[c.Text.Name]++
	}
	if seen["a"] != 1 || seen["b"] != 1 {
		t.Fatalf("expected each command once, got %v", seen)
	}
}

func TestAggregateKeepsCommandsDifferingOnlyByGroup(t *testing.T) {
	a := info("a", "x", 0)
	b := info("a", "y", 0)
	if a.Same(b) {
		t.Fatalf("expected commands in different groups to differ")
	}
	if got := Aggregate([]Info{a, b}); len(got) != 2 {
		t.Fatalf("expected both commands kept, got %d", len(got))
	}
}

func TestAggregateGroupsAreContiguous(t *testing.T) {
	batch := []Info{
		info("a", "one", 0), info("b", "two", 0), info("c", "three", 0),
		info("d", "one", 1), info("e", "two", 1), info("f", "three", 1),
	}
	got := Aggregate(batch)
	finished := map[string]bool{}
	prev := ""
	for _, c := range got {
		g := c.Text.Group
		if g != prev {
			if finished[g] {
				t.Fatalf("group %q appears twice in %v", g, got)
			}
			if prev != "" {
				finished[prev] = true
			}
			prev = g
		}
	}
	for i := 1; i < len(got); i++ {
		if GroupHash(got[i-1].Text.Group) > GroupHash(got[i].Text.Group) {
			t.Fatalf("expected groups ordered by hash, got %v", names(got))
		}
	}
}

func TestAggregateIsIndependentOfBatchOrder(t *testing.T) {
	batch := []Info{info("a", "x", 1), info("b", "x", 0), info("c", "y", 0), info("d", "z", 2)}
	reversed := make([]Info, len(batch))
	for i, c := range batch {
		reversed[len(batch)-1-i] = c
	}
	first := Aggregate(batch)
	second := Aggregate(reversed)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical aggregation, got %v and %v", names(first), names(second))
	}
	if again := Aggregate(batch); !reflect.DeepEqual(first, again) {
		t.Fatalf("expected repeated aggregation to be stable")
	}
}

func TestAggregateEmptyBatch(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
	hidden := info("a", "x", 0)
	hidden.Text = hidden.Text.Hidden()
	if got := Aggregate([]Info{hidden}); len(got) != 0 {
		t.Fatalf("expected fully filtered batch to be empty, got %#v", got)
	}
}

func TestAggregateDoesNotModifyInput(t *testing.T) {
	batch := []Info{info("b", "x", 0), info("a", "x", 0)}
	Aggregate(batch)
	if batch[0].Text.Name != "b" || batch[1].Text.Name != "a" {
		t.Fatalf("expected input untouched, got %v", names(batch))
	}
}

func TestGroupsOrdersByRank(t *testing.T) {
	got := Groups(Aggregate([]Info{info("A", "X", 1), info("B", "X", 0), info("C", "Y", 0)}))
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	for _, g := range got {
		switch g.Name {
		case "X":
			if want := []string{"B", "A"}; !reflect.DeepEqual(names(g.Commands), want) {
				t.Fatalf("expected %v, got %v", want, names(g.Commands))
			}
		case "Y":
			if want := []string{"C"}; !reflect.DeepEqual(names(g.Commands), want) {
				t.Fatalf("expected %v, got %v", want, names(g.Commands))
			}
		default:
			t.Fatalf("unexpected group %q", g.Name)
		}
	}
	wantFirst := "X"
	if GroupHash("Y") < GroupHash("X") {
		wantFirst = "Y"
	}
	if got[0].Name != wantFirst {
		t.Fatalf("expected %q first by hash, got %q", wantFirst, got[0].Name)
	}
}

func TestGroupHashIsStable(t *testing.T) {
	if GroupHash("-- General --") != GroupHash("-- General --") {
		t.Fatalf("expected stable hash")
	}
	if GroupHash("a") == GroupHash("b") {
		t.Fatalf("expected distinct hashes for distinct groups")
	}
}
