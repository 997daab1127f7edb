package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/state"
)

func TestHandleSplitsOnDelimiter(t *testing.T) {
	store := state.NewItemStore()
	d := New(store, "\t")
	res := d.Handle(backend.Event{Lines: []string{"v1\tFirst item", "v2", "v3\t "}})
	if !res.ItemsUpdated || res.Count != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	want := []state.Entry{
		{Value: "v1", Label: "First item"},
		{Value: "v2", Label: "v2"},
		{Value: "v3", Label: "v3"},
	}
	got := store.Entries()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestHandleWithoutDelimiterKeepsLines(t *testing.T) {
	store := state.NewItemStore()
	New(store, "").Handle(backend.Event{Lines: []string{"a\tb"}})
	if got := store.Entries(); got[0].Value != "a\tb" || got[0].Label != "a\tb" {
		t.Fatalf("expected line kept whole, got %+v", got)
	}
}

func TestHandleIgnoresErrors(t *testing.T) {
	store := state.NewItemStore()
	store.SetEntries([]state.Entry{{Value: "keep", Label: "keep"}})
	res := New(store, "").Handle(backend.Event{Err: errors.New("boom")})
	if res.ItemsUpdated {
		t.Fatalf("expected failed fetch to leave the store alone")
	}
	if got := store.Entries(); len(got) != 1 || got[0].Value != "keep" {
		t.Fatalf("expected previous items kept, got %+v", got)
	}
}
