package state

import "testing"

func newTestLevel(values ...string) *Level {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Value: v, Label: v}
	}
	return NewLevel(items)
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorUp() {
		t.Fatalf("expected wrap to the last item")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() {
		t.Fatalf("expected wrap to the first item")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	single := newTestLevel("only")
	if single.MoveCursorDown() {
		t.Fatalf("expected no movement with a single item")
	}
	empty := newTestLevel()
	if empty.MoveCursorUp() || empty.MoveCursorDown() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() {
		t.Fatalf("expected movement to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page down, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset normalized, got %d/%d", l.Cursor, l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}
}

func TestCurrentAndIndexOf(t *testing.T) {
	l := newTestLevel("a", "b")
	l.Cursor = 1
	item, ok := l.Current()
	if !ok || item.Value != "b" {
		t.Fatalf("expected current b, got %#v", item)
	}
	if idx := l.IndexOf("a"); idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	if _, ok := newTestLevel().Current(); ok {
		t.Fatalf("expected no current item for empty level")
	}
}
