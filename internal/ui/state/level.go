package state

import "slices"

// Item is one pickable entry. Value is what gets printed when the item is
// picked; Label is what the list shows.
type Item struct {
	Value string
	Label string
}

// Level holds the list's cursor, filter and viewport. Items is the filtered
// view of Full.
type Level struct {
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level showing every item with the cursor on the first.
func NewLevel(items []Item) *Level {
	l := &Level{LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the item set, keeping the filter and, where possible,
// the viewport.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = slices.Clone(items)
	l.applyFilter()
	if len(l.Items) == 0 || prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the position of the item with the given value, or -1.
func (l *Level) IndexOf(value string) int {
	return slices.IndexFunc(l.Items, func(item Item) bool { return item.Value == value })
}
