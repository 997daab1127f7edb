package state

import (
	"slices"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and the rune position of the filter
// cursor. Starting a filter remembers the list cursor; clearing it restores
// that position.
func (l *Level) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))
	restore := -1
	switch {
	case trimmed != "" && prevTrimmed == "":
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case trimmed != "":
		l.Cursor = 0
	case prevTrimmed != "":
		restore = l.LastCursor
	}
	l.applyFilter()
	if trimmed != "" {
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
		return
	}
	if prevTrimmed != "" {
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text into the filter at the cursor position.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := append(append(append(make([]rune, 0, len(runes)+len(insert)), runes[:pos]...), insert...), runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.SetFilter(string(slices.Delete(runes, pos-1, pos)), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the filter cursor,
// along with any whitespace between it and the cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	l.SetFilter(string(slices.Delete(runes, i, pos)), i)
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.FilterCursor = pos - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	pos := l.FilterCursorPos()
	if pos >= len([]rune(l.Filter)) {
		return false
	}
	l.FilterCursor = pos + 1
	return true
}

// FilterItems returns the items matching query. Fuzzy matches win; when
// there are none a plain case-insensitive substring match is tried.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return slices.Clone(items)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.Value), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item the cursor should land on for query:
// an exact match, then a prefix match, then the closest fuzzy match.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	if i := slices.IndexFunc(items, func(item Item) bool {
		return strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.Value, trimmed)
	}); i >= 0 {
		return i
	}
	lower := strings.ToLower(trimmed)
	if i := slices.IndexFunc(items, func(item Item) bool {
		return strings.HasPrefix(strings.ToLower(item.Label), lower)
	}); i >= 0 {
		return i
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
