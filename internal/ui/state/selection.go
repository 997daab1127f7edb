package state

// Direction is the way a Selection moves.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Selection is a saturating cursor over a flattened list whose length is
// owned by someone else. The length is passed on every call so the list can
// be replaced between moves.
type Selection struct {
	Index int
}

// Move steps the cursor once in dir without wrapping. On an empty list the
// cursor returns to 0. It reports whether the index changed.
func (s *Selection) Move(dir Direction, count int) bool {
	old := s.Index
	if count <= 0 {
		s.Index = 0
		return s.Index != old
	}
	switch dir {
	case Forward:
		s.Index++
	case Backward:
		s.Index--
	}
	s.Clamp(count)
	return s.Index != old
}

// Clamp forces 0 <= Index <= max(0, count-1).
func (s *Selection) Clamp(count int) {
	s.Index = clamp(s.Index, 0, max(count-1, 0))
}

// Offset is the first visible row when the selection should stay within the
// top threshold rows once scrolling starts.
func (s Selection) Offset(threshold int) int {
	return max(s.Index-threshold, 0)
}
