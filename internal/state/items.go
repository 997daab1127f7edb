package state

// Entry is one parsed input line. Value is printed when picked; Label is
// shown in the list.
type Entry struct {
	Value string
	Label string
}

// ItemStore holds the most recent item set delivered by the backend.
type ItemStore interface {
	Entries() []Entry
	SetEntries([]Entry)
	// Generation counts SetEntries calls.
	Generation() int
}

type itemStore struct {
	entries    []Entry
	generation int
}

func NewItemStore() ItemStore {
	return &itemStore{}
}

func (s *itemStore) Entries() []Entry {
	return cloneEntries(s.entries)
}

func (s *itemStore) SetEntries(entries []Entry) {
	s.entries = cloneEntries(entries)
	s.generation++
}

func (s *itemStore) Generation() int {
	return s.generation
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
