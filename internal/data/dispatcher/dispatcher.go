package dispatcher

import (
	"strings"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/state"
)

type Result struct {
	ItemsUpdated bool
	Count        int
}

// Dispatcher parses backend events into the item store.
type Dispatcher struct {
	items     state.ItemStore
	delimiter string
}

// New returns a dispatcher writing to items. A non-empty delimiter splits
// each line into value and label at its first occurrence.
func New(items state.ItemStore, delimiter string) *Dispatcher {
	return &Dispatcher{items: items, delimiter: delimiter}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	entries := make([]state.Entry, 0, len(evt.Lines))
	for _, line := range evt.Lines {
		entries = append(entries, d.parse(line))
	}
	d.items.SetEntries(entries)
	res.ItemsUpdated = true
	res.Count = len(entries)
	return res
}

func (d *Dispatcher) parse(line string) state.Entry {
	if d.delimiter != "" {
		if value, label, ok := strings.Cut(line, d.delimiter); ok {
			label = strings.TrimSpace(label)
			if label == "" {
				label = value
			}
			return state.Entry{Value: value, Label: label}
		}
	}
	return state.Entry{Value: line, Label: line}
}
