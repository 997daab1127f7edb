package events

import "github.com/atomicstack/popup-pick/internal/logging"

type UITracer struct{}

type HelpTracer struct{}

type ListTracer struct{}

var (
	UI   = UITracer{}
	Help = HelpTracer{}
	List = ListTracer{}
)

func (UITracer) Key(key, handledBy string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "handled_by": handledBy})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) DrawError(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.draw-error", map[string]interface{}{"error": err.Error()})
}

func (HelpTracer) Open(commands int) {
	logging.Trace("help.open", map[string]interface{}{"commands": commands})
}

func (HelpTracer) Close() {
	logging.Trace("help.close", nil)
}

func (HelpTracer) Cursor(cursor, offset int) {
	logging.Trace("help.cursor", map[string]interface{}{"cursor": cursor, "offset": offset})
}

func (HelpTracer) Commands(received, kept int) {
	logging.Trace("help.commands", map[string]interface{}{"received": received, "kept": kept})
}

func (ListTracer) Cursor(cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor})
}

func (ListTracer) Filter(filter string, matches int) {
	logging.Trace("list.filter", map[string]interface{}{"filter": filter, "matches": matches})
}

func (ListTracer) Pick(value string) {
	logging.Trace("list.pick", map[string]interface{}{"value": value})
}
