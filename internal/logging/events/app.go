package events

import "github.com/atomicstack/popup-pick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(picked string, ok bool) {
	logging.Trace("app.exit", map[string]interface{}{"picked": picked, "ok": ok})
}
