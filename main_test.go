package main

import (
	"testing"

	"github.com/atomicstack/popup-pick/internal/app"
	"github.com/atomicstack/popup-pick/internal/config"
	"github.com/atomicstack/popup-pick/internal/keys"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Items:     []string{"alpha"},
			Delimiter: "\t",
			Width:     80,
			Height:    24,
			Keys:      keys.Default(),
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		KeyOverrides: map[string][]string{"quit": {"x"}},
		Flags: map[string]string{
			"width":     "80",
			"height":    "24",
			"delimiter": "\t",
		},
		Args: []string{"--width", "80", "alpha"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["delimiter"] != "\t" {
		t.Fatalf("expected tab delimiter, got %v", flagsValue["delimiter"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if overrides, ok := payload["keyOverrides"].(map[string][]string); !ok || overrides["quit"][0] != "x" {
		t.Fatalf("expected key overrides in payload, got %v", payload["keyOverrides"])
	}
	if v, ok := payload["version"].(string); !ok || v == "" {
		t.Fatalf("expected version in payload, got %v", payload["version"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.Width != 80 || cfgValue.App.Items[0] != "alpha" {
		t.Fatalf("expected app config carried through, got %#v", cfgValue.App)
	}
}
