package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid json %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceWritesOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is off")
	}

	SetTraceEnabled(true)
	Trace("help.open", map[string]interface{}{"commands": 3})
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["event"] != "help.open" {
		t.Fatalf("expected event field, got %v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["commands"] != float64(3) {
		t.Fatalf("expected payload, got %v", entries[0]["payload"])
	}
}

func TestErrorAlwaysWrites(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["error"] != "boom" || entries[0]["level"] != "error" {
		t.Fatalf("unexpected entry %v", entries[0])
	}
}

func TestConfigureFallsBackToDefault(t *testing.T) {
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
