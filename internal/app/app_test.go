package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/popup-pick/internal/keys"
)

func TestDumpCommandsPrintsTable(t *testing.T) {
	var b strings.Builder
	if err := DumpCommands(Config{Keys: keys.Default()}, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "GROUP") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	out := b.String()
	for _, want := range []string{"Help [?]", "Pick [enter]", "open this help screen"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dump:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ctrl+c") {
		t.Fatalf("expected hidden commands left out:\n%s", out)
	}
}

func TestFetcherPrefersItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items")
	if err := os.WriteFile(path, []byte("from-file\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fetch, stdin := fetcher(Config{ItemsFile: path, Items: []string{"from-args"}})
	if stdin {
		t.Fatalf("expected stdin untouched")
	}
	lines, err := fetch(context.Background())
	if err != nil || len(lines) != 1 || lines[0] != "from-file" {
		t.Fatalf("unexpected lines %q (%v)", lines, err)
	}

	fetch, _ = fetcher(Config{Items: []string{"from-args"}})
	if lines, _ := fetch(context.Background()); lines[0] != "from-args" {
		t.Fatalf("expected positional items, got %q", lines)
	}
	if _, stdin := fetcher(Config{ItemsFile: "-"}); !stdin {
		t.Fatalf("expected - to read stdin")
	}
}
