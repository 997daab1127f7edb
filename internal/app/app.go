package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/format/table"
	"github.com/atomicstack/popup-pick/internal/keys"
	"github.com/atomicstack/popup-pick/internal/ui"
	"github.com/atomicstack/popup-pick/internal/version"
)

// Config describes user-provided application options.
type Config struct {
	Items     []string
	ItemsFile string
	Watch     time.Duration
	Delimiter string
	Width     int
	Height    int
	Keys      keys.Map
}

// ErrNothingPicked is returned by Run when the user quits without picking.
var ErrNothingPicked = errors.New("nothing picked")

// Run bootstraps and executes the Bubble Tea program, then writes the picked
// value to out.
func Run(cfg Config, out io.Writer) error {
	fetch, fromStdin := fetcher(cfg)
	watcher := backend.NewWatcher(fetch, cfg.Watch)
	defer watcher.Stop()

	model := ui.NewModel(modelOptions(cfg, watcher))
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if fromStdin {
		opts = append(opts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}

	picked, ok := model.Picked()
	if !ok {
		return ErrNothingPicked
	}
	_, err := fmt.Fprintln(out, picked)
	return err
}

// DumpCommands writes the help overlay's command table to out.
func DumpCommands(cfg Config, out io.Writer) error {
	model := ui.NewModel(modelOptions(cfg, nil))
	rows := [][]string{{"GROUP", "COMMAND", "DESCRIPTION"}}
	for _, c := range model.CommandList() {
		rows = append(rows, []string{c.Text.Group, c.Label(), c.Text.Desc})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func modelOptions(cfg Config, watcher *backend.Watcher) ui.Options {
	return ui.Options{
		Keys:      cfg.Keys,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Footer:    version.Full(),
		Delimiter: cfg.Delimiter,
		Watcher:   watcher,
	}
}

// fetcher picks the item source: the items file, then positional items, then
// stdin when it is not a terminal. It reports whether stdin is consumed.
func fetcher(cfg Config) (backend.Fetcher, bool) {
	switch {
	case cfg.ItemsFile == "-":
		return backend.ReaderFetcher(os.Stdin), true
	case cfg.ItemsFile != "":
		return backend.FileFetcher(cfg.ItemsFile), false
	case len(cfg.Items) > 0:
		return backend.StaticFetcher(cfg.Items), false
	case !term.IsTerminal(int(os.Stdin.Fd())):
		return backend.ReaderFetcher(os.Stdin), true
	default:
		return backend.StaticFetcher(nil), false
	}
}
