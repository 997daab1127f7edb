package backend

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// StaticFetcher always returns the same lines.
func StaticFetcher(lines []string) Fetcher {
	return func(context.Context) ([]string, error) {
		out := make([]string, len(lines))
		copy(out, lines)
		return out, nil
	}
}

// FileFetcher reads one item per line from path.
func FileFetcher(path string) Fetcher {
	return func(context.Context) ([]string, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open items file: %w", err)
		}
		defer f.Close()
		return ReadLines(f)
	}
}

// ReaderFetcher reads r to the end on the first call. Later calls return the
// same lines, so it is only useful without polling.
func ReaderFetcher(r io.Reader) Fetcher {
	var (
		lines []string
		err   error
		done  bool
	)
	return func(context.Context) ([]string, error) {
		if !done {
			lines, err = ReadLines(r)
			done = true
		}
		return lines, err
	}
}

// ReadLines splits r into lines, dropping blank ones and trailing carriage
// returns.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("read items: %w", err)
	}
	return lines, nil
}
