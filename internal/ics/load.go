package ics

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"icsmerge/internal/model"
)

// FileResult records the outcome of loading a single calendar file.
type FileResult struct {
	Name   string // file basename
	Events int    // events parsed out of the file
	Err    error  // non-nil when the file was skipped
}

// LoadDir parses every regular file in dir whose name ends with ext
// (case-insensitive) and returns the combined event list plus one
// FileResult per matching file.
//
// An unreadable directory is a hard error. A file that fails to read or
// parse is logged, recorded in its FileResult, and skipped; the rest of
// the run continues.
func LoadDir(dir, ext string) ([]model.Event, []FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read source directory: %w", err)
	}

	events := make([]model.Event, 0)
	results := make([]FileResult, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}

		name := entry.Name()
		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("skipping unreadable file", "file", name, "error", err)
			results = append(results, FileResult{Name: name, Err: err})
			continue
		}

		parsed, err := Parse(name, body)
		if err != nil {
			slog.Warn("skipping malformed calendar", "file", name, "error", err)
			results = append(results, FileResult{Name: name, Err: err})
			continue
		}

		slog.Info("loaded calendar", "file", name, "event_count", len(parsed))
		events = append(events, parsed...)
		results = append(results, FileResult{Name: name, Events: len(parsed)})
	}

	return events, results, nil
}
