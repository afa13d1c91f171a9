// Package pipeline wires the loader, deduplicator, filter, and writers
// into the single-shot run the CLI executes.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"

	"icsmerge/internal/config"
	"icsmerge/internal/ics"
	"icsmerge/internal/merge"
	"icsmerge/internal/report"
)

// Summary describes one completed run.
type Summary struct {
	FilesParsed   int
	FilesSkipped  int
	EventsLoaded  int
	Duplicates    int
	EventsWritten int
	KeywordCounts map[string]int

	TextPath string
	CSVPath  string
}

// Run executes load -> dedup -> sort -> filter -> write as described by
// cfg. Both output files are written even when the filtered list is empty;
// only an unreadable source directory or a write failure is an error.
func Run(cfg *config.Config) (Summary, error) {
	var sum Summary

	events, files, err := ics.LoadDir(cfg.SourceDir, cfg.Extension)
	if err != nil {
		return sum, err
	}
	for _, fr := range files {
		if fr.Err != nil {
			sum.FilesSkipped++
		} else {
			sum.FilesParsed++
		}
	}
	sum.EventsLoaded = len(events)

	deduped, duplicates := merge.Dedup(events)
	sum.Duplicates = duplicates

	merge.SortChronological(deduped)

	filtered := merge.Filter(deduped, cfg.Keywords)
	sum.EventsWritten = len(filtered)
	sum.KeywordCounts = merge.KeywordCounts(filtered, cfg.Keywords)

	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return sum, fmt.Errorf("create output directory: %w", err)
		}
	}

	sum.TextPath = cfg.TextPath()
	sum.CSVPath = cfg.CSVPath()

	if err := report.WriteTextFile(sum.TextPath, filtered); err != nil {
		return sum, fmt.Errorf("write text report: %w", err)
	}
	if err := report.WriteCSVFile(sum.CSVPath, filtered); err != nil {
		return sum, fmt.Errorf("write csv table: %w", err)
	}

	slog.Debug("pipeline completed",
		"events_loaded", sum.EventsLoaded,
		"duplicates_removed", sum.Duplicates,
		"events_written", sum.EventsWritten,
	)
	return sum, nil
}
