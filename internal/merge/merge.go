package merge

import (
	"log/slog"
	"sort"

	"icsmerge/internal/model"
)

// Dedup collapses events sharing the same (start, end, summary) identity.
//
// The first occurrence is the representative. Guest lists are unioned in
// first-seen order. For other non-key fields the first non-empty value
// wins; a genuine disagreement is kept as-is and logged. Returns the
// deduplicated list and the number of records folded away.
func Dedup(events []model.Event) ([]model.Event, int) {
	byKey := make(map[model.Key]int, len(events))
	out := make([]model.Event, 0, len(events))
	duplicates := 0

	for _, ev := range events {
		key := ev.Key()
		idx, seen := byKey[key]
		if !seen {
			byKey[key] = len(out)
			kept := ev
			// Copy so later guest unions never alias the input slice.
			kept.Guests = append([]string(nil), ev.Guests...)
			out = append(out, kept)
			continue
		}

		duplicates++
		kept := &out[idx]
		kept.Guests = unionGuests(kept.Guests, ev.Guests)

		if ev.Location != "" && kept.Location != ev.Location {
			if kept.Location == "" {
				kept.Location = ev.Location
			} else {
				slog.Warn("duplicate events disagree on location",
					"summary", ev.Summary,
					"kept", kept.Location,
					"dropped", ev.Location,
					"file", ev.SourceFile,
				)
			}
		}
		if ev.Description != "" && kept.Description != ev.Description {
			if kept.Description == "" {
				kept.Description = ev.Description
			} else {
				slog.Warn("duplicate events disagree on description",
					"summary", ev.Summary,
					"file", ev.SourceFile,
				)
			}
		}
	}

	return out, duplicates
}

// SortChronological orders events by start time, breaking ties on end,
// summary, location, and source file so output is deterministic regardless
// of directory enumeration order.
func SortChronological(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		if a.Summary != b.Summary {
			return a.Summary < b.Summary
		}
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		return a.SourceFile < b.SourceFile
	})
}

func unionGuests(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, g := range list {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}
