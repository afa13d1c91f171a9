package merge

import (
	"strings"

	"icsmerge/internal/model"
)

// Filter keeps events where at least one keyword appears, case-insensitively,
// in the summary, description, location, or a guest address. An empty
// keyword set keeps everything.
func Filter(events []model.Event, keywords []string) []model.Event {
	if len(keywords) == 0 {
		return events
	}

	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if matchesAny(ev, keywords) {
			out = append(out, ev)
		}
	}
	return out
}

// KeywordCounts reports how many of the given events each keyword matches.
func KeywordCounts(events []model.Event, keywords []string) map[string]int {
	counts := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		counts[kw] = 0
		for _, ev := range events {
			if matches(ev, kw) {
				counts[kw]++
			}
		}
	}
	return counts
}

func matchesAny(ev model.Event, keywords []string) bool {
	for _, kw := range keywords {
		if matches(ev, kw) {
			return true
		}
	}
	return false
}

func matches(ev model.Event, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}

	for _, field := range []string{ev.Summary, ev.Description, ev.Location} {
		if strings.Contains(strings.ToLower(field), kw) {
			return true
		}
	}
	for _, g := range ev.Guests {
		if strings.Contains(strings.ToLower(g), kw) {
			return true
		}
	}
	return false
}
