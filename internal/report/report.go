// Package report renders a filtered event list as a human-readable text
// file and as a comma-delimited table.
package report

import "time"

const (
	timeLayout = "2006-01-02 15:04"
	dateLayout = "2006-01-02"
)

// formatTime renders an event timestamp consistently for both writers.
// All-day events carry no meaningful clock time, so they render date-only;
// a zero time renders empty.
func formatTime(t time.Time, allDay bool) string {
	if t.IsZero() {
		return ""
	}
	if allDay {
		return t.Format(dateLayout)
	}
	return t.Format(timeLayout)
}
