package model

import "time"

// Event is one calendar entry after parsing, independent of which file it
// came from. Optional ICS properties default to their zero values.
type Event struct {
	SourceFile string // basename of the originating .ics file
	UID        string // iCalendar UID; informational, not part of identity

	Summary     string
	Description string
	Location    string

	AllDay bool

	Start time.Time
	End   time.Time

	// Guests holds attendee identifiers (usually email addresses) in order
	// of first appearance, with the mailto: scheme stripped.
	Guests []string
}

// Key is the deduplication identity: two records with equal
// (start, end, summary) describe the same event.
type Key struct {
	Start   int64
	End     int64
	Summary string
}

// Key returns the event's deduplication identity. Times compare as
// instants, so the same moment expressed in different zones still collides.
func (e Event) Key() Key {
	return Key{
		Start:   e.Start.UnixNano(),
		End:     e.End.UnixNano(),
		Summary: e.Summary,
	}
}

// GuestCount is derived from the guest list.
func (e Event) GuestCount() int {
	return len(e.Guests)
}
