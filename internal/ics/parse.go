package ics

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"

	ical "github.com/arran4/golang-ical"

	"icsmerge/internal/model"
)

// Parse parses a single ICS payload into events.
//
//   - It relies on the underlying library's VTIMEZONE/TZID handling to
//     construct proper time.Time values.
//   - It detects all-day events by inspecting the DTSTART value format.
//   - Individual VEVENTs that fail to parse are logged and skipped; the
//     rest of the payload is kept.
func Parse(source string, body []byte) ([]model.Event, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0)

	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(source, ve)
		if perr != nil {
			slog.Warn("skipping unparseable vevent", "source", source, "error", perr)
			continue
		}
		events = append(events, ev)
	}

	slog.Debug("ics parse completed", "source", source, "event_count", len(events))
	return events, nil
}

func parseVEvent(source string, ve *ical.VEvent) (model.Event, error) {
	out := model.Event{SourceFile: source}

	// UID is informational here; events without one are still usable.
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.UID = p.Value
	}

	// Summary / Description / Location default to empty when absent.
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}

	// DTSTART / DTEND via the library's timezone-aware helpers. A missing
	// property leaves the zero time in place.
	if start, err := ve.GetStartAt(); err == nil {
		out.Start = start
	}
	if end, err := ve.GetEndAt(); err == nil {
		out.End = end
	}

	// An event with neither timestamp cannot be ordered or deduplicated.
	if out.Start.IsZero() && out.End.IsZero() {
		return out, errors.New("event has neither DTSTART nor DTEND")
	}

	// Detect all-day: VALUE=DATE parameter or a date-only DTSTART value.
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if params := p.ICalParameters; params != nil {
			if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
				out.AllDay = true
			}
		}
		if !strings.Contains(p.Value, "T") {
			out.AllDay = true
		}
	}

	// ATTENDEE can appear multiple times; the value carries the calendar
	// address, typically "mailto:user@example.com".
	for _, p := range ve.GetProperties(ical.ComponentPropertyAttendee) {
		if g := guestAddress(p.Value); g != "" {
			out.Guests = append(out.Guests, g)
		}
	}

	return out, nil
}

// guestAddress strips the URI scheme from an ATTENDEE value, leaving the
// plain address ("mailto:ana@example.com" -> "ana@example.com").
func guestAddress(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.Index(v, ":"); i >= 0 {
		return v[i+1:]
	}
	return v
}
