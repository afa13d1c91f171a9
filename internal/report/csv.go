package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"icsmerge/internal/model"
)

// Header is the fixed CSV column order.
var Header = []string{"Start", "End", "Guest number", "Event title or summary", "Location", "Guests"}

// WriteCSV renders the events as a comma-delimited table with a header row.
// Guests are newline-joined inside a single cell; the encoder quotes any
// embedded commas and newlines.
func WriteCSV(w io.Writer, events []model.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, ev := range events {
		record := []string{
			formatTime(ev.Start, ev.AllDay),
			formatTime(ev.End, ev.AllDay),
			strconv.Itoa(ev.GuestCount()),
			ev.Summary,
			ev.Location,
			strings.Join(ev.Guests, "\n"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV table to path, creating or truncating it.
func WriteCSVFile(path string, events []model.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
