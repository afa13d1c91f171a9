package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"icsmerge/internal/model"
)

const divider = "----------------------------------------"

// WriteText renders each event as a block of labeled fields followed by a
// divider line. An empty list produces a single explanatory line instead
// of an empty file.
func WriteText(w io.Writer, events []model.Event) error {
	bw := bufio.NewWriter(w)

	if len(events) == 0 {
		fmt.Fprintln(bw, "No events found with the specified keywords.")
		return bw.Flush()
	}

	for _, ev := range events {
		fmt.Fprintf(bw, "Event: %s\n", ev.Summary)
		fmt.Fprintf(bw, "Start: %s\n", formatTime(ev.Start, ev.AllDay))
		fmt.Fprintf(bw, "End: %s\n", formatTime(ev.End, ev.AllDay))
		fmt.Fprintf(bw, "Guest number: %d\n", ev.GuestCount())
		fmt.Fprintf(bw, "Guests: %s\n", strings.Join(ev.Guests, ", "))
		fmt.Fprintf(bw, "Location: %s\n", ev.Location)
		fmt.Fprintln(bw, divider)
	}

	return bw.Flush()
}

// WriteTextFile writes the text report to path, creating or truncating it.
func WriteTextFile(path string, events []model.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteText(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
