package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"icsmerge/internal/config"
)

func calendar(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	all := append([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//icsmerge//test//EN",
	}, lines...)
	all = append(all, "END:VCALENDAR")
	body := strings.Join(all, "\r\n") + "\r\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func testConfig(src, out string, keywords ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.SourceDir = src
	cfg.OutputDir = out
	cfg.Keywords = keywords
	return cfg
}

func TestRunMergesAndFilters(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	calendar(t, src, "one.ics",
		"BEGIN:VEVENT",
		"UID:uid-1",
		"DTSTART:20260310T090000Z",
		"DTEND:20260310T100000Z",
		"SUMMARY:Team Meeting",
		"LOCATION:Room 1",
		"ATTENDEE:mailto:ana@example.com",
		"END:VEVENT",
	)
	calendar(t, src, "two.ics",
		"BEGIN:VEVENT",
		"UID:uid-other",
		"DTSTART:20260310T090000Z",
		"DTEND:20260310T100000Z",
		"SUMMARY:Team Meeting",
		"LOCATION:Room 1",
		"ATTENDEE:mailto:bob@example.com",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:uid-2",
		"DTSTART:20260310T120000Z",
		"DTEND:20260310T130000Z",
		"SUMMARY:Lunch",
		"END:VEVENT",
	)

	sum, err := Run(testConfig(src, out, "meeting"))
	require.NoError(t, err)
	require.Equal(t, 2, sum.FilesParsed)
	require.Zero(t, sum.FilesSkipped)
	require.Equal(t, 3, sum.EventsLoaded)
	require.Equal(t, 1, sum.Duplicates)
	require.Equal(t, 1, sum.EventsWritten)
	require.Equal(t, 1, sum.KeywordCounts["meeting"])

	text, err := os.ReadFile(sum.TextPath)
	require.NoError(t, err)
	require.Contains(t, string(text), "Event: Team Meeting")
	require.Contains(t, string(text), "Guests: ana@example.com, bob@example.com")
	require.NotContains(t, string(text), "Lunch")

	f, err := os.Open(sum.CSVPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "2", rows[1][2]) // guest number after union
	require.Equal(t, "ana@example.com\nbob@example.com", rows[1][5])
}

func TestRunIsIdempotent(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	calendar(t, src, "cal.ics",
		"BEGIN:VEVENT",
		"UID:uid-1",
		"DTSTART:20260310T090000Z",
		"DTEND:20260310T100000Z",
		"SUMMARY:Discovery call",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:uid-2",
		"DTSTART:20260309T090000Z",
		"DTEND:20260309T100000Z",
		"SUMMARY:Discovery workshop",
		"END:VEVENT",
	)

	cfg := testConfig(src, out, "discovery")

	sum, err := Run(cfg)
	require.NoError(t, err)
	text1, err := os.ReadFile(sum.TextPath)
	require.NoError(t, err)
	csv1, err := os.ReadFile(sum.CSVPath)
	require.NoError(t, err)

	// Earlier event sorts first regardless of file order.
	require.Less(t,
		strings.Index(string(text1), "Discovery workshop"),
		strings.Index(string(text1), "Discovery call"))

	sum2, err := Run(cfg)
	require.NoError(t, err)
	text2, err := os.ReadFile(sum2.TextPath)
	require.NoError(t, err)
	csv2, err := os.ReadFile(sum2.CSVPath)
	require.NoError(t, err)

	require.Equal(t, text1, text2)
	require.Equal(t, csv1, csv2)
}

func TestRunEmptyDirectory(t *testing.T) {
	out := t.TempDir()

	sum, err := Run(testConfig(t.TempDir(), out, "meeting"))
	require.NoError(t, err)
	require.Zero(t, sum.EventsWritten)

	text, err := os.ReadFile(sum.TextPath)
	require.NoError(t, err)
	require.Equal(t, "No events found with the specified keywords.\n", string(text))

	f, err := os.Open(sum.CSVPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestRunMissingDirectory(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	_, err := Run(cfg)
	require.Error(t, err)
}

func TestRunCreatesOutputDir(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "nested", "out")

	sum, err := Run(testConfig(src, out))
	require.NoError(t, err)
	require.FileExists(t, sum.TextPath)
	require.FileExists(t, sum.CSVPath)
}
