package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full set of knobs for a single run.
type Config struct {
	// SourceDir is the directory scanned for calendar files.
	SourceDir string `yaml:"source_dir"`

	// Extension selects which files in SourceDir are parsed
	// (case-insensitive, leading dot optional in the config file).
	Extension string `yaml:"extension"`

	// Keywords is the OR-combined, case-insensitive filter set.
	// An explicitly empty list disables filtering and keeps every event.
	Keywords []string `yaml:"keywords"`

	// OutputDir is where both output files are written.
	OutputDir string `yaml:"output_dir"`

	// TextFile / CSVFile are the output file names inside OutputDir.
	TextFile string `yaml:"text_file"`
	CSVFile  string `yaml:"csv_file"`
}

// DefaultConfig returns the built-in defaults: a local samples folder and
// the historical fixed keyword list.
func DefaultConfig() *Config {
	return &Config{
		SourceDir: "samples",
		Extension: ".ics",
		Keywords:  []string{"Meeting", "ClientX", "Discovery"},
		OutputDir: ".",
		TextFile:  "merged_filtered_events.txt",
		CSVFile:   "merged_filtered_events.csv",
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly. A nil keyword list means
// "unset" and takes the default; an empty non-nil list stays empty.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.SourceDir == "" {
		c.SourceDir = def.SourceDir
	}
	if c.Extension == "" {
		c.Extension = def.Extension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.Keywords == nil {
		c.Keywords = def.Keywords
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.TextFile == "" {
		c.TextFile = def.TextFile
	}
	if c.CSVFile == "" {
		c.CSVFile = def.CSVFile
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - empty path: return the defaults
//   - file does not exist: return the defaults
//   - file exists: read YAML, unmarshal, normalize
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// TextPath is the full path of the text report.
func (c *Config) TextPath() string {
	return filepath.Join(c.OutputDir, c.TextFile)
}

// CSVPath is the full path of the CSV table.
func (c *Config) CSVPath() string {
	return filepath.Join(c.OutputDir, c.CSVFile)
}
