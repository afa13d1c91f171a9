package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"icsmerge/internal/config"
	"icsmerge/internal/pipeline"
)

// flagConfig holds CLI flag values before they are merged into the config.
type flagConfig struct {
	configPath string
	outDir     string
	textFile   string
	csvFile    string
	extension  string
	verbose    bool
}

func init() {
	// A .env file is optional; missing is fine.
	_ = godotenv.Load()
}

func main() {
	flags, args := parseFlags()

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC1123Z,
		}),
	))

	if flags.configPath == "" {
		flags.configPath = os.Getenv("ICSMERGE_CONFIG")
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		slog.Error("failed to load config", "config_path", flags.configPath, "error", err)
		os.Exit(1)
	}

	// Positional arguments override the config: first is the source
	// directory, the rest are keywords.
	if len(args) > 0 {
		conf.SourceDir = args[0]
	}
	if len(args) > 1 {
		conf.Keywords = args[1:]
	}
	if flags.outDir != "" {
		conf.OutputDir = flags.outDir
	}
	if flags.textFile != "" {
		conf.TextFile = flags.textFile
	}
	if flags.csvFile != "" {
		conf.CSVFile = flags.csvFile
	}
	if flags.extension != "" {
		conf.Extension = flags.extension
	}
	conf.Normalize()

	slog.Info("effective config",
		"source_dir", conf.SourceDir,
		"extension", conf.Extension,
		"keywords", conf.Keywords,
		"output_dir", conf.OutputDir,
	)

	sum, err := pipeline.Run(conf)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	for _, kw := range conf.Keywords {
		slog.Info("keyword match count", "keyword", kw, "events", sum.KeywordCounts[kw])
	}
	slog.Info("run completed",
		"files_parsed", sum.FilesParsed,
		"files_skipped", sum.FilesSkipped,
		"events_loaded", sum.EventsLoaded,
		"duplicates_removed", sum.Duplicates,
		"events_written", sum.EventsWritten,
		"text_file", sum.TextPath,
		"csv_file", sum.CSVPath,
	)
}

func parseFlags() (flagConfig, []string) {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to YAML config file (default: $ICSMERGE_CONFIG if set)")
	flag.StringVar(&cfg.outDir, "out", "", "Output directory (overrides config if set)")
	flag.StringVar(&cfg.textFile, "text", "", "Text report file name (overrides config if set)")
	flag.StringVar(&cfg.csvFile, "csv", "", "CSV table file name (overrides config if set)")
	flag.StringVar(&cfg.extension, "ext", "", "Calendar file extension to load (overrides config if set)")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	flag.Parse()

	return cfg, flag.Args()
}
