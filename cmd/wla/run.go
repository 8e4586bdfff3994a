package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aayushbajaj/wla/internal/config"
	"github.com/aayushbajaj/wla/internal/report"
	"github.com/aayushbajaj/wla/internal/storage"
	"github.com/aayushbajaj/wla/internal/tui"
	"github.com/aayushbajaj/wla/internal/wordlist"
	"github.com/aayushbajaj/wla/pkg/audit"
)

// loadSettings reads the config file and applies every flag the user set on
// top of it.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("skip-rows-start") {
		cfg.Input.SkipRowsStart = skipRowsStart
	}
	if flags.Changed("skip-rows-end") {
		cfg.Input.SkipRowsEnd = skipRowsEnd
	}
	if flags.Changed("ignore-after") {
		cfg.Input.IgnoreAfter = ignoreAfter
		cfg.Input.IgnoreBefore = ""
	}
	if flags.Changed("ignore-before") {
		cfg.Input.IgnoreBefore = ignoreBefore
		if !flags.Changed("ignore-after") {
			cfg.Input.IgnoreAfter = ""
		}
	}
	if flags.Changed("decode") {
		cfg.Input.Decode = decode
	}
	if flags.Changed("table") {
		cfg.SQLite.Table = table
	}
	if flags.Changed("column") {
		cfg.SQLite.Column = column
	}
	if flags.Changed("seed") {
		cfg.Audit.Seed = seed
	}
	if flags.Changed("sample-count") {
		cfg.Audit.SampleCount = sampleCount
	}
	if flags.Changed("max-rounds") {
		cfg.Audit.MaxDecodabilityRounds = maxRounds
	}
	if flags.Changed("max-suffixes") {
		cfg.Audit.MaxDanglingSuffixes = maxSuffixes
	}
	if flags.Changed("max-words") {
		cfg.Audit.MaxPairwiseWords = maxWords
	}
	if flags.Changed("parallel") {
		cfg.Audit.Parallelism = parallel
	}
	if flags.Changed("theme") {
		cfg.Output.Theme = theme
	}
	if flags.Lookup("json") != nil && flags.Changed("json") {
		cfg.Output.JSON = jsonOutput
	}
	if flags.Lookup("samples") != nil && flags.Changed("samples") {
		cfg.Output.Samples = showSamples
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func inputOptions(cfg *config.Config) wordlist.Options {
	return wordlist.Options{
		SkipRowsStart: cfg.Input.SkipRowsStart,
		SkipRowsEnd:   cfg.Input.SkipRowsEnd,
		IgnoreAfter:   cfg.Input.IgnoreAfter,
		IgnoreBefore:  cfg.Input.IgnoreBefore,
		Decode:        cfg.Input.Decode,
	}
}

func auditOptions(cfg *config.Config) []audit.Option {
	return []audit.Option{
		audit.WithSeed(cfg.Audit.Seed),
		audit.WithSampleCount(cfg.Audit.SampleCount),
		audit.WithMaxDecodabilityRounds(cfg.Audit.MaxDecodabilityRounds),
		audit.WithMaxDanglingSuffixes(cfg.Audit.MaxDanglingSuffixes),
		audit.WithMaxPairwiseWords(cfg.Audit.MaxPairwiseWords),
		audit.WithParallelism(cfg.Audit.Parallelism),
	}
}

// loadWords reads the list from the SQLite database, the file argument or
// stdin, in that order of preference.
func loadWords(cmd *cobra.Command, cfg *config.Config, args []string, logger *zap.Logger) ([]string, error) {
	opts := inputOptions(cfg)

	if sqlitePath != "" {
		if len(args) > 0 {
			return nil, errors.New("give either a file or --sqlite, not both")
		}
		store, err := storage.Open(sqlitePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		rows, err := store.LoadWords(cfg.SQLite.Table, cfg.SQLite.Column)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded words from database",
			zap.String("path", sqlitePath),
			zap.String("table", cfg.SQLite.Table),
			zap.String("column", cfg.SQLite.Column),
			zap.Int("rows", len(rows)))
		return wordlist.Clean(rows, opts)
	}

	if len(args) == 1 && args[0] != "-" {
		logger.Debug("Reading word list", zap.String("path", args[0]))
		return wordlist.ReadFile(args[0], opts)
	}

	logger.Debug("Reading word list from stdin")
	return wordlist.Read(cmd.InOrStdin(), opts)
}

// prepare sets up logging, settings and the word list shared by the list
// commands.
func prepare(cmd *cobra.Command, args []string) (*zap.Logger, *config.Config, []string, error) {
	logger, err := newLogger(verbose, quiet)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, err
	}
	logger.Debug("Configuration loaded", zap.Any("config", cfg))

	words, err := loadWords(cmd, cfg, args, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, err
	}
	if len(words) == 0 {
		logger.Sync()
		return nil, nil, nil, errors.New("no words found in input")
	}
	return logger, cfg, words, nil
}

func runAudit(cmd *cobra.Command, args []string) error {
	logger, cfg, words, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	th, err := report.LookupTheme(cfg.Output.Theme)
	if err != nil {
		return err
	}

	start := time.Now()
	logger.Info("Auditing word list", zap.Int("words", len(words)), zap.Int("parallelism", cfg.Audit.Parallelism))
	attrs, err := audit.ComputeAttributes(words, auditOptions(cfg)...)
	if err != nil {
		if errors.Is(err, audit.ErrResourceExhausted) {
			logger.Warn("Audit stopped at a resource bound", zap.Error(err))
		}
		return fmt.Errorf("failed to audit word list: %w", err)
	}
	logger.Info("Audit complete", zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		return report.WriteJSON(out, attrs)
	}
	return report.NewPrinter(out, th).Attributes(attrs, cfg.Output.Samples)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger, cfg, words, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	th, err := report.LookupTheme(cfg.Output.Theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(words, th, auditOptions(cfg)...), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runSamples(cmd *cobra.Command, args []string) error {
	logger, cfg, words, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	o := audit.DefaultOptions()
	for _, opt := range auditOptions(cfg) {
		opt(&o)
	}
	if o.Rand == nil {
		audit.WithSeed(time.Now().UnixNano())(&o)
	}
	n := o.SampleCount
	if n <= 0 {
		n = audit.DefaultSampleCount
	}

	samples, err := audit.GenerateSamples(words, o.Rand, n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), report.FormatSamples(samples))
	return err
}

func runDistance(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(),
		"Edit distance         : %d\nFirst differing index : %d\n",
		audit.EditDistance(args[0], args[1]),
		audit.FirstDifferingIndex(args[0], args[1]),
	)
	if err != nil {
		return fmt.Errorf("failed to write distance: %w", err)
	}
	return nil
}
