package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Input and audit flags, shared by every command
	configPath    string
	skipRowsStart int
	skipRowsEnd   int
	ignoreAfter   string
	ignoreBefore  string
	decode        bool
	sqlitePath    string
	table         string
	column        string
	seed          int64
	sampleCount   int
	maxRounds     int
	maxSuffixes   int
	maxWords      int
	parallel      int
	theme         string
	verbose       bool
	quiet         bool

	// Output flags for the root command
	jsonOutput  bool
	showSamples bool
)

var rootCmd = &cobra.Command{
	Use:   "wla [file]",
	Short: "Word list auditor - check passphrase word lists",
	Long: `Audit a word list meant for generating passphrases. Reports duplicates,
prefix and suffix words, unique decodability, edit distances and entropy.

Reads one word per line from the file, or from stdin when no file is given.

Examples:
  wla eff_large_wordlist.txt              # Text report
  wla --ignore-before t diceware.txt      # Strip dice rolls before a tab
  wla --json --samples words.txt          # JSON with 30 sample words
  wla --sqlite words.db --table words     # Read from a SQLite table`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAudit,
}

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse a word list and its audit interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

var samplesCmd = &cobra.Command{
	Use:   "samples [file]",
	Short: "Print sample passphrase words drawn from a list",
	Long: `Print randomly drawn words to show what passphrases made from the list
look like. The draw is not cryptographically secure; do not use these
samples as real passphrases.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSamples,
}

var distanceCmd = &cobra.Command{
	Use:   "distance <word1> <word2>",
	Short: "Show the edit distance between two words",
	Args:  cobra.ExactArgs(2),
	RunE:  runDistance,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to config file (default ~/.config/wla/config.yaml)")
	flags.IntVar(&skipRowsStart, "skip-rows-start", 0, "Skip this many lines at the start of the input")
	flags.IntVar(&skipRowsEnd, "skip-rows-end", 0, "Skip this many lines at the end of the input")
	flags.StringVar(&ignoreAfter, "ignore-after", "", "Ignore everything after this delimiter on each line ('s' for space, 't' for tab)")
	flags.StringVar(&ignoreBefore, "ignore-before", "", "Ignore everything before this delimiter on each line ('s' for space, 't' for tab)")
	flags.BoolVarP(&decode, "decode", "d", false, `Decode words written as "word",`)
	flags.StringVar(&sqlitePath, "sqlite", "", "Read words from this SQLite database instead of a file")
	flags.StringVar(&table, "table", "words", "SQLite table holding the words")
	flags.StringVar(&column, "column", "word", "SQLite column holding the words")
	flags.Int64Var(&seed, "seed", 0, "Seed for sample words (0 uses the clock)")
	flags.IntVarP(&sampleCount, "sample-count", "n", 30, "Number of sample words")
	flags.IntVar(&maxRounds, "max-rounds", 0, "Give up on the decodability check after this many rounds (0 = no limit)")
	flags.IntVar(&maxSuffixes, "max-suffixes", 0, "Give up on the decodability check past this many dangling suffixes (0 = no limit)")
	flags.IntVar(&maxWords, "max-words", 0, "Refuse lists longer than this before pairwise checks (0 = no limit)")
	flags.IntVarP(&parallel, "parallel", "p", 1, "Goroutines used by pairwise checks")
	flags.StringVar(&theme, "theme", "default", "Color theme (default, gruvbox, tokyonight, catppuccin)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Print attributes as JSON")
	rootCmd.Flags().BoolVarP(&showSamples, "samples", "s", false, "Print sample words after the report")

	rootCmd.MarkFlagsMutuallyExclusive("ignore-after", "ignore-before")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(distanceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
