// Package wordlist reads word lists from files and streams and strips the
// extras that often surround the words: header and footer rows, dice-roll
// numbers or other metadata next to each word, and quoted "word", entries
// copied from source code.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single line; word lists have short lines.
const maxLineSize = 1024 * 1024

// ErrBothDelimiters is returned when metadata is to be stripped from both
// sides of a line.
var ErrBothDelimiters = errors.New("wordlist: cannot ignore metadata both before and after the word")

// Options controls how raw lines become words.
type Options struct {
	// SkipRowsStart and SkipRowsEnd drop lines at the top and bottom.
	SkipRowsStart int
	SkipRowsEnd   int
	// IgnoreAfter drops everything from the first delimiter on; IgnoreBefore
	// drops everything up to and including it. "s" and "t" stand for space
	// and tab.
	IgnoreAfter  string
	IgnoreBefore string
	// Decode turns `"word",` lines into `word` and trims every line.
	Decode bool
}

// ReadFile reads the word list stored at path.
func ReadFile(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return Read(f, opts)
}

// Read reads one word per line from r and applies opts.
func Read(r io.Reader, opts Options) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return Clean(lines, opts)
}

// Clean applies row skipping, metadata stripping and decoding to lines that
// were already read.
func Clean(lines []string, opts Options) ([]string, error) {
	words := SkipRows(lines, opts.SkipRowsStart, opts.SkipRowsEnd)
	words, err := StripMetadata(words, opts.IgnoreAfter, opts.IgnoreBefore)
	if err != nil {
		return nil, err
	}
	if opts.Decode {
		words = DecodeList(words)
	}
	return words, nil
}

// SkipRows drops the first start and the last end lines.
func SkipRows(lines []string, start, end int) []string {
	start = max(start, 0)
	stop := max(len(lines)-max(end, 0), 0)
	if start >= stop {
		return []string{}
	}
	return lines[start:stop]
}

// ParseDelimiter expands the "s" and "t" aliases for space and tab.
func ParseDelimiter(d string) string {
	switch d {
	case "s":
		return " "
	case "t":
		return "\t"
	default:
		return d
	}
}

// StripMetadata removes metadata around each word. With ignoreAfter set,
// "abacus,12" keeps "abacus"; with ignoreBefore set, "11111\tabacus" keeps
// "abacus". Lines without the delimiter are kept whole.
func StripMetadata(lines []string, ignoreAfter, ignoreBefore string) ([]string, error) {
	if ignoreAfter != "" && ignoreBefore != "" {
		return nil, ErrBothDelimiters
	}
	if ignoreAfter == "" && ignoreBefore == "" {
		return lines, nil
	}

	words := make([]string, len(lines))
	for i, line := range lines {
		if ignoreAfter != "" {
			before, _, _ := strings.Cut(line, ParseDelimiter(ignoreAfter))
			words[i] = before
			continue
		}
		if _, after, found := strings.Cut(line, ParseDelimiter(ignoreBefore)); found {
			words[i] = after
		} else {
			words[i] = line
		}
	}
	return words, nil
}

// DecodeWord turns `"mat",` into `mat`. Other input is returned trimmed.
func DecodeWord(word string) string {
	word = strings.TrimSpace(word)
	if len(word) >= 3 && strings.HasPrefix(word, `"`) && strings.HasSuffix(word, `",`) {
		return word[1 : len(word)-2]
	}
	return word
}

// DecodeList applies DecodeWord to every line.
func DecodeList(lines []string) []string {
	words := make([]string, len(lines))
	for i, line := range lines {
		words[i] = DecodeWord(line)
	}
	return words
}
