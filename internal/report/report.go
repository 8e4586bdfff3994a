// Package report prints audit results, either as aligned text for people or
// as a single JSON object for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aayushbajaj/wla/pkg/audit"
)

// labelWidth aligns the colons of every report line.
const labelWidth = 26

// samplesPerRow is the number of samples printed on each row.
const samplesPerRow = 6

// Status marks a line as a passing check, a failing check or a plain value.
type Status int

const (
	Neutral Status = iota
	Pass
	Fail
)

// Line is one row of the text report.
type Line struct {
	Label  string
	Value  string
	Status Status
}

func check(label string, ok bool) Line {
	status := Fail
	if ok {
		status = Pass
	}
	return Line{Label: label, Value: strconv.FormatBool(ok), Status: status}
}

func value(label, v string) Line {
	return Line{Label: label, Value: v, Status: Neutral}
}

// Lines lists the report rows for a, in display order.
func Lines(a audit.ListAttributes) []Line {
	kraft := value("Kraft-McMillan inequality", a.KraftMcmillan.String())
	kraft.Status = Fail
	if a.KraftMcmillan == audit.Satisfied {
		kraft.Status = Pass
	}

	return []Line{
		value("Lines found", strconv.Itoa(a.ListLength)),
		check("Free of exact duplicates", !a.HasDuplicatesExact),
		check("Free of fuzzy duplicates", !a.HasDuplicatesFuzzy),
		check("Free of blank lines", !a.HasBlankLines),
		value("Unique words found", strconv.Itoa(a.UniqueWords)),
		check("No start/end whitespace", !a.HasStartingOrTrailingSpace),
		check("No non-ASCII characters", !a.HasNonASCIICharacters),
		check("Unicode normalized", a.HasUniformUnicodeNormalization),
		check("Free of prefix words", a.IsFreeOfPrefixWords),
		check("Free of suffix words", a.IsFreeOfSuffixWords),
		check("Uniquely decodable", a.IsUniquelyDecodable),
		check("Above brute force line", a.IsAboveBruteForceLine),
		check("Above Shannon line", a.IsAboveShannonLine),
		value("Length of shortest word", fmt.Sprintf("%d characters (%s)", a.ShortestWordLength, a.ShortestWordExample)),
		value("Length of longest word", fmt.Sprintf("%d characters (%s)", a.LongestWordLength, a.LongestWordExample)),
		value("Mean word length", fmt.Sprintf("%.2f characters", a.MeanWordLength)),
		value("Entropy per word", fmt.Sprintf("%.3f bits", a.EntropyPerWord)),
		value("Efficiency per character", fmt.Sprintf("%.3f bits", a.EfficiencyPerCharacter)),
		value("Assumed entropy per char", fmt.Sprintf("%.3f bits", a.AssumedEntropyPerCharacter)),
		value("Shortest edit distance", strconv.Itoa(a.ShortestEditDistance)),
		value("Mean edit distance", fmt.Sprintf("%.3f", a.MeanEditDistance)),
		value("Longest shared prefix", strconv.Itoa(a.LongestSharedPrefix)),
		value("Unique character prefix", strconv.Itoa(a.UniqueCharacterPrefix)),
		kraft,
	}
}

// Printer writes reports to an output stream, styled when the stream is a
// terminal.
type Printer struct {
	out    io.Writer
	styles Styles
	color  bool
}

// NewPrinter returns a Printer for out using theme. Color is enabled when out
// is a terminal and NO_COLOR is unset.
func NewPrinter(out io.Writer, theme Theme) *Printer {
	return &Printer{
		out:    out,
		styles: NewStyles(theme),
		color:  IsTerminal(out) && os.Getenv("NO_COLOR") == "",
	}
}

// SetColor forces styling on or off.
func (p *Printer) SetColor(color bool) {
	p.color = color
}

// FormatLine renders a single aligned row.
func (p *Printer) FormatLine(l Line) string {
	label := fmt.Sprintf("%-*s:", labelWidth, l.Label)
	if !p.color {
		return label + " " + l.Value
	}

	v := p.styles.Value
	switch l.Status {
	case Pass:
		v = p.styles.Good
	case Fail:
		v = p.styles.Bad
	}
	return p.styles.Label.Render(label) + " " + v.Render(l.Value)
}

// Attributes prints the text report for a, followed by its samples when
// withSamples is set.
func (p *Printer) Attributes(a audit.ListAttributes, withSamples bool) error {
	var b strings.Builder
	for _, l := range Lines(a) {
		b.WriteString(p.FormatLine(l))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if withSamples {
		return p.Samples(a.Samples)
	}
	return nil
}

// Samples prints samples under a heading, six per row.
func (p *Printer) Samples(samples []string) error {
	heading := "Word samples\n------------"
	if p.color {
		heading = p.styles.Title.UnsetMarginBottom().Render(heading)
	}
	_, err := fmt.Fprintf(p.out, "\n%s\n%s\n", heading, FormatSamples(samples))
	if err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// FormatSamples joins samples with spaces, breaking the row after every
// sixth one.
func FormatSamples(samples []string) string {
	var rows []string
	for start := 0; start < len(samples); start += samplesPerRow {
		end := min(start+samplesPerRow, len(samples))
		rows = append(rows, strings.Join(samples[start:end], " "))
	}
	return strings.Join(rows, "\n")
}

// WriteJSON writes a as one line of JSON.
func WriteJSON(w io.Writer, a audit.ListAttributes) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}
	return nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
