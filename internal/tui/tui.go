// Package tui is an interactive browser for an audited word list.
package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/aayushbajaj/wla/internal/report"
	"github.com/aayushbajaj/wla/pkg/audit"
)

const defaultListHeight = 12

type Model struct {
	words   []string
	opts    audit.Options
	attrs   *audit.ListAttributes
	samples []string
	err     error

	printer *report.Printer
	styles  report.Styles

	searching bool
	query     string
	matches   []int
	cursor    int
	offset    int

	width  int
	height int
}

type auditMsg struct {
	attrs audit.ListAttributes
	err   error
}

// New returns a browser for words. opts configure the audit and the sample
// draws; the same generator feeds both.
func New(words []string, theme report.Theme, opts ...audit.Option) Model {
	o := audit.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	printer := report.NewPrinter(io.Discard, theme)
	printer.SetColor(true)

	m := Model{
		words:   words,
		opts:    o,
		printer: printer,
		styles:  report.NewStyles(theme),
	}
	m.filter()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.auditCmd()
}

// auditCmd returns a command that audits the list with its own generator.
// The generator is seeded from the model's on the calling goroutine, so the
// command never touches m.opts.Rand while Update draws samples from it.
func (m Model) auditCmd() tea.Cmd {
	o := m.opts
	o.Rand = rand.New(rand.NewSource(m.opts.Rand.Int63()))
	words := m.words
	return func() tea.Msg {
		attrs, err := audit.ComputeAttributes(words, audit.WithOptions(o))
		return auditMsg{attrs: attrs, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.attrs == nil {
				return m, nil
			}
			m.attrs = nil
			return m, m.auditCmd()
		case "s":
			if m.attrs != nil {
				m.resample()
			}
		case "/":
			m.searching = true
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.listHeight())
		case "pgdown":
			m.move(m.listHeight())
		case "home", "g":
			m.move(-len(m.matches))
		case "end", "G":
			m.move(len(m.matches))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.move(0)

	case auditMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.attrs = &msg.attrs
			m.samples = msg.attrs.Samples
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
		m.filter()
	case tea.KeyEnter:
		m.searching = false
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
			m.filter()
		}
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
		m.filter()
	}
	return m, nil
}

// filter recomputes the visible words for the current query, best fuzzy
// matches first.
func (m *Model) filter() {
	m.cursor, m.offset = 0, 0
	if m.query == "" {
		m.matches = make([]int, len(m.words))
		for i := range m.words {
			m.matches[i] = i
		}
		return
	}

	found := fuzzy.Find(m.query, m.words)
	m.matches = make([]int, len(found))
	for i, match := range found {
		m.matches[i] = match.Index
	}
}

func (m *Model) resample() {
	if len(m.words) == 0 {
		return
	}
	n := m.opts.SampleCount
	if n <= 0 {
		n = audit.DefaultSampleCount
	}
	samples, err := audit.GenerateSamples(m.words, m.opts.Rand, n)
	if err != nil {
		m.err = err
		return
	}
	m.samples = samples
}

func (m *Model) move(delta int) {
	m.cursor = max(0, min(m.cursor+delta, len(m.matches)-1))
	height := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return defaultListHeight
	}
	return max(m.height-12, 3)
}

// Selected returns the word under the cursor.
func (m Model) Selected() (string, bool) {
	if len(m.matches) == 0 {
		return "", false
	}
	return m.words[m.matches[m.cursor]], true
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.attrs == nil {
		return "Auditing..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Word list audit"))
	b.WriteString("\n")

	left := m.styles.Box.Render(m.renderAttributes())
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Samples.Render("Samples\n\n"+report.FormatSamples(m.samples)),
		m.renderSearch(),
		m.renderWords(),
		m.renderSelected(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n")

	help := "↑/↓: move • /: search • s: new samples • r: re-audit • q: quit"
	if m.searching {
		help = "type to filter • enter: keep filter • esc: clear"
	}
	b.WriteString(m.styles.Help.Render(help))

	return b.String()
}

func (m Model) renderAttributes() string {
	lines := report.Lines(*m.attrs)
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = m.printer.FormatLine(l)
	}
	return strings.Join(rendered, "\n")
}

func (m Model) renderSearch() string {
	prompt := "/"
	if m.searching {
		prompt = m.styles.Selected.Render("/")
	}
	count := m.styles.Label.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.words)))
	return m.styles.Search.Render(prompt + m.query + count)
}

func (m Model) renderWords() string {
	if len(m.matches) == 0 {
		return m.styles.Muted.Render("No matching words")
	}

	end := min(m.offset+m.listHeight(), len(m.matches))
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		idx := m.matches[i]
		row := fmt.Sprintf("%6d  %s", idx+1, m.words[idx])
		if i == m.cursor {
			rows = append(rows, m.styles.Selected.Render(row))
		} else {
			rows = append(rows, m.styles.Muted.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

// renderSelected describes the selected word and its nearest neighbour by
// edit distance.
func (m Model) renderSelected() string {
	word, ok := m.Selected()
	if !ok {
		return ""
	}

	details := fmt.Sprintf("\n%s %s",
		m.styles.Label.Render("Characters:"),
		m.styles.Value.Render(fmt.Sprintf("%d", audit.CharacterCount(word))),
	)
	if nearest, distance, ok := Nearest(m.words, word); ok {
		details += fmt.Sprintf("  %s %s",
			m.styles.Label.Render("Nearest:"),
			m.styles.Value.Render(fmt.Sprintf("%s (%d)", nearest, distance)),
		)
	}
	return details
}

// Nearest returns the word in list closest to word by edit distance,
// ignoring copies of word itself. The first closest word wins.
func Nearest(list []string, word string) (string, int, bool) {
	best, bestDistance, found := "", 0, false
	for _, candidate := range list {
		if candidate == word {
			continue
		}
		d := audit.EditDistance(word, candidate)
		if !found || d < bestDistance {
			best, bestDistance, found = candidate, d, true
		}
	}
	return best, bestDistance, found
}
