package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aayushbajaj/wla/internal/report"
	"github.com/aayushbajaj/wla/pkg/audit"
)

var testWords = []string{"apple", "banana", "cherry", "grape", "grapefruit", "lemon"}

func newTestModel(t *testing.T) Model {
	t.Helper()
	model := New(testWords, report.Themes["default"], audit.WithSeed(7), audit.WithSampleCount(6))

	msg := model.auditCmd()()
	updated, _ := model.Update(msg)
	return updated.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	model := New(testWords, report.Themes["default"])

	if len(model.matches) != len(testWords) {
		t.Errorf("Expected %d visible words, got %d", len(testWords), len(model.matches))
	}
	if model.attrs != nil {
		t.Error("Expected attributes to be computed by Init")
	}
	if model.View() != "Auditing..." {
		t.Errorf("Expected loading view, got %q", model.View())
	}
}

func TestAuditMessage(t *testing.T) {
	model := newTestModel(t)

	if model.attrs == nil {
		t.Fatal("Expected attributes after the audit message")
	}
	if model.attrs.ListLength != len(testWords) {
		t.Errorf("ListLength = %d, want %d", model.attrs.ListLength, len(testWords))
	}
	if len(model.samples) != 6 {
		t.Errorf("Expected 6 samples, got %d", len(model.samples))
	}

	view := model.View()
	for _, want := range []string{"Lines found", "Samples", "apple"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestAuditError(t *testing.T) {
	model := New(nil, report.Themes["default"])
	updated, _ := model.Update(model.auditCmd()())
	model = updated.(Model)

	if model.err == nil {
		t.Fatal("Expected an error for an empty list")
	}
	if !strings.HasPrefix(model.View(), "Error:") {
		t.Errorf("Expected error view, got %q", model.View())
	}
}

func TestResample(t *testing.T) {
	model := newTestModel(t)

	updated, _ := model.Update(keyRunes("s"))
	model = updated.(Model)

	if len(model.samples) != 6 {
		t.Fatalf("Expected 6 samples, got %d", len(model.samples))
	}
	for _, s := range model.samples {
		found := false
		for _, w := range testWords {
			if s == w {
				found = true
			}
		}
		if !found {
			t.Errorf("Sample %q is not from the list", s)
		}
	}
}

func TestSearch(t *testing.T) {
	model := newTestModel(t)

	updated, _ := model.Update(keyRunes("/"))
	model = updated.(Model)
	if !model.searching {
		t.Fatal("Expected search mode after /")
	}

	for _, r := range "grp" {
		updated, _ = model.Update(keyRunes(string(r)))
		model = updated.(Model)
	}

	if model.query != "grp" {
		t.Errorf("query = %q, want grp", model.query)
	}
	if len(model.matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(model.matches))
	}
	for _, idx := range model.matches {
		if !strings.HasPrefix(testWords[idx], "grape") {
			t.Errorf("Unexpected match %q", testWords[idx])
		}
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	model = updated.(Model)
	if model.query != "gr" {
		t.Errorf("query after backspace = %q, want gr", model.query)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	if model.searching || model.query != "" {
		t.Error("Expected esc to leave search mode and clear the query")
	}
	if len(model.matches) != len(testWords) {
		t.Errorf("Expected all words after clearing, got %d", len(model.matches))
	}
}

func TestSearchEnterKeepsFilter(t *testing.T) {
	model := newTestModel(t)

	for _, msg := range []tea.KeyMsg{keyRunes("/"), keyRunes("lem"), {Type: tea.KeyEnter}} {
		updated, _ := model.Update(msg)
		model = updated.(Model)
	}

	if model.searching {
		t.Error("Expected enter to leave search mode")
	}
	word, ok := model.Selected()
	if !ok || word != "lemon" {
		t.Errorf("Selected() = %q, %v, want lemon", word, ok)
	}
}

func TestNavigation(t *testing.T) {
	model := newTestModel(t)

	tests := []struct {
		key      string
		expected int
	}{
		{"down", 1},
		{"j", 2},
		{"up", 1},
		{"k", 0},
		{"k", 0},
		{"G", len(testWords) - 1},
		{"j", len(testWords) - 1},
		{"g", 0},
	}

	for _, tt := range tests {
		var msg tea.KeyMsg
		switch tt.key {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = keyRunes(tt.key)
		}
		updated, _ := model.Update(msg)
		model = updated.(Model)
		if model.cursor != tt.expected {
			t.Errorf("after %q cursor = %d, want %d", tt.key, model.cursor, tt.expected)
		}
	}
}

func TestScrolling(t *testing.T) {
	model := newTestModel(t)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 15})
	model = updated.(Model)

	if model.listHeight() != 3 {
		t.Fatalf("listHeight() = %d, want 3", model.listHeight())
	}

	for i := 0; i < 4; i++ {
		updated, _ = model.Update(keyRunes("j"))
		model = updated.(Model)
	}
	if model.offset != 2 {
		t.Errorf("offset = %d, want 2", model.offset)
	}
}

func TestQuitKeys(t *testing.T) {
	model := newTestModel(t)

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := model.Update(msg)
		if cmd == nil {
			t.Errorf("Expected quit command for %q", msg.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Expected QuitMsg for %q", msg.String())
		}
	}
}

func TestRefresh(t *testing.T) {
	model := newTestModel(t)

	updated, cmd := model.Update(keyRunes("r"))
	model = updated.(Model)
	if model.attrs != nil {
		t.Error("Expected attributes to be cleared while re-auditing")
	}
	if cmd == nil {
		t.Fatal("Expected an audit command")
	}

	updated, _ = model.Update(cmd())
	model = updated.(Model)
	if model.attrs == nil {
		t.Error("Expected attributes after re-auditing")
	}
}

func TestRefreshIgnoredWhileAuditing(t *testing.T) {
	model := newTestModel(t)

	updated, cmd := model.Update(keyRunes("r"))
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected an audit command")
	}

	updated, second := model.Update(keyRunes("r"))
	model = updated.(Model)
	if second != nil {
		t.Error("Expected no second audit while one is running")
	}

	samples := append([]string(nil), model.samples...)
	updated, _ = model.Update(keyRunes("s"))
	model = updated.(Model)
	if strings.Join(model.samples, " ") != strings.Join(samples, " ") {
		t.Error("Expected samples to stay put while auditing")
	}
}

func TestAuditRunsAlongsideResample(t *testing.T) {
	model := newTestModel(t)
	cmds := []tea.Cmd{model.auditCmd(), model.auditCmd()}

	var wg sync.WaitGroup
	msgs := make([]tea.Msg, len(cmds))
	for i, cmd := range cmds {
		wg.Add(1)
		go func(i int, cmd tea.Cmd) {
			defer wg.Done()
			msgs[i] = cmd()
		}(i, cmd)
	}
	for i := 0; i < 100; i++ {
		model.resample()
	}
	wg.Wait()

	for i, msg := range msgs {
		audited, ok := msg.(auditMsg)
		if !ok {
			t.Fatalf("command %d returned %T, want auditMsg", i, msg)
		}
		if audited.err != nil {
			t.Errorf("command %d error = %v", i, audited.err)
		}
		if len(audited.attrs.Samples) != 6 {
			t.Errorf("command %d drew %d samples, want 6", i, len(audited.attrs.Samples))
		}
	}
}

func TestSeededAuditsAreReproducible(t *testing.T) {
	first := newTestModel(t)
	second := newTestModel(t)

	if strings.Join(first.samples, " ") != strings.Join(second.samples, " ") {
		t.Errorf("seeded samples differ: %v vs %v", first.samples, second.samples)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		list     []string
		word     string
		nearest  string
		distance int
		ok       bool
	}{
		{testWords, "grape", "apple", 4, true},
		{[]string{"cat", "cot", "dog"}, "cat", "cot", 1, true},
		{[]string{"cat", "cat"}, "cat", "", 0, false},
		{nil, "cat", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			nearest, distance, ok := Nearest(tt.list, tt.word)
			if nearest != tt.nearest || distance != tt.distance || ok != tt.ok {
				t.Errorf("Nearest() = %q, %d, %v, want %q, %d, %v",
					nearest, distance, ok, tt.nearest, tt.distance, tt.ok)
			}
		})
	}
}
