package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// newTestStore writes a fixture database and opens it through Open
func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "wla-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "words.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to open database: %v", err)
	}

	fixture := `
	CREATE TABLE words (id INTEGER PRIMARY KEY, word TEXT, note TEXT);
	INSERT INTO words (id, word, note) VALUES (3, 'cherry', 'c');
	INSERT INTO words (id, word, note) VALUES (1, 'apple', 'a');
	INSERT INTO words (id, word, note) VALUES (2, NULL, 'b');
	CREATE TABLE eff_large (roll TEXT, word TEXT);
	`
	if _, err := db.Exec(fixture); err != nil {
		db.Close()
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to write fixture: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Open failed: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestLoadWords(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	words, err := store.LoadWords("words", "word")
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}

	expected := []string{"apple", "", "cherry"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("LoadWords() = %q, want %q", words, expected)
	}
}

func TestLoadWordsEmptyTable(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	words, err := store.LoadWords("eff_large", "word")
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Expected no words, got %d", len(words))
	}
}

func TestLoadWordsInvalidIdentifier(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	tests := []struct {
		table  string
		column string
	}{
		{"words; DROP TABLE words", "word"},
		{"words", `word" FROM words --`},
		{"", "word"},
		{"1words", "word"},
	}

	for _, tt := range tests {
		_, err := store.LoadWords(tt.table, tt.column)
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("LoadWords(%q, %q) error = %v, want ErrInvalidIdentifier", tt.table, tt.column, err)
		}
	}
}

func TestLoadWordsMissingColumn(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if _, err := store.LoadWords("words", "missing"); err == nil {
		t.Error("Expected error for a missing column")
	}
}

func TestLoadWordsMissingTable(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	_, err := store.LoadWords("missing", "word")
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("LoadWords() error = %v, want ErrTableNotFound", err)
	}
	if !strings.Contains(err.Error(), "eff_large, words") {
		t.Errorf("Expected available tables in error, got %q", err.Error())
	}
}

func TestTables(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	tables, err := store.Tables()
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}

	expected := []string{"eff_large", "words"}
	if !reflect.DeepEqual(tables, expected) {
		t.Errorf("Tables() = %v, want %v", tables, expected)
	}
}

func TestOpenReadOnly(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if _, err := store.db.Exec("INSERT INTO words (word) VALUES ('zebra')"); err == nil {
		t.Error("Expected writes to fail on a read-only store")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	if err == nil {
		t.Error("Expected error opening a missing database")
	}
}
