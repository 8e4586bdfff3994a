// Package storage reads word lists out of SQLite databases.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ErrInvalidIdentifier is returned for table or column names that are not
// plain SQL identifiers.
var ErrInvalidIdentifier = errors.New("storage: invalid table or column name")

// ErrTableNotFound is returned by LoadWords when the table does not exist.
var ErrTableNotFound = errors.New("storage: table not found")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store is a read-only handle on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path read-only. The file must already exist.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Store{db: db}, nil
}

// Tables lists the user tables in the database.
func (s *Store) Tables() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// LoadWords returns every value of column in table, in rowid order. NULL
// values come back as empty strings so they show up as blank lines.
func (s *Store) LoadWords(table, column string) ([]string, error) {
	if !identifier.MatchString(table) || !identifier.MatchString(column) {
		return nil, fmt.Errorf("%w: %q.%q", ErrInvalidIdentifier, table, column)
	}

	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}
	// SQLite matches table names case-insensitively.
	if !slices.ContainsFunc(tables, func(name string) bool { return strings.EqualFold(name, table) }) {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrTableNotFound, table, strings.Join(tables, ", "))
	}

	query := fmt.Sprintf(`SELECT "%s" FROM "%s" ORDER BY rowid`, column, table)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word sql.NullString
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
