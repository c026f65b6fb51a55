// internal/storage/sqlite_store.go
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/models"
)

// SQLiteStore keeps the history snapshot in a SQLite database. Each result is
// one row with its position in the newest-first order; Save replaces all rows
// in one transaction, matching the snapshot semantics of the file store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS history (
		position INTEGER PRIMARY KEY,
		result   TEXT NOT NULL
	);`)
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot in stored order.
func (s *SQLiteStore) Load() ([]models.AnalysisResult, error) {
	rows, err := s.db.Query(`SELECT result FROM history ORDER BY position`)
	if err != nil {
		return nil, apperrors.NewPersistence("reading history rows", err)
	}
	defer rows.Close()

	var results []models.AnalysisResult
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, apperrors.NewPersistence("scanning history row", err)
		}

		var result models.AnalysisResult
		if err := json.Unmarshal([]byte(payload), &result); err != nil {
			return nil, apperrors.NewPersistence("parsing history row", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistence("iterating history rows", err)
	}

	return results, nil
}

// Save replaces the whole snapshot in one transaction.
func (s *SQLiteStore) Save(results []models.AnalysisResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apperrors.NewPersistence("starting history transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return apperrors.NewPersistence("clearing history rows", err)
	}

	for i, result := range results {
		payload, err := json.Marshal(result)
		if err != nil {
			return apperrors.NewPersistence("encoding history row", err)
		}
		if _, err := tx.Exec(`INSERT INTO history (position, result) VALUES (?, ?)`, i, string(payload)); err != nil {
			return apperrors.NewPersistence("writing history row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewPersistence("committing history snapshot", err)
	}

	return nil
}
