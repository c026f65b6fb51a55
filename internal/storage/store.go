// internal/storage/store.go

// Package storage provides the persistence backends for the analysis history
// snapshot: an atomic-write JSON file store and a SQLite store.
package storage

import "github.com/scenespeak/scenespeak/internal/models"

// Store persists the full history snapshot. Implementations replace the whole
// list on every Save; ordering (newest first) is owned by the caller.
type Store interface {
	// Load reads the persisted snapshot. A missing store yields an empty
	// snapshot and no error; a corrupt one yields a persistence error.
	Load() ([]models.AnalysisResult, error)

	// Save atomically replaces the persisted snapshot.
	Save(results []models.AnalysisResult) error
}
