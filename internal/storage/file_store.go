// internal/storage/file_store.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/models"
)

// FileStore keeps the history snapshot in a single JSON file. Writes go
// through a temp file and rename so a crash never leaves a half-written
// snapshot behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store at path, creating parent directories as
// needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the snapshot. A missing file is an empty history, not an error.
func (s *FileStore) Load() ([]models.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewPersistence("reading history file", err)
	}

	var results []models.AnalysisResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, apperrors.NewPersistence("parsing history file", err)
	}

	return results, nil
}

// Save atomically replaces the snapshot on disk.
func (s *FileStore) Save(results []models.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if results == nil {
		results = []models.AnalysisResult{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return apperrors.NewPersistence("encoding history snapshot", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return apperrors.NewPersistence("writing history snapshot", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return apperrors.NewPersistence("replacing history snapshot", err)
	}

	return nil
}
