// internal/services/history.go
package services

import (
	"log/slog"
	"sync"

	"github.com/scenespeak/scenespeak/internal/apperrors"
	"github.com/scenespeak/scenespeak/internal/logger"
	"github.com/scenespeak/scenespeak/internal/models"
	"github.com/scenespeak/scenespeak/internal/storage"
)

// HistoryLimit caps the number of retained results.
const HistoryLimit = 10

// HistoryService maintains the ordered, size-capped log of past analysis
// results, newest first. Every mutation replaces the persisted snapshot.
type HistoryService struct {
	store   storage.Store
	log     *slog.Logger
	mu      sync.Mutex
	results []models.AnalysisResult
}

// NewHistoryService loads the persisted history from the injected store.
// An unreadable or corrupt snapshot starts an empty history rather than
// blocking startup; the condition is only logged.
func NewHistoryService(store storage.Store) *HistoryService {
	h := &HistoryService{
		store: store,
		log:   logger.With("history"),
	}

	results, err := store.Load()
	if err != nil {
		h.log.Warn("history snapshot unreadable, starting empty", "error", err)
		results = nil
	}
	if len(results) > HistoryLimit {
		results = results[:HistoryLimit]
	}
	h.results = results

	return h
}

// Append inserts a result at the front, evicts entries past the cap and
// persists the new snapshot. A persistence failure is returned but the
// in-memory history keeps the new entry.
func (h *HistoryService) Append(result models.AnalysisResult) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = append([]models.AnalysisResult{result}, h.results...)
	if len(h.results) > HistoryLimit {
		h.results = h.results[:HistoryLimit]
	}

	if err := h.store.Save(h.results); err != nil {
		h.log.Error("persisting history snapshot", "error", err)
		return apperrors.NewPersistence("saving analysis history", err)
	}

	return nil
}

// Clear empties the history and persists the empty snapshot. Idempotent.
func (h *HistoryService) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = nil

	if err := h.store.Save(nil); err != nil {
		h.log.Error("persisting cleared history", "error", err)
		return apperrors.NewPersistence("clearing analysis history", err)
	}

	return nil
}

// List returns a copy of the history, newest first.
func (h *HistoryService) List() []models.AnalysisResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.AnalysisResult, len(h.results))
	copy(out, h.results)
	return out
}
