package service

import (
	"sync"

	"lecturebot/internal/domain"
	"lecturebot/internal/repository"

	"go.uber.org/zap"
)

// StateService tracks each user's current menu state in memory and
// flushes the mapping to the repository periodically and at shutdown.
// Reads and writes may come from the dispatch path and the background
// flush loop concurrently.
type StateService struct {
	repo   repository.StateRepository
	logger *zap.Logger

	mu     sync.RWMutex
	states map[int64]domain.StateLabel
}

// NewStateService creates a new state service
func NewStateService(repo repository.StateRepository, logger *zap.Logger) *StateService {
	return &StateService{
		repo:   repo,
		logger: logger,
		states: make(map[int64]domain.StateLabel),
	}
}

// Load replaces the in-memory mapping with the persisted one
func (s *StateService) Load() error {
	states, err := s.repo.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.states = states
	s.mu.Unlock()

	s.logger.Info("User states loaded", zap.Int("users", len(states)))
	return nil
}

// Get returns the user's current state, or HOME if none is stored
func (s *StateService) Get(userID int64) domain.StateLabel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if label, ok := s.states[userID]; ok {
		return label
	}
	return domain.StateHome
}

// Set overwrites the user's state, visible to the next dispatch immediately
func (s *StateService) Set(userID int64, label domain.StateLabel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = label
}

// Flush persists a snapshot of the current mapping
func (s *StateService) Flush() error {
	s.mu.RLock()
	snapshot := make(map[int64]domain.StateLabel, len(s.states))
	for userID, label := range s.states {
		snapshot[userID] = label
	}
	s.mu.RUnlock()

	return s.repo.Save(snapshot)
}
