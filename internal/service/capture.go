package service

import (
	"sync"

	"lecturebot/internal/domain"
)

// CaptureService collects file IDs per chat so an operator can copy
// them into the catalogue. The list is opened by /get_ids, appended to
// by every media message while open, and closed by the finish button.
type CaptureService struct {
	mu    sync.Mutex
	lists map[int64][]domain.FileRef
}

// NewCaptureService creates a new capture service
func NewCaptureService() *CaptureService {
	return &CaptureService{
		lists: make(map[int64][]domain.FileRef),
	}
}

// Start opens (and clears) the capture list for a chat
func (s *CaptureService) Start(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[chatID] = []domain.FileRef{}
}

// Active reports whether the chat has an open capture list
func (s *CaptureService) Active(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lists[chatID]
	return ok
}

// Add appends a file reference to the chat's open list.
// It reports false when no list is open, so the caller can fall back
// to normal media handling.
func (s *CaptureService) Add(chatID int64, ref domain.FileRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[chatID]
	if !ok {
		return false
	}
	s.lists[chatID] = append(list, ref)
	return true
}

// Finish closes the chat's list and returns the captured references
func (s *CaptureService) Finish(chatID int64) ([]domain.FileRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[chatID]
	if !ok {
		return nil, false
	}
	delete(s.lists, chatID)
	return list, true
}
