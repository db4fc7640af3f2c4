package service

import (
	"sort"
	"sync"
	"time"

	"lecturebot/internal/domain"

	"go.uber.org/zap"
)

// DefaultQuietWindow is how long a media group must stay silent before
// it is considered complete. Albums arrive as separate messages with no
// end-of-batch marker, so a trailing debounce is the only reliable signal.
const DefaultQuietWindow = 2 * time.Second

// FlushFunc receives a completed batch, sorted by message ID.
// An empty groupID means the file arrived outside any media group.
type FlushFunc func(groupID string, batch []domain.Media)

// MediaGroupService coalesces media messages sharing a group tag into
// one batch. Each new message for a group restarts its quiet timer; the
// batch is flushed once the timer fires with no further arrivals.
type MediaGroupService struct {
	quiet   time.Duration
	onFlush FlushFunc
	logger  *zap.Logger

	mu     sync.Mutex
	groups map[string]*groupBuffer
}

type groupBuffer struct {
	timer *time.Timer
	items []domain.Media
}

// NewMediaGroupService creates a new media group service
func NewMediaGroupService(quiet time.Duration, onFlush FlushFunc, logger *zap.Logger) *MediaGroupService {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &MediaGroupService{
		quiet:   quiet,
		onFlush: onFlush,
		logger:  logger,
		groups:  make(map[string]*groupBuffer),
	}
}

// Add buffers a grouped media message, or flushes an ungrouped one
// straight through as a single-item batch.
func (s *MediaGroupService) Add(m domain.Media) {
	if m.GroupID == "" {
		s.onFlush("", []domain.Media{m})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[m.GroupID]
	if !ok {
		g = &groupBuffer{}
		s.groups[m.GroupID] = g
		groupID := m.GroupID
		g.timer = time.AfterFunc(s.quiet, func() {
			s.flush(groupID)
		})
	}
	g.items = append(g.items, m)

	// Every append restarts the quiet timer
	g.timer.Reset(s.quiet)
}

func (s *MediaGroupService) flush(groupID string) {
	s.mu.Lock()
	g, ok := s.groups[groupID]
	if ok {
		delete(s.groups, groupID)
		g.timer.Stop()
	}
	s.mu.Unlock()

	if !ok || len(g.items) == 0 {
		return
	}

	// Transport delivery order is not authoring order; restore it
	batch := g.items
	sort.Slice(batch, func(i, j int) bool {
		return batch[i].MessageID < batch[j].MessageID
	})

	s.logger.Info("Media group flushed",
		zap.String("group_id", groupID),
		zap.Int("files", len(batch)),
	)

	s.onFlush(groupID, batch)
}

// Stop cancels all pending timers without flushing
func (s *MediaGroupService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for groupID, g := range s.groups {
		g.timer.Stop()
		delete(s.groups, groupID)
	}
}
