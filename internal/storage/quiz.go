package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

type sessionEntry struct {
	session    *entities.QuizSession
	lastActive time.Time
}

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry

	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewSessionStorage creates a new SessionStorage dropping sessions idle for longer than ttl.
func NewSessionStorage(ttl time.Duration, logger *zap.Logger) *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]sessionEntry),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Store saves the session for a given chat ID, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sessionEntry{session: session, lastActive: s.now()}
}

// Get retrieves the session for a given chat ID and marks it as active.
func (s *SessionStorage) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	entry.lastActive = s.now()
	s.sessions[chatID] = entry

	return entry.session, true
}

// Delete removes the session for a given chat ID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions not accessed since now-ttl and returns how many were removed.
func (s *SessionStorage) EvictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, entry := range s.sessions {
		if now.Sub(entry.lastActive) > s.ttl {
			delete(s.sessions, chatID)
			evicted++
		}
	}

	return evicted
}

// Start runs the idle session sweep every interval until ctx is done.
func (s *SessionStorage) Start(ctx context.Context, interval time.Duration) error {
	c := cron.New()

	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if n := s.EvictIdle(s.now()); n > 0 {
			s.logger.Info("evicted idle quiz sessions", zap.Int("count", n))
		}
	})
	if err != nil {
		return fmt.Errorf("add sweep job: %w", err)
	}

	c.Start()
	s.logger.Info("session sweeper started", zap.Duration("interval", interval))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")

	return nil
}
