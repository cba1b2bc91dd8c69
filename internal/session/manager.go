package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"aroma/internal/bot"
)

// Session is one conversation: the orchestrator state plus a mutex that
// serializes messages within the session.
type Session struct {
	ID       string
	State    *bot.State
	LastSeen time.Time

	mu sync.Mutex
}

// Do runs fn while holding the session lock, so concurrent messages from
// the same session cannot interleave state mutations.
func (s *Session) Do(fn func(*bot.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.State)
}

// Manager tracks active conversations keyed by session ID and prunes idle
// ones.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idleTTL  time.Duration
	logger   *slog.Logger
}

func NewManager(idleTTL time.Duration, logger *slog.Logger) *Manager {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		logger:   logger,
	}
}

// Get returns the session for id, creating it on first use. An empty id
// mints a new one.
func (m *Manager) Get(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		s = &Session{ID: id, State: bot.NewState()}
		m.sessions[id] = s
	}
	s.LastSeen = time.Now()
	return s
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Prune drops sessions idle longer than the TTL and returns how many were
// removed.
func (m *Manager) Prune(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen) > m.idleTTL {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Debug("pruned idle sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// StartPruning runs Prune on a ticker until stop is closed.
func (m *Manager) StartPruning(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Prune(time.Now())
			case <-stop:
				return
			}
		}
	}()
}
