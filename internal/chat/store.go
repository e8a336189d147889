package chat

import (
	"sync"
	"time"

	"codeberg.org/humanvsbot/server/internal/llm"
)

const (
	DefaultSessionTTL      = 24 * time.Hour
	DefaultCleanupInterval = 5 * time.Minute
)

// represents one ongoing game-room conversation
type Session struct {
	ID string

	// serializes turns for this session; distinct sessions run concurrently
	mu      sync.Mutex
	history []llm.Message

	// guarded by the store mutex
	lastActivity time.Time
}

// returns a copy of the session's conversation history
func (s *Session) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]llm.Message, len(s.history))
	copy(history, s.history)

	return history
}

// manages game-room sessions in memory
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	seed     []llm.Message
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// returns a new session store; every session it creates starts with a copy of
// the seed history. A background goroutine evicts sessions idle longer than ttl.
func NewStore(seed []llm.Message, ttl, cleanupInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	s := &Store{
		sessions: make(map[string]*Session),
		seed:     seed,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	// start cleanup goroutine
	go s.cleanupIdleSessions(cleanupInterval)

	return s
}

// returns the session for the given ID, creating and seeding it on first use.
// At most one session exists per ID, even under concurrent first turns.
func (s *Store) GetOrCreate(sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, exists := s.sessions[sessionID]; exists {
		session.lastActivity = time.Now()
		return session
	}

	history := make([]llm.Message, len(s.seed))
	copy(history, s.seed)

	session := &Session{
		ID:           sessionID,
		history:      history,
		lastActivity: time.Now(),
	}
	s.sessions[sessionID] = session

	return session
}

// retrieves a session by ID without creating it
func (s *Store) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]

	return session, exists
}

// removes a session
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// returns the number of active sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// stops the cleanup goroutine
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// runs periodically to remove sessions with no recent activity
func (s *Store) cleanupIdleSessions(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()

			for id, session := range s.sessions {
				if now.Sub(session.lastActivity) > s.ttl {
					delete(s.sessions, id)
				}
			}

			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
