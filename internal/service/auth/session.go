package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a server-side record associating a session ID with an
// authenticated identity. Sessions are keyed by email: logging in again
// replaces any existing session for that email.
type Session struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// SessionStore is an in-process session registry. It is the only piece of
// shared mutable state in the application besides the long-lived client
// handles, and it is safe for concurrent use.
type SessionStore struct {
	mu      sync.RWMutex
	byEmail map[string]Session
}

// NewSessionStore creates an empty session registry.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		byEmail: make(map[string]Session),
	}
}

// Start creates a session for the given identity, replacing any existing
// session for the same email, and returns it.
func (s *SessionStore) Start(email, name string) Session {
	session := Session{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.byEmail[email] = session
	s.mu.Unlock()

	return session
}

// Get returns the live session for the given email, if any.
func (s *SessionStore) Get(email string) (Session, bool) {
	s.mu.RLock()
	session, ok := s.byEmail[email]
	s.mu.RUnlock()
	return session, ok
}

// End removes the session for the given email. Ending an absent session is
// a no-op, making logout idempotent.
func (s *SessionStore) End(email string) {
	s.mu.Lock()
	delete(s.byEmail, email)
	s.mu.Unlock()
}
