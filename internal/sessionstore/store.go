// Package sessionstore keeps authenticated sessions keyed by session ID.
//
// There is no process-wide current user. Every login creates its own
// session, so sessions of different callers never interfere.
package sessionstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cashops/cash-bank/internal/domain"
)

// Store is an in-memory concurrent session registry.
type Store struct {
	duration time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]domain.Session
}

// New returns a Store issuing sessions with the given lifetime.
func New(duration time.Duration) *Store {
	return &Store{
		duration: duration,
		sessions: make(map[uuid.UUID]domain.Session),
	}
}

// Create registers and returns a new session for the given username.
func (s *Store) Create(username string) domain.Session {
	now := time.Now().UTC()

	session := domain.Session{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.duration),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get returns the session with the given ID. An expired session is dropped
// and reported as expired.
func (s *Store) Get(id uuid.UUID) (domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()

		return domain.Session{}, domain.ErrExpiredSession
	}

	return session, nil
}

// Delete invalidates the session with the given ID and reports whether it
// existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)

	return ok
}

// DeleteByUser invalidates every session of the given username and returns
// how many sessions existed.
func (s *Store) DeleteByUser(username string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0

	for id, session := range s.sessions {
		if session.Username == username {
			delete(s.sessions, id)
			deleted++
		}
	}

	return deleted
}
