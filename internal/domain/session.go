package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound indicates that the session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrExpiredSession indicates the expired session.
	ErrExpiredSession = errors.New("expired session")
)

// Session associates one caller with an authenticated user. Sessions are
// keyed by their own ID, never by a process-wide field, so concurrent logins
// by different users do not interfere.
type Session struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}
