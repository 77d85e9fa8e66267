package storage

import (
	"errors"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

// ErrNotFound is returned when a session key does not match any row.
var ErrNotFound = errors.New("session not found")

// Repository persists session aggregates. Implementations must return
// ErrNotFound (wrapped) for unknown session keys so callers can tell
// not-found apart from storage failures.
type Repository interface {
	CreateSession(s *game.Session) error
	// GetSessionByKey loads a session with its roster in turn order.
	GetSessionByKey(key string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	DeleteSession(key string) error
	// RemovePlayer deletes one roster row; the caller fixes turn order.
	RemovePlayer(sessionID uint, playerID string) error
}
