// Package session keeps server-side login sessions keyed by an opaque id.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Session is the server-side state behind a session cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists sessions with a fixed time-to-live.
type Store interface {
	Create(ctx context.Context, userID int64) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

func newSession(userID int64) *Session {
	return &Session{ID: uuid.NewString(), UserID: userID, CreatedAt: time.Now().UTC()}
}
