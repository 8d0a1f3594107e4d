package domain

import (
	"context"
	"time"
)

// Flash kinds. Each flash is queued on the session and drained exactly
// once on the next rendered page.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time notification shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Session is the server-side state associated with a browser via the
// session cookie. A session is associated with at most one user at a
// time; UserID is zero while anonymous.
type Session struct {
	ID        string
	UserID    int64
	Flashes   []Flash
	ReturnTo  string
	CreatedAt time.Time
	TouchedAt time.Time
	ExpiresAt time.Time
}

// AddFlash queues a one-time message for the next rendered page.
func (s *Session) AddFlash(kind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
}

// PopFlashes returns all queued flashes and clears the queue.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Expired reports whether the session's TTL has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionStore persists sessions keyed by id with a TTL. Touch slides
// the expiry without rewriting the whole record.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, session *Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Touch(ctx context.Context, id string, ttl time.Duration) error
}
