package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camptrail/camptrail/internal/domain"
)

// SessionStore implements domain.SessionStore using SQLite. Expiry is
// enforced on read: expired rows are removed lazily by Get.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore creates a new SQLite-backed SessionStore.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db.sqlDB}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	sess := &domain.Session{}
	var flashes string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, flashes, return_to, created_at, touched_at, expires_at
		 FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.UserID, &flashes, &sess.ReturnTo, &sess.CreatedAt, &sess.TouchedAt, &sess.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	if sess.Expired(time.Now().UTC()) {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
			return nil, fmt.Errorf("delete expired session: %w", err)
		}
		return nil, domain.ErrNotFound
	}

	if err := json.Unmarshal([]byte(flashes), &sess.Flashes); err != nil {
		return nil, fmt.Errorf("decode session flashes: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) Set(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	flashes, err := json.Marshal(sess.Flashes)
	if err != nil {
		return fmt.Errorf("encode session flashes: %w", err)
	}

	now := time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.TouchedAt = now
	sess.ExpiresAt = now.Add(ttl)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, flashes, return_to, created_at, touched_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 	user_id = excluded.user_id,
		 	flashes = excluded.flashes,
		 	return_to = excluded.return_to,
		 	touched_at = excluded.touched_at,
		 	expires_at = excluded.expires_at`,
		sess.ID, sess.UserID, string(flashes), sess.ReturnTo, sess.CreatedAt, sess.TouchedAt, sess.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Touch slides the session expiry without rewriting flashes or other
// state, keeping per-request writes small.
func (s *SessionStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"UPDATE sessions SET touched_at = ?, expires_at = ? WHERE id = ?",
		now, now.Add(ttl), id,
	)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
