package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/camptrail/camptrail/internal/domain"
)

const keyPrefix = "session:"

// SessionStore implements domain.SessionStore on Redis. Each session is
// a JSON record under "session:<id>" whose TTL is managed by Redis
// itself, so expiry needs no sweeper.
type SessionStore struct {
	client *goredis.Client
}

// Open connects to Redis using a URL (redis://...) and verifies the
// connection.
func Open(ctx context.Context, url string) (*SessionStore, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.DialTimeout = 5 * time.Second
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := goredis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &SessionStore{client: client}, nil
}

// Close releases the underlying connection pool.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

type sessionRecord struct {
	UserID    int64          `json:"user_id"`
	Flashes   []domain.Flash `json:"flashes,omitempty"`
	ReturnTo  string         `json:"return_to,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	TouchedAt time.Time      `json:"touched_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    rec.UserID,
		Flashes:   rec.Flashes,
		ReturnTo:  rec.ReturnTo,
		CreatedAt: rec.CreatedAt,
		TouchedAt: rec.TouchedAt,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

func (s *SessionStore) Set(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	now := time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.TouchedAt = now
	sess.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(sessionRecord{
		UserID:    sess.UserID,
		Flashes:   sess.Flashes,
		ReturnTo:  sess.ReturnTo,
		CreatedAt: sess.CreatedAt,
		TouchedAt: sess.TouchedAt,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Touch reloads the record to refresh its touched_at stamp and resets
// the key TTL.
func (s *SessionStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.Set(ctx, sess, ttl)
}
