// Package session implements cookie-backed server-side sessions. The
// cookie carries only a signed session id; all state lives in a
// domain.SessionStore.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/camptrail/camptrail/internal/domain"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "session"

	// TTL is how long a session lives without activity.
	TTL = 7 * 24 * time.Hour

	// TouchInterval bounds how often an active session's expiry is
	// rewritten in the store, to reduce write amplification.
	TouchInterval = 24 * time.Hour
)

// Manager loads, persists, and rotates sessions for HTTP requests.
type Manager struct {
	store  domain.SessionStore
	secret []byte
	secure bool
}

// NewManager creates a session manager. The secret signs the session-id
// cookie; secure controls the cookie's Secure attribute.
func NewManager(store domain.SessionStore, secret string, secure bool) *Manager {
	return &Manager{store: store, secret: []byte(secret), secure: secure}
}

// Load resolves the session for a request. A missing, tampered, or
// expired cookie yields a fresh anonymous session (isNew true), already
// persisted; callers must then WriteCookie. Sessions whose last touch
// is older than TouchInterval get their expiry slid forward.
func (m *Manager) Load(ctx context.Context, r *http.Request) (sess *domain.Session, isNew bool, err error) {
	if cookie, cerr := r.Cookie(CookieName); cerr == nil {
		if id, verr := m.verifyCookie(cookie.Value); verr == nil {
			sess, err = m.store.Get(ctx, id)
			if err == nil {
				if time.Since(sess.TouchedAt) > TouchInterval {
					if terr := m.store.Touch(ctx, id, TTL); terr != nil && !errors.Is(terr, domain.ErrNotFound) {
						return nil, false, fmt.Errorf("touch session: %w", terr)
					}
					sess.TouchedAt = time.Now().UTC()
				}
				return sess, false, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, false, fmt.Errorf("load session: %w", err)
			}
		}
	}

	sess = &domain.Session{ID: uuid.NewString()}
	if err := m.store.Set(ctx, sess, TTL); err != nil {
		return nil, false, fmt.Errorf("create session: %w", err)
	}
	return sess, true, nil
}

// Save persists handler mutations (user association, flash queue,
// return target) under the session's current id.
func (m *Manager) Save(ctx context.Context, sess *domain.Session) error {
	return m.store.Set(ctx, sess, TTL)
}

// Renew rotates the session id while keeping its state, guarding
// against session fixation across privilege changes. Callers must
// WriteCookie afterwards.
func (m *Manager) Renew(ctx context.Context, sess *domain.Session) error {
	old := sess.ID
	sess.ID = uuid.NewString()
	if err := m.store.Set(ctx, sess, TTL); err != nil {
		return fmt.Errorf("persist renewed session: %w", err)
	}
	if err := m.store.Delete(ctx, old); err != nil {
		return fmt.Errorf("drop old session: %w", err)
	}
	return nil
}

// ClearUser drops the session's user association and rotates its id.
// Calling it on an anonymous session is harmless.
func (m *Manager) ClearUser(ctx context.Context, sess *domain.Session) error {
	sess.UserID = 0
	return m.Renew(ctx, sess)
}

// WriteCookie sets the signed session cookie on the response.
func (m *Manager) WriteCookie(w http.ResponseWriter, sess *domain.Session) error {
	token, err := m.signID(sess.ID)
	if err != nil {
		return fmt.Errorf("sign session id: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TTL / time.Second),
	})
	return nil
}

// signID wraps the session id in an HS256 token so the cookie is
// tamper-evident; a forged or altered id never reaches the store.
func (m *Manager) signID(id string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": id,
		"iat": now.Unix(),
		"exp": now.Add(TTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) verifyCookie(value string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
