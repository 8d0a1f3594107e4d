package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/service"
	"github.com/camptrail/camptrail/internal/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
	userContextKey    contextKey = "user"
)

// SessionFromContext extracts the request's session. Returns nil only
// if the session middleware did not run.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// UserFromContext extracts the authenticated user from the request
// context. Returns nil if the session is anonymous.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// WithSession resolves the session for every request, creating an
// anonymous one when needed, and injects it into the request context.
func WithSession(sessions *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, isNew, err := sessions.Load(r.Context(), r)
		if err != nil {
			slog.Error("load session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if isNew {
			if err := sessions.WriteCookie(w, sess); err != nil {
				slog.Error("write session cookie", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUser resolves the session's user association, if any, and injects
// the user into the request context. A stale association (user record
// gone) leaves the request anonymous rather than failing it.
func WithUser(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := SessionFromContext(r.Context()); sess != nil && sess.UserID != 0 {
			user, err := auth.GetUserByID(r.Context(), sess.UserID)
			if err == nil {
				ctx := context.WithValue(r.Context(), userContextKey, user)
				r = r.WithContext(ctx)
			} else if !errors.Is(err, domain.ErrNotFound) {
				slog.Error("resolve session user", "error", err, "user_id", sess.UserID)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLogin redirects anonymous requests to the login page, queueing
// an explanatory flash and capturing the requested page so login can
// return to it.
func RequireLogin(sessions *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) != nil {
			next.ServeHTTP(w, r)
			return
		}

		if sess := SessionFromContext(r.Context()); sess != nil {
			if r.Method == http.MethodGet {
				sess.ReturnTo = r.URL.Path
			}
			sess.AddFlash(domain.FlashError, "You must be signed in first")
			if err := sessions.Save(r.Context(), sess); err != nil {
				slog.Error("save session", "error", err)
			}
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}

// CSP allow-lists for externally loaded assets. Static configuration;
// anything not listed is blocked by the browser.
var (
	cspScriptHosts = []string{
		"https://stackpath.bootstrapcdn.com",
		"https://kit.fontawesome.com",
		"https://cdnjs.cloudflare.com",
		"https://cdn.jsdelivr.net",
	}
	cspStyleHosts = []string{
		"https://stackpath.bootstrapcdn.com",
		"https://fonts.googleapis.com",
		"https://use.fontawesome.com",
		"https://cdn.jsdelivr.net",
	}
	cspImageHosts = []string{
		"https://res.cloudinary.com",
		"https://images.unsplash.com",
	}
)

// SecurityHeaders sets the content security policy and related
// hardening headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	csp := strings.Join([]string{
		"default-src 'self'",
		"script-src 'self' " + strings.Join(cspScriptHosts, " "),
		"style-src 'self' 'unsafe-inline' " + strings.Join(cspStyleHosts, " "),
		"img-src 'self' blob: data: " + strings.Join(cspImageHosts, " "),
		"connect-src 'self'",
		"object-src 'none'",
	}, "; ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// Recover converts panics into a sanitized 500 page so no stack trace
// or internal error ever reaches the client.
func Recover(render *Renderer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "panic", rec, "path", r.URL.Path)
				render.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
