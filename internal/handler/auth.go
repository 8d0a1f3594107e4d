package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/service"
	"github.com/camptrail/camptrail/internal/session"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	render   *Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager, render *Renderer) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, render: render}
}

// HandleRegisterForm renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
		return
	}
	h.render.Render(w, r, http.StatusOK, "register.html", "Register", nil)
}

// HandleRegister creates a user from the submitted form, establishes an
// authenticated session for it, and redirects to the listing page. Any
// failure flashes the reason and redirects back to the form; no partial
// record is left behind.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, domain.FlashError, "Invalid form submission.", "/register")
		return
	}

	user, err := h.auth.Register(r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail),
			errors.Is(err, domain.ErrDuplicateUsername),
			errors.Is(err, domain.ErrInvalidInput):
			h.redirectWithFlash(w, r, domain.FlashError, userMessage(err), "/register")
		default:
			slog.Error("register user", "error", err)
			h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	h.establishSession(w, r, user.ID, "Welcome to CampTrail!", "/campgrounds")
}

// HandleLoginForm renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
		return
	}
	h.render.Render(w, r, http.StatusOK, "login.html", "Login", nil)
}

// HandleLogin verifies the submitted credentials and, on success,
// redirects to the page requested before login (if one was captured)
// or to the listing page.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, domain.FlashError, "Invalid form submission.", "/login")
		return
	}

	user, err := h.auth.Authenticate(r.Context(),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
	)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.redirectWithFlash(w, r, domain.FlashError, "Invalid username or password.", "/login")
			return
		}
		slog.Error("login user", "error", err)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	target := "/campgrounds"
	if sess := SessionFromContext(r.Context()); sess != nil && sess.ReturnTo != "" {
		target = sess.ReturnTo
		sess.ReturnTo = ""
	}
	h.establishSession(w, r, user.ID, "Welcome back", target)
}

// HandleLogout drops the session's user association and redirects to
// the listing page. Logging out while already anonymous is a no-op
// beyond the farewell flash.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
		return
	}

	sess.AddFlash(domain.FlashSuccess, "Good bye, come again.")
	var err error
	if sess.UserID != 0 {
		err = h.sessions.ClearUser(r.Context(), sess)
	} else {
		err = h.sessions.Save(r.Context(), sess)
	}
	if err != nil {
		slog.Error("logout", "error", err)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	if err := h.sessions.WriteCookie(w, sess); err != nil {
		slog.Error("write session cookie", "error", err)
	}
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

// establishSession associates the session with the user under a fresh
// session id, queues the flash, and redirects. The user record already
// exists at this point; a session failure surfaces as a 500 without
// rolling the user back.
func (h *AuthHandler) establishSession(w http.ResponseWriter, r *http.Request, userID int64, flash, target string) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		slog.Error("no session in context during login")
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	sess.UserID = userID
	sess.AddFlash(domain.FlashSuccess, flash)
	if err := h.sessions.Renew(r.Context(), sess); err != nil {
		slog.Error("establish session", "error", err)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	if err := h.sessions.WriteCookie(w, sess); err != nil {
		slog.Error("write session cookie", "error", err)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *AuthHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, kind, message, target string) {
	redirectWithFlash(w, r, h.sessions, kind, message, target)
}

// redirectWithFlash queues a flash on the session and redirects.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, sessions *session.Manager, kind, message, target string) {
	if sess := SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash(kind, message)
		if err := sessions.Save(r.Context(), sess); err != nil {
			slog.Error("save session", "error", err)
		}
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// userMessage converts a sentinel-tagged error into wording fit for a
// flash message, stripping the sentinel prefix from validation errors.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "A user with that email already exists."
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "A user with that username already exists."
	case errors.Is(err, domain.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	}
	return "An unexpected error occurred. Please try again."
}
