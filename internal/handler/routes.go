package handler

import (
	"net/http"

	"github.com/camptrail/camptrail/internal/session"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Unmatched
// paths fall through to the 404 page.
func RegisterRoutes(mux *http.ServeMux, auth *AuthHandler, campgrounds *CampgroundHandler, reviews *ReviewHandler, sessions *session.Manager, render *Renderer) {
	requireLogin := func(h http.HandlerFunc) http.Handler {
		return RequireLogin(sessions, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
	})

	mux.HandleFunc("GET /register", auth.HandleRegisterForm)
	mux.HandleFunc("POST /register", auth.HandleRegister)
	mux.HandleFunc("GET /login", auth.HandleLoginForm)
	mux.HandleFunc("POST /login", auth.HandleLogin)
	mux.HandleFunc("GET /logout", auth.HandleLogout)

	mux.HandleFunc("GET /campgrounds", campgrounds.HandleIndex)
	mux.Handle("GET /campgrounds/new", requireLogin(campgrounds.HandleNewForm))
	mux.Handle("POST /campgrounds", requireLogin(campgrounds.HandleCreate))
	mux.HandleFunc("GET /campgrounds/{id}", campgrounds.HandleShow)
	mux.Handle("GET /campgrounds/{id}/edit", requireLogin(campgrounds.HandleEditForm))
	mux.Handle("POST /campgrounds/{id}", requireLogin(campgrounds.HandleUpdate))
	mux.Handle("POST /campgrounds/{id}/delete", requireLogin(campgrounds.HandleDelete))

	mux.Handle("POST /campgrounds/{id}/reviews", requireLogin(reviews.HandleCreate))
	mux.Handle("POST /campgrounds/{id}/reviews/{reviewID}/delete", requireLogin(reviews.HandleDelete))

	mux.HandleFunc("/", render.NotFound)
}
