package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// viewData is the payload every template receives.
type viewData struct {
	Title   string
	User    *domain.User
	Flashes []domain.Flash
	Data    any
}

// Renderer executes HTML templates, draining the session's flash queue
// into each rendered page.
type Renderer struct {
	sessions *session.Manager
}

// NewRenderer creates a new Renderer.
func NewRenderer(sessions *session.Manager) *Renderer {
	return &Renderer{sessions: sessions}
}

// Render writes the named page. Flashes are read-once: draining them
// here persists the emptied queue back to the store.
func (re *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	vd := viewData{
		Title: title,
		User:  UserFromContext(r.Context()),
		Data:  data,
	}

	if sess := SessionFromContext(r.Context()); sess != nil {
		vd.Flashes = sess.PopFlashes()
		if len(vd.Flashes) > 0 {
			if err := re.sessions.Save(r.Context(), sess); err != nil {
				slog.Error("persist drained flashes", "error", err)
			}
		}
	}

	re.execute(w, status, page, vd)
}

// RenderError writes a sanitized error page. It never includes internal
// error details and does not touch the session.
func (re *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	re.execute(w, status, "error.html", viewData{
		Title: http.StatusText(status),
		Data:  map[string]any{"Status": status, "Message": message},
	})
}

// NotFound renders the 404 page for unmatched routes.
func (re *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	re.RenderError(w, http.StatusNotFound, "Page not found.")
}

// execute renders into a buffer first so a template failure can still
// become a clean 500 instead of a half-written page.
func (re *Renderer) execute(w http.ResponseWriter, status int, page string, vd viewData) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, page, vd); err != nil {
		slog.Error("render template", "template", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("write response", "error", err)
	}
}
