package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/camptrail/camptrail/internal/handler"
)

func TestSecurityHeaders(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)

	resp, _ := app.get(t, c, "/campgrounds")

	csp := resp.Header.Get("Content-Security-Policy")
	if csp == "" {
		t.Fatal("no Content-Security-Policy header set")
	}
	for _, want := range []string{
		"default-src 'self'",
		"object-src 'none'",
		"https://res.cloudinary.com",
		"https://images.unsplash.com",
	} {
		if !strings.Contains(csp, want) {
			t.Errorf("CSP missing %q", want)
		}
	}

	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := resp.Header.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if got := resp.Header.Get("Referrer-Policy"); got != "no-referrer" {
		t.Errorf("Referrer-Policy = %q, want no-referrer", got)
	}
}

func TestRequireLoginOnlyCapturesGETTargets(t *testing.T) {
	app := newTestApp(t)
	setup := app.client(t)
	app.register(t, setup, "amy@example.com", "amy", "hunter2hunter2")

	c := app.client(t)

	// A denied POST must not become the post-login redirect target.
	resp, _ := app.postForm(t, c, "/campgrounds/1/delete", nil)
	if got := resp.Request.URL.Path; got != "/login" {
		t.Fatalf("denied POST landed on %s, want /login", got)
	}

	resp, _ = app.postForm(t, c, "/login", url.Values{
		"username": {"amy"},
		"password": {"hunter2hunter2"},
	})
	if got := resp.Request.URL.Path; got != "/campgrounds" {
		t.Errorf("login landed on %s, want /campgrounds", got)
	}
}

func TestRecoverRendersSanitized500(t *testing.T) {
	render := handler.NewRenderer(nil)
	h := handler.Recover(render, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("secret internal detail")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret internal detail") {
		t.Error("panic detail leaked into the response body")
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong.") {
		t.Error("sanitized error message not rendered")
	}
}
