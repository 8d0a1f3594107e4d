package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/service"
	"github.com/camptrail/camptrail/internal/session"
)

// ReviewHandler handles posting and removing reviews.
type ReviewHandler struct {
	reviews  *service.ReviewService
	sessions *session.Manager
	render   *Renderer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService, sessions *session.Manager, render *Renderer) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, sessions: sessions, render: render}
}

// HandleCreate posts a review on a campground.
// POST /campgrounds/{id}/reviews
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	campID, err := pathID(r, "id")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, h.sessions, domain.FlashError, "Invalid form submission.", showPath(campID))
		return
	}
	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		redirectWithFlash(w, r, h.sessions, domain.FlashError, "Rating must be a number.", showPath(campID))
		return
	}

	user := UserFromContext(r.Context())
	if _, err := h.reviews.Create(r.Context(), user.ID, campID, rating, r.PostFormValue("body")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.render.NotFound(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			redirectWithFlash(w, r, h.sessions, domain.FlashError, userMessage(err), showPath(campID))
		default:
			slog.Error("create review", "error", err, "campground_id", campID)
			h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	redirectWithFlash(w, r, h.sessions, domain.FlashSuccess, "Created new review!", showPath(campID))
}

// HandleDelete removes a review the signed-in user wrote.
// POST /campgrounds/{id}/reviews/{reviewID}/delete
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	campID, err := pathID(r, "id")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}
	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}

	user := UserFromContext(r.Context())
	if err := h.reviews.Delete(r.Context(), user.ID, reviewID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.render.NotFound(w, r)
		case errors.Is(err, domain.ErrUnauthorized):
			redirectWithFlash(w, r, h.sessions, domain.FlashError, "You do not have permission to do that!", showPath(campID))
		default:
			slog.Error("delete review", "error", err, "review_id", reviewID)
			h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	redirectWithFlash(w, r, h.sessions, domain.FlashSuccess, "Successfully deleted review", showPath(campID))
}
