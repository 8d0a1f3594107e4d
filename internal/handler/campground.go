package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/service"
	"github.com/camptrail/camptrail/internal/session"
)

// CampgroundHandler handles listing pages and campground CRUD.
type CampgroundHandler struct {
	campgrounds *service.CampgroundService
	reviews     *service.ReviewService
	sessions    *session.Manager
	render      *Renderer
}

// NewCampgroundHandler creates a new CampgroundHandler.
func NewCampgroundHandler(campgrounds *service.CampgroundService, reviews *service.ReviewService, sessions *session.Manager, render *Renderer) *CampgroundHandler {
	return &CampgroundHandler{campgrounds: campgrounds, reviews: reviews, sessions: sessions, render: render}
}

// HandleIndex renders the campground listing.
// GET /campgrounds
func (h *CampgroundHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	camps, err := h.campgrounds.List(r.Context())
	if err != nil {
		slog.Error("list campgrounds", "error", err)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	h.render.Render(w, r, http.StatusOK, "campground_index.html", "Campgrounds", camps)
}

// HandleNewForm renders the new-campground form.
// GET /campgrounds/new
func (h *CampgroundHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "campground_new.html", "New Campground", nil)
}

// HandleCreate creates a campground owned by the signed-in user.
// POST /campgrounds
func (h *CampgroundHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	camp, err := campgroundFromForm(r)
	if err != nil {
		redirectWithFlash(w, r, h.sessions, domain.FlashError, userMessage(err), "/campgrounds/new")
		return
	}

	if err := h.campgrounds.Create(r.Context(), user.ID, camp); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			redirectWithFlash(w, r, h.sessions, domain.FlashError, userMessage(err), "/campgrounds/new")
			return
		}
		slog.Error("create campground", "error", err)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	redirectWithFlash(w, r, h.sessions, domain.FlashSuccess, "Successfully made a new campground!", showPath(camp.ID))
}

// HandleShow renders a campground with its reviews.
// GET /campgrounds/{id}
func (h *CampgroundHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}

	camp, err := h.campgrounds.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.render.NotFound(w, r)
			return
		}
		slog.Error("get campground", "error", err, "id", id)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	reviews, err := h.reviews.ListByCampground(r.Context(), id)
	if err != nil {
		slog.Error("list reviews", "error", err, "campground_id", id)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.render.Render(w, r, http.StatusOK, "campground_show.html", camp.Title, map[string]any{
		"Campground": camp,
		"Reviews":    reviews,
	})
}

// HandleEditForm renders the edit form for a campground the signed-in
// user owns.
// GET /campgrounds/{id}/edit
func (h *CampgroundHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}

	camp, err := h.campgrounds.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.render.NotFound(w, r)
			return
		}
		slog.Error("get campground", "error", err, "id", id)
		h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	if camp.AuthorID != UserFromContext(r.Context()).ID {
		redirectWithFlash(w, r, h.sessions, domain.FlashError, "You do not have permission to do that!", showPath(id))
		return
	}

	h.render.Render(w, r, http.StatusOK, "campground_edit.html", "Edit "+camp.Title, camp)
}

// HandleUpdate applies form changes to a campground the signed-in user
// owns.
// POST /campgrounds/{id}
func (h *CampgroundHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}

	camp, err := campgroundFromForm(r)
	if err != nil {
		redirectWithFlash(w, r, h.sessions, domain.FlashError, userMessage(err), showPath(id)+"/edit")
		return
	}
	camp.ID = id

	user := UserFromContext(r.Context())
	if err := h.campgrounds.Update(r.Context(), user.ID, camp); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.render.NotFound(w, r)
		case errors.Is(err, domain.ErrUnauthorized):
			redirectWithFlash(w, r, h.sessions, domain.FlashError, "You do not have permission to do that!", showPath(id))
		case errors.Is(err, domain.ErrInvalidInput):
			redirectWithFlash(w, r, h.sessions, domain.FlashError, userMessage(err), showPath(id)+"/edit")
		default:
			slog.Error("update campground", "error", err, "id", id)
			h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	redirectWithFlash(w, r, h.sessions, domain.FlashSuccess, "Successfully updated campground!", showPath(id))
}

// HandleDelete removes a campground the signed-in user owns.
// POST /campgrounds/{id}/delete
func (h *CampgroundHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.render.NotFound(w, r)
		return
	}

	user := UserFromContext(r.Context())
	if err := h.campgrounds.Delete(r.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.render.NotFound(w, r)
		case errors.Is(err, domain.ErrUnauthorized):
			redirectWithFlash(w, r, h.sessions, domain.FlashError, "You do not have permission to do that!", showPath(id))
		default:
			slog.Error("delete campground", "error", err, "id", id)
			h.render.RenderError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	redirectWithFlash(w, r, h.sessions, domain.FlashSuccess, "Successfully deleted campground", "/campgrounds")
}

// campgroundFromForm builds a campground from the submitted form
// fields. The price must parse as a whole number of dollars.
func campgroundFromForm(r *http.Request) (*domain.Campground, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: malformed form submission", domain.ErrInvalidInput)
	}

	price, err := strconv.Atoi(r.PostFormValue("price"))
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a number", domain.ErrInvalidInput)
	}

	camp := &domain.Campground{
		Title:       r.PostFormValue("title"),
		Location:    r.PostFormValue("location"),
		Description: r.PostFormValue("description"),
		Price:       price,
	}
	if url := r.PostFormValue("image_url"); url != "" {
		camp.Images = []domain.Image{{URL: url, Filename: r.PostFormValue("image_filename")}}
	}
	return camp, nil
}

func showPath(id int64) string {
	return "/campgrounds/" + strconv.FormatInt(id, 10)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
