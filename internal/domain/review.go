package domain

import (
	"context"
	"time"
)

// Review is a rated comment left on a campground by a registered user.
// AuthorUsername is denormalized by the repository for display and is
// not part of the stored record.
type Review struct {
	ID             int64
	CampgroundID   int64
	AuthorID       int64
	AuthorUsername string
	Rating         int
	Body           string
	CreatedAt      time.Time
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id int64) (*Review, error)
	ListByCampground(ctx context.Context, campgroundID int64) ([]Review, error)
	Delete(ctx context.Context, id int64) error
}
