package domain

import (
	"context"
	"time"
)

// Image is a hosted picture attached to a campground listing.
type Image struct {
	URL      string
	Filename string
}

// Campground is a location-tagged listing created by a registered user.
type Campground struct {
	ID          int64
	Title       string
	Price       int
	Description string
	Location    string
	Longitude   float64
	Latitude    float64
	AuthorID    int64
	Images      []Image
	CreatedAt   time.Time
}

// CampgroundRepository defines persistence operations for campgrounds.
type CampgroundRepository interface {
	Create(ctx context.Context, camp *Campground) error
	GetByID(ctx context.Context, id int64) (*Campground, error)
	List(ctx context.Context) ([]Campground, error)
	Update(ctx context.Context, camp *Campground) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}
