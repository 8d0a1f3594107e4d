package service

import (
	"context"
	"fmt"

	"github.com/camptrail/camptrail/internal/domain"
)

// CampgroundService handles listing operations with ownership checks.
type CampgroundService struct {
	campgrounds domain.CampgroundRepository
}

// NewCampgroundService creates a new CampgroundService.
func NewCampgroundService(campgrounds domain.CampgroundRepository) *CampgroundService {
	return &CampgroundService{campgrounds: campgrounds}
}

// List returns all campgrounds, newest first.
func (s *CampgroundService) List(ctx context.Context) ([]domain.Campground, error) {
	return s.campgrounds.List(ctx)
}

// Get returns a single campground by id.
func (s *CampgroundService) Get(ctx context.Context, id int64) (*domain.Campground, error) {
	return s.campgrounds.GetByID(ctx, id)
}

// Create validates and persists a new campground owned by authorID.
func (s *CampgroundService) Create(ctx context.Context, authorID int64, camp *domain.Campground) error {
	if camp.Title == "" || camp.Location == "" {
		return fmt.Errorf("%w: title and location are required", domain.ErrInvalidInput)
	}
	if camp.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}

	camp.AuthorID = authorID
	if err := s.campgrounds.Create(ctx, camp); err != nil {
		return fmt.Errorf("create campground: %w", err)
	}
	return nil
}

// Update applies changes to a campground. Only the owning author may
// update it.
func (s *CampgroundService) Update(ctx context.Context, userID int64, camp *domain.Campground) error {
	existing, err := s.campgrounds.GetByID(ctx, camp.ID)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return domain.ErrUnauthorized
	}
	if camp.Title == "" || camp.Location == "" {
		return fmt.Errorf("%w: title and location are required", domain.ErrInvalidInput)
	}
	if camp.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}

	camp.AuthorID = existing.AuthorID
	if err := s.campgrounds.Update(ctx, camp); err != nil {
		return fmt.Errorf("update campground: %w", err)
	}
	return nil
}

// Delete removes a campground. Only the owning author may delete it.
func (s *CampgroundService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.campgrounds.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return domain.ErrUnauthorized
	}
	return s.campgrounds.Delete(ctx, id)
}
