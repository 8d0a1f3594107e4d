package service

import (
	"context"
	"fmt"

	"github.com/camptrail/camptrail/internal/domain"
)

// ReviewService handles review operations with ownership checks.
type ReviewService struct {
	reviews     domain.ReviewRepository
	campgrounds domain.CampgroundRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews domain.ReviewRepository, campgrounds domain.CampgroundRepository) *ReviewService {
	return &ReviewService{reviews: reviews, campgrounds: campgrounds}
}

// ListByCampground returns all reviews for a campground, newest first.
func (s *ReviewService) ListByCampground(ctx context.Context, campgroundID int64) ([]domain.Review, error) {
	return s.reviews.ListByCampground(ctx, campgroundID)
}

// Create validates and persists a review written by authorID.
func (s *ReviewService) Create(ctx context.Context, authorID, campgroundID int64, rating int, body string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: review body is required", domain.ErrInvalidInput)
	}

	// The campground must exist; a dangling review would 404 forever.
	if _, err := s.campgrounds.GetByID(ctx, campgroundID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		CampgroundID: campgroundID,
		AuthorID:     authorID,
		Rating:       rating,
		Body:         body,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// Delete removes a review. Only the review's author may delete it.
func (s *ReviewService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return domain.ErrUnauthorized
	}
	return s.reviews.Delete(ctx, id)
}
