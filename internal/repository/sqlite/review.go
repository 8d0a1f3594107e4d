package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/camptrail/camptrail/internal/domain"
)

// ReviewRepository implements domain.ReviewRepository using SQLite.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new SQLite-backed ReviewRepository.
func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{db: db.sqlDB}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (campground_id, author_id, rating, body, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		review.CampgroundID, review.AuthorID, review.Rating, review.Body, now,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	review.ID = id
	review.CreatedAt = now
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	review := &domain.Review{}
	err := r.db.QueryRowContext(ctx,
		`SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at
		 FROM reviews r JOIN users u ON u.id = r.author_id
		 WHERE r.id = ?`, id,
	).Scan(&review.ID, &review.CampgroundID, &review.AuthorID, &review.AuthorUsername,
		&review.Rating, &review.Body, &review.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query review by id: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) ListByCampground(ctx context.Context, campgroundID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at
		 FROM reviews r JOIN users u ON u.id = r.author_id
		 WHERE r.campground_id = ? ORDER BY r.created_at DESC, r.id DESC`, campgroundID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.CampgroundID, &review.AuthorID, &review.AuthorUsername,
			&review.Rating, &review.Body, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
