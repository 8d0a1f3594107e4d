package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/camptrail/camptrail/internal/domain"
)

// CampgroundRepository implements domain.CampgroundRepository using SQLite.
type CampgroundRepository struct {
	db *sql.DB
}

// NewCampgroundRepository creates a new SQLite-backed CampgroundRepository.
func NewCampgroundRepository(db *DB) *CampgroundRepository {
	return &CampgroundRepository{db: db.sqlDB}
}

func (r *CampgroundRepository) Create(ctx context.Context, camp *domain.Campground) error {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO campgrounds (title, price, description, location, longitude, latitude, author_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		camp.Title, camp.Price, camp.Description, camp.Location, camp.Longitude, camp.Latitude, camp.AuthorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert campground: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	for i, img := range camp.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO campground_images (campground_id, url, filename, position) VALUES (?, ?, ?, ?)`,
			id, img.URL, img.Filename, i,
		); err != nil {
			return fmt.Errorf("insert campground image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	camp.ID = id
	camp.CreatedAt = now
	return nil
}

func (r *CampgroundRepository) GetByID(ctx context.Context, id int64) (*domain.Campground, error) {
	camp := &domain.Campground{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, price, description, location, longitude, latitude, author_id, created_at
		 FROM campgrounds WHERE id = ?`, id,
	).Scan(&camp.ID, &camp.Title, &camp.Price, &camp.Description, &camp.Location,
		&camp.Longitude, &camp.Latitude, &camp.AuthorID, &camp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query campground by id: %w", err)
	}

	images, err := r.imagesFor(ctx, camp.ID)
	if err != nil {
		return nil, err
	}
	camp.Images = images
	return camp, nil
}

func (r *CampgroundRepository) List(ctx context.Context) ([]domain.Campground, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, price, description, location, longitude, latitude, author_id, created_at
		 FROM campgrounds ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query campgrounds: %w", err)
	}
	defer rows.Close()

	var camps []domain.Campground
	for rows.Next() {
		var camp domain.Campground
		if err := rows.Scan(&camp.ID, &camp.Title, &camp.Price, &camp.Description, &camp.Location,
			&camp.Longitude, &camp.Latitude, &camp.AuthorID, &camp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campground: %w", err)
		}
		camps = append(camps, camp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range camps {
		images, err := r.imagesFor(ctx, camps[i].ID)
		if err != nil {
			return nil, err
		}
		camps[i].Images = images
	}
	return camps, nil
}

func (r *CampgroundRepository) Update(ctx context.Context, camp *domain.Campground) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE campgrounds SET title = ?, price = ?, description = ?, location = ?, longitude = ?, latitude = ?
		 WHERE id = ?`,
		camp.Title, camp.Price, camp.Description, camp.Location, camp.Longitude, camp.Latitude, camp.ID,
	)
	if err != nil {
		return fmt.Errorf("update campground: %w", err)
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

func (r *CampgroundRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM campgrounds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete campground: %w", err)
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

// DeleteAll removes every campground. Images and reviews go with them
// via ON DELETE CASCADE.
func (r *CampgroundRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM campgrounds"); err != nil {
		return fmt.Errorf("delete all campgrounds: %w", err)
	}
	return nil
}

func (r *CampgroundRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM campgrounds").Scan(&count); err != nil {
		return 0, fmt.Errorf("count campgrounds: %w", err)
	}
	return count, nil
}

func (r *CampgroundRepository) imagesFor(ctx context.Context, campgroundID int64) ([]domain.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT url, filename FROM campground_images WHERE campground_id = ? ORDER BY position", campgroundID)
	if err != nil {
		return nil, fmt.Errorf("query campground images: %w", err)
	}
	defer rows.Close()

	var images []domain.Image
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.URL, &img.Filename); err != nil {
			return nil, fmt.Errorf("scan campground image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
