package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database and exposes its repositories.
type DB struct {
	sqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sqlDB)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// Users returns the user repository.
func (db *DB) Users() domain.UserRepository {
	return &UserRepository{db: db.sqlDB}
}

// Campgrounds returns the campground repository.
func (db *DB) Campgrounds() domain.CampgroundRepository {
	return &CampgroundRepository{db: db.sqlDB}
}

// Reviews returns the review repository.
func (db *DB) Reviews() domain.ReviewRepository {
	return &ReviewRepository{db: db.sqlDB}
}

// Sessions returns the SQLite-backed session store.
func (db *DB) Sessions() domain.SessionStore {
	return &SessionStore{db: db.sqlDB}
}
