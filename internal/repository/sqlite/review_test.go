package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/repository/sqlite"
)

func TestReviewRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	camps := sqlite.NewCampgroundRepository(db)
	repo := sqlite.NewReviewRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "rev@example.com", "reviewer")
	camp := testCampground(author.ID)
	if err := camps.Create(ctx, camp); err != nil {
		t.Fatalf("Create campground: %v", err)
	}

	review := &domain.Review{CampgroundID: camp.ID, AuthorID: author.ID, Rating: 4, Body: "Lovely views."}
	if err := repo.Create(ctx, review); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.ID == 0 {
		t.Fatal("expected review ID to be set")
	}

	list, err := repo.ListByCampground(ctx, camp.ID)
	if err != nil {
		t.Fatalf("ListByCampground: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 review, got %d", len(list))
	}
	if list[0].AuthorUsername != "reviewer" {
		t.Fatalf("expected author username joined, got %q", list[0].AuthorUsername)
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	camps := sqlite.NewCampgroundRepository(db)
	repo := sqlite.NewReviewRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "rdel@example.com", "rdel")
	camp := testCampground(author.ID)
	if err := camps.Create(ctx, camp); err != nil {
		t.Fatalf("Create campground: %v", err)
	}
	review := &domain.Review{CampgroundID: camp.ID, AuthorID: author.ID, Rating: 2, Body: "Too muddy."}
	if err := repo.Create(ctx, review); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, review.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, review.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
