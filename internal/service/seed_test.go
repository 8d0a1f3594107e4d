package service_test

import (
	"context"
	"testing"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/service"
)

func TestSeeder_Run(t *testing.T) {
	db := newTestDB(t)
	seeder := service.NewSeeder(db.Campgrounds(), db.Users())
	ctx := context.Background()

	// Pre-existing content must be wiped by the run.
	author := registerTestUser(t, db, "pre@example.com", "pre")
	stale := &domain.Campground{Title: "Stale Camp", Location: "Nowhere", Price: 99, AuthorID: author.ID}
	if err := db.Campgrounds().Create(ctx, stale); err != nil {
		t.Fatalf("create stale campground: %v", err)
	}

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	count, err := db.Campgrounds().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != service.SeedCount {
		t.Fatalf("expected exactly %d campgrounds, got %d", service.SeedCount, count)
	}

	camps, err := db.Campgrounds().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, camp := range camps {
		if camp.Title == "Stale Camp" {
			t.Fatal("expected pre-existing campground to be deleted")
		}
		if camp.Price < 10 || camp.Price > 29 {
			t.Fatalf("expected price in [10,29], got %d (%s)", camp.Price, camp.Title)
		}
		if len(camp.Images) != 2 {
			t.Fatalf("expected exactly 2 images, got %d (%s)", len(camp.Images), camp.Title)
		}
		if camp.Location == "" || camp.Longitude == 0 || camp.Latitude == 0 {
			t.Fatalf("expected location and coordinates set, got %+v", camp)
		}
	}
}

func TestSeeder_Run_Twice(t *testing.T) {
	db := newTestDB(t)
	seeder := service.NewSeeder(db.Campgrounds(), db.Users())
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	// The leading delete-all keeps repeated runs at a fixed count.
	count, err := db.Campgrounds().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != service.SeedCount {
		t.Fatalf("expected %d campgrounds after two runs, got %d", service.SeedCount, count)
	}
}
