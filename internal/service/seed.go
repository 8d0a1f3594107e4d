package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/camptrail/camptrail/internal/domain"
)

// SeedCount is the number of synthetic campgrounds a seed run inserts.
const SeedCount = 200

const (
	seedUsername = "ranger"
	seedEmail    = "ranger@camptrail.example"
)

// Seeder populates the store with synthetic sample campgrounds for
// development.
type Seeder struct {
	campgrounds domain.CampgroundRepository
	users       domain.UserRepository
}

// NewSeeder creates a new Seeder.
func NewSeeder(campgrounds domain.CampgroundRepository, users domain.UserRepository) *Seeder {
	return &Seeder{campgrounds: campgrounds, users: users}
}

// Run deletes all existing campgrounds, then inserts SeedCount
// synthetic listings owned by a dedicated seed user. Inserts run
// sequentially; each listing combines a random descriptor and place
// name, a random city with its coordinates, a price in [10,29], and
// two fixed placeholder images.
func (s *Seeder) Run(ctx context.Context) error {
	author, err := s.ensureSeedUser(ctx)
	if err != nil {
		return err
	}

	if err := s.campgrounds.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear campgrounds: %w", err)
	}

	for i := 0; i < SeedCount; i++ {
		city := cities[rand.IntN(len(cities))]
		camp := &domain.Campground{
			Title:       sample(descriptors) + " " + sample(places),
			Price:       10 + rand.IntN(20),
			Description: seedDescription,
			Location:    city.Name + ", " + city.State,
			Longitude:   city.Longitude,
			Latitude:    city.Latitude,
			AuthorID:    author.ID,
			Images:      append([]domain.Image(nil), seedImages[:]...),
		}
		if err := s.campgrounds.Create(ctx, camp); err != nil {
			return fmt.Errorf("insert seed campground %d: %w", i, err)
		}
	}

	return nil
}

// ensureSeedUser returns the user that owns seeded listings, creating
// it on first run. The account gets a throwaway random password; it is
// never meant to log in.
func (s *Seeder) ensureSeedUser(ctx context.Context) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, seedUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up seed user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	user = &domain.User{
		Email:        seedEmail,
		Username:     seedUsername,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// sample returns a uniformly random element of list.
func sample(list []string) string {
	return list[rand.IntN(len(list))]
}
