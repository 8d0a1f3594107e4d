package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/repository/redis"
)

var _ domain.SessionStore = (*redis.SessionStore)(nil)

func newTestStore(t *testing.T) (*redis.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := redis.Open(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestSessionStore_SetAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{
		ID:       uuid.NewString(),
		UserID:   42,
		ReturnTo: "/campgrounds/new",
	}
	sess.AddFlash(domain.FlashSuccess, "Welcome back")
	sess.AddFlash(domain.FlashError, "something failed")

	if err := store.Set(ctx, sess, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 42 {
		t.Errorf("UserID = %d, want 42", got.UserID)
	}
	if got.ReturnTo != "/campgrounds/new" {
		t.Errorf("ReturnTo = %q, want /campgrounds/new", got.ReturnTo)
	}
	if len(got.Flashes) != 2 {
		t.Fatalf("got %d flashes, want 2", len(got.Flashes))
	}
	if got.Flashes[0].Kind != domain.FlashSuccess || got.Flashes[0].Message != "Welcome back" {
		t.Errorf("first flash = %+v", got.Flashes[0])
	}
	if got.Flashes[1].Kind != domain.FlashError || got.Flashes[1].Message != "something failed" {
		t.Errorf("second flash = %+v", got.Flashes[1])
	}
	if got.CreatedAt.IsZero() || got.TouchedAt.IsZero() || got.ExpiresAt.IsZero() {
		t.Error("timestamps not persisted")
	}
}

func TestSessionStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-session")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionStore_GetExpired(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{ID: uuid.NewString(), UserID: 7}
	if err := store.Set(ctx, sess, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after expiry", err)
	}
}

func TestSessionStore_SetOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{ID: uuid.NewString(), UserID: 1}
	if err := store.Set(ctx, sess, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sess.UserID = 0
	sess.ReturnTo = ""
	if err := store.Set(ctx, sess, time.Hour); err != nil {
		t.Fatalf("second Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 0 {
		t.Errorf("UserID = %d, want 0 after overwrite", got.UserID)
	}
}

func TestSessionStore_Touch(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{ID: uuid.NewString(), UserID: 9, ReturnTo: "/campgrounds/3/edit"}
	sess.AddFlash(domain.FlashSuccess, "still here")
	if err := store.Set(ctx, sess, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := store.Touch(ctx, sess.ID, time.Hour); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	// The original one-minute TTL has passed, but the touch slid the
	// expiry forward.
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get after touch: %v", err)
	}
	if got.UserID != 9 {
		t.Errorf("UserID = %d, want 9", got.UserID)
	}
	if got.ReturnTo != "/campgrounds/3/edit" {
		t.Errorf("ReturnTo = %q, touch must not drop state", got.ReturnTo)
	}
	if len(got.Flashes) != 1 || got.Flashes[0].Message != "still here" {
		t.Errorf("Flashes = %+v, touch must not drop flashes", got.Flashes)
	}
}

func TestSessionStore_TouchMissing(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Touch(context.Background(), "no-such-session", time.Hour)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{ID: uuid.NewString()}
	if err := store.Set(ctx, sess, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}

	// Deleting an absent session is not an error.
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}
