package social

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"notevault/internal/apperr"
	"notevault/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	liked, count, err := store.ToggleLike(ctx, "user_1", "note_1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !liked || count != 1 {
		t.Errorf("Expected liked=true count=1, got liked=%v count=%d", liked, count)
	}

	// Toggling again returns to the original state.
	liked, count, err = store.ToggleLike(ctx, "user_1", "note_1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if liked || count != 0 {
		t.Errorf("Expected liked=false count=0, got liked=%v count=%d", liked, count)
	}

	var rows int64
	db.Model(&models.Like{}).Count(&rows)
	if rows != 0 {
		t.Errorf("Expected no like rows after double toggle, got %d", rows)
	}
}

func TestToggleLikeCountsDistinctUsers(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	for _, u := range []string{"user_1", "user_2", "user_3"} {
		if _, _, err := store.ToggleLike(ctx, u, "note_1"); err != nil {
			t.Fatalf("ToggleLike failed: %v", err)
		}
	}
	_, count, err := store.ToggleLike(ctx, "user_4", "note_1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected 4 likes after a 4th liker, got %d", count)
	}

	_, count, err = store.ToggleLike(ctx, "user_4", "note_1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 likes after unlike, got %d", count)
	}
}

func TestLikeOwnNoteAllowed(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	// Likes have no self-restriction; owners may like their own notes.
	liked, count, err := store.ToggleLike(context.Background(), "user_1", "note_owned_by_user_1")
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !liked || count != 1 {
		t.Errorf("Expected self-like to succeed, got liked=%v count=%d", liked, count)
	}
}

func TestToggleFollow(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	following, err := store.ToggleFollow(ctx, "user_1", "user_2")
	if err != nil {
		t.Fatalf("ToggleFollow failed: %v", err)
	}
	if !following {
		t.Error("Expected following=true after first toggle")
	}

	followers, err := store.Followers(ctx, "user_2")
	if err != nil {
		t.Fatalf("Followers failed: %v", err)
	}
	if len(followers) != 1 || followers[0] != "user_1" {
		t.Errorf("Expected user_1 as follower, got %v", followers)
	}
	followingIDs, err := store.Following(ctx, "user_1")
	if err != nil {
		t.Fatalf("Following failed: %v", err)
	}
	if len(followingIDs) != 1 || followingIDs[0] != "user_2" {
		t.Errorf("Expected user_2 in following, got %v", followingIDs)
	}

	following, err = store.ToggleFollow(ctx, "user_1", "user_2")
	if err != nil {
		t.Fatalf("ToggleFollow failed: %v", err)
	}
	if following {
		t.Error("Expected following=false after second toggle")
	}
	followers, _ = store.Followers(ctx, "user_2")
	if len(followers) != 0 {
		t.Errorf("Expected no followers after unfollow, got %v", followers)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.ToggleFollow(context.Background(), "user_1", "user_1")
	if apperr.KindOf(err) != apperr.InvalidOperation {
		t.Fatalf("Expected InvalidOperation for self-follow, got %v", err)
	}

	var rows int64
	db.Model(&models.Follow{}).Count(&rows)
	if rows != 0 {
		t.Errorf("Expected no follow rows after rejected self-follow, got %d", rows)
	}
}

func TestDuplicateLikeInsertIsBenign(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	// Simulate the race where another request inserted the row between the
	// delete probe and the insert: a pre-existing row plus a fresh Create.
	if err := db.Create(&models.Like{UserID: "user_1", NoteID: "note_1"}).Error; err != nil {
		t.Fatalf("Seed like failed: %v", err)
	}
	err := db.Create(&models.Like{UserID: "user_1", NoteID: "note_1"}).Error
	if err == nil {
		t.Fatal("Expected duplicate insert to fail at the storage layer")
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		// TranslateError must map the driver failure to the sentinel the
		// toggle treats as benign.
		t.Fatalf("Expected gorm.ErrDuplicatedKey, got %v", err)
	}

	_, count, err := store.ToggleLike(context.Background(), "user_1", "note_1")
	if err != nil {
		t.Fatalf("ToggleLike after duplicate failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected toggle to remove the existing like, got count=%d", count)
	}
}
