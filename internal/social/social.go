// Package social implements the like and follow toggle relations.
package social

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notevault/internal/apperr"
	"notevault/internal/models"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ToggleLike flips the (user, note) like row and returns the resulting state
// and live count. A duplicate-key failure on insert means a concurrent request
// already created the row; that is treated as "already liked", not an error.
func (s *Store) ToggleLike(ctx context.Context, userID, noteID string) (liked bool, count int64, err error) {
	db := s.db.WithContext(ctx)

	res := db.Where("user_id = ? AND note_id = ?", userID, noteID).Delete(&models.Like{})
	if res.Error != nil {
		return false, 0, res.Error
	}
	if res.RowsAffected > 0 {
		liked = false
	} else {
		err := db.Create(&models.Like{UserID: userID, NoteID: noteID}).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, 0, err
		}
		liked = true
	}

	err = db.Model(&models.Like{}).Where("note_id = ?", noteID).Count(&count).Error
	return liked, count, err
}

// ToggleFollow flips the follower → following row. Self-follow is rejected
// before touching storage.
func (s *Store) ToggleFollow(ctx context.Context, followerID, followingID string) (following bool, err error) {
	if followerID == followingID {
		return false, apperr.New(apperr.InvalidOperation, "Cannot follow yourself")
	}
	db := s.db.WithContext(ctx)

	res := db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err = db.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}
	return true, nil
}

// Followers returns ids of users following userID.
func (s *Store) Followers(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

// Following returns ids of users userID follows.
func (s *Store) Following(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
