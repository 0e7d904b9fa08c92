// Package badge evaluates the badge catalog against a user's live activity
// aggregates. Evaluation is a pure function of current counts; there is no
// cached or incremental state.
package badge

import (
	"context"
	"time"

	"gorm.io/gorm"

	"notevault/internal/catalog"
	"notevault/internal/models"
)

// Stats are the aggregates badge requirements are compared against.
type Stats struct {
	NotesCount     int64
	TotalLikes     int64
	UniqueSubjects int64
	FollowersCount int64
}

func (s Stats) metric(t catalog.RequirementType) int64 {
	switch t {
	case catalog.NotesCount:
		return s.NotesCount
	case catalog.TotalLikes:
		return s.TotalLikes
	case catalog.UniqueSubjects:
		return s.UniqueSubjects
	case catalog.FollowersCount:
		return s.FollowersCount
	}
	return 0
}

type Status struct {
	catalog.Badge
	Earned bool `json:"earned"`
}

// Evaluate returns the full catalog with earned flags for the given stats.
func Evaluate(stats Stats) []Status {
	out := make([]Status, 0, len(catalog.Badges))
	for _, b := range catalog.Badges {
		out = append(out, Status{
			Badge:  b,
			Earned: stats.metric(b.Requirement.Type) >= b.Requirement.Value,
		})
	}
	return out
}

type Evaluator struct {
	db *gorm.DB
}

func NewEvaluator(db *gorm.DB) *Evaluator {
	return &Evaluator{db: db}
}

func (e *Evaluator) StatsFor(ctx context.Context, userID string) (Stats, error) {
	var s Stats
	db := e.db.WithContext(ctx)

	if err := db.Model(&models.Note{}).Where("user_id = ?", userID).Count(&s.NotesCount).Error; err != nil {
		return s, err
	}
	err := db.Model(&models.Like{}).
		Joins("JOIN notes ON notes.id = likes.note_id").
		Where("notes.user_id = ?", userID).
		Count(&s.TotalLikes).Error
	if err != nil {
		return s, err
	}
	err = db.Model(&models.Note{}).
		Where("user_id = ?", userID).
		Distinct("subject").
		Count(&s.UniqueSubjects).Error
	if err != nil {
		return s, err
	}
	err = db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&s.FollowersCount).Error
	return s, err
}

func (e *Evaluator) Evaluate(ctx context.Context, userID string) ([]Status, error) {
	stats, err := e.StatsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Evaluate(stats), nil
}

// EarnedIDs returns the ids of currently earned badges, live-computed.
func (e *Evaluator) EarnedIDs(ctx context.Context, userID string) ([]string, error) {
	statuses, err := e.Evaluate(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, st := range statuses {
		if st.Earned {
			ids = append(ids, st.ID)
		}
	}
	return ids, nil
}

// SyncAwards persists awards for badges the user has earned but has no row
// for yet. Called after mutations that can move the user's aggregates.
// Awards are never revoked.
func (e *Evaluator) SyncAwards(ctx context.Context, userID string) error {
	statuses, err := e.Evaluate(ctx, userID)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	for _, st := range statuses {
		if !st.Earned {
			continue
		}
		award := models.BadgeAward{UserID: userID, BadgeID: st.ID, EarnedAt: now}
		err := e.db.WithContext(ctx).
			Where(models.BadgeAward{UserID: userID, BadgeID: st.ID}).
			FirstOrCreate(&award).Error
		if err != nil {
			return err
		}
	}
	return nil
}
