package models

import (
	"github.com/google/uuid"
)

// IDs are opaque strings with a type prefix, e.g. "user_<uuid>".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

type User struct {
	ID             string `gorm:"primaryKey;size:64"`
	Name           string `gorm:"not null"`
	Username       string `gorm:"uniqueIndex;size:64;not null"`
	Email          string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash   string `gorm:"not null"`
	Bio            string
	AvatarGradient string
	CreatedAt      int64 `gorm:"autoCreateTime:milli"`
}

type Note struct {
	ID         string `gorm:"primaryKey;size:64"`
	UserID     string `gorm:"index;size:64;not null"`
	Subject    string `gorm:"index;size:32;not null"`
	ClassLevel string `gorm:"size:16;not null"`
	Topic      string `gorm:"size:64;not null"`
	Title      string `gorm:"type:varchar(200);not null"`
	Content    string `gorm:"type:text"`
	PdfPath    string
	PdfName    string
	Views      int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli"`
}

// Like is a toggle relation: a row means "user likes note". The composite
// primary key is the sole correctness guard against duplicate inserts.
type Like struct {
	UserID string `gorm:"primaryKey;size:64"`
	NoteID string `gorm:"primaryKey;size:64"`
}

type Follow struct {
	FollowerID  string `gorm:"primaryKey;size:64"`
	FollowingID string `gorm:"primaryKey;size:64"`
}

// BadgeAward records when a user first earned a badge. Awards are written on
// earn and never revoked; the read path still evaluates badges live.
type BadgeAward struct {
	UserID   string `gorm:"primaryKey;size:64"`
	BadgeID  string `gorm:"primaryKey;size:64"`
	EarnedAt int64
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{&User{}, &Note{}, &Like{}, &Follow{}, &BadgeAward{}}
}
