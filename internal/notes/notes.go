// Package notes implements note publishing and the filter/sort listing query.
package notes

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"notevault/internal/apperr"
	"notevault/internal/catalog"
	"notevault/internal/models"
)

// Filter is the listing request. Empty fields do not constrain; all provided
// fields must match (conjunctive), except Search which is a case-insensitive
// substring match over title, content and topic.
type Filter struct {
	Subject    string
	ClassLevel string
	Topic      string
	Search     string
	UserID     string
	Sort       string // "likes", "views" or "" (recent)
}

// Record is a note augmented with author display fields and live like data.
type Record struct {
	ID             string   `json:"id"`
	UserID         string   `json:"userId"`
	Subject        string   `json:"subject"`
	ClassLevel     string   `json:"classLevel"`
	Topic          string   `json:"topic"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	PdfPath        string   `json:"pdfPath,omitempty"`
	PdfName        string   `json:"pdfName,omitempty"`
	Views          int64    `json:"views"`
	CreatedAt      int64    `json:"createdAt"`
	AuthorName     string   `json:"authorName"`
	AuthorGradient string   `json:"authorGradient"`
	AuthorUsername string   `json:"authorUsername"`
	Likes          int      `json:"likes"`
	LikedBy        []string `json:"likedBy"`
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

const authorColumns = "notes.*, users.name AS author_name, users.avatar_gradient AS author_gradient, users.username AS author_username"

// List returns all notes matching the filter, ordered per Filter.Sort.
// Malformed filter values are not rejected; they simply match nothing.
func (s *Store) List(ctx context.Context, f Filter) ([]Record, error) {
	q := s.db.WithContext(ctx).
		Table("notes").
		Select(authorColumns).
		Joins("JOIN users ON users.id = notes.user_id")

	if f.Subject != "" {
		q = q.Where("notes.subject = ?", f.Subject)
	}
	if f.ClassLevel != "" {
		q = q.Where("notes.class_level = ?", f.ClassLevel)
	}
	if f.Topic != "" {
		q = q.Where("notes.topic = ?", f.Topic)
	}
	if f.UserID != "" {
		q = q.Where("notes.user_id = ?", f.UserID)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(notes.title) LIKE ? OR LOWER(notes.content) LIKE ? OR LOWER(notes.topic) LIKE ?)",
			pattern, pattern, pattern)
	}

	switch f.Sort {
	case "likes":
		q = q.Order("(SELECT COUNT(*) FROM likes WHERE likes.note_id = notes.id) DESC")
	case "views":
		q = q.Order("notes.views DESC")
	default:
		q = q.Order("notes.created_at DESC")
	}

	var records []Record
	if err := q.Scan(&records).Error; err != nil {
		return nil, err
	}
	if err := s.attachLikes(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns a single note, incrementing its view counter first. Every read
// counts as a view; there is no per-viewer dedup. An unknown id is NotFound
// and leaves no side effect.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.New(apperr.NotFound, "Note not found")
	}

	var record Record
	err := s.db.WithContext(ctx).
		Table("notes").
		Select(authorColumns).
		Joins("JOIN users ON users.id = notes.user_id").
		Where("notes.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	records := []Record{record}
	if err := s.attachLikes(ctx, records); err != nil {
		return nil, err
	}
	return &records[0], nil
}

// Create validates the note against the fixed catalogs and stores it.
func (s *Store) Create(ctx context.Context, n *models.Note) error {
	if n.Subject == "" || n.ClassLevel == "" || n.Topic == "" || n.Title == "" {
		return apperr.New(apperr.Validation, "subject, classLevel, topic and title are required")
	}
	if !catalog.ValidSubject(n.Subject) {
		return apperr.New(apperr.Validation, "unknown subject")
	}
	if !catalog.ValidClass(n.ClassLevel) {
		return apperr.New(apperr.Validation, "unknown class level")
	}
	if !catalog.ValidTopic(n.Subject, n.Topic) {
		return apperr.New(apperr.Validation, "topic does not belong to subject")
	}
	if n.ID == "" {
		n.ID = models.NewID("note")
	}
	return s.db.WithContext(ctx).Create(n).Error
}

// Owner returns the owning user id of a note, or NotFound.
func (s *Store) Owner(ctx context.Context, noteID string) (string, error) {
	var note models.Note
	err := s.db.WithContext(ctx).Select("user_id").First(&note, "id = ?", noteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.New(apperr.NotFound, "Note not found")
	}
	return note.UserID, err
}

// attachLikes batch-loads like rows for the listed notes and fills each
// record's count and likedBy set.
func (s *Store) attachLikes(ctx context.Context, records []Record) error {
	for i := range records {
		records[i].LikedBy = []string{}
	}
	if len(records) == 0 {
		return nil
	}
	ids := make([]string, len(records))
	index := make(map[string]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
		index[r.ID] = i
	}

	var likes []models.Like
	if err := s.db.WithContext(ctx).Where("note_id IN ?", ids).Find(&likes).Error; err != nil {
		return err
	}
	for _, l := range likes {
		i := index[l.NoteID]
		records[i].LikedBy = append(records[i].LikedBy, l.UserID)
		records[i].Likes++
	}
	return nil
}
