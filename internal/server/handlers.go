package server

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notevault/internal/apperr"
	"notevault/internal/middleware"
	"notevault/internal/models"
	"notevault/internal/notes"
)

const (
	maxPdfSize    = 5 << 20 // 5MB, enforced before storage
	statsCacheKey = "stats:global"
	statsCacheTTL = 30 * time.Second
	defaultBio    = "New member! 🎉"
)

type signupRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Username       string `json:"username"`
	AvatarGradient string `json:"avatarGradient"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Bio            string `json:"bio"`
	AvatarGradient string `json:"avatarGradient"`
}

type authResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}

type profilePayload struct {
	userPayload
	Followers []string `json:"followers"`
	Following []string `json:"following"`
	Badges    []string `json:"badges"`
}

type globalStats struct {
	TotalNotes    int64 `json:"totalNotes"`
	TotalUsers    int64 `json:"totalUsers"`
	TotalSubjects int64 `json:"totalSubjects"`
	TotalLikes    int64 `json:"totalLikes"`
}

func asUserPayload(u models.User) userPayload {
	return userPayload{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		AvatarGradient: u.AvatarGradient,
	}
}

func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.New(apperr.Validation, "Invalid request body"))
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Username == "" {
		s.writeError(c, apperr.New(apperr.Validation, "name, email, password and username are required"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.writeError(c, err)
		return
	}

	user := models.User{
		ID:             models.NewID("user"),
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Bio:            defaultBio,
		AvatarGradient: req.AvatarGradient,
	}
	if err := s.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.writeError(c, apperr.New(apperr.Conflict, "Email or username already exists"))
			return
		}
		s.writeError(c, err)
		return
	}

	token, err := s.auth.Issue(user)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Success: true, Token: token, User: asUserPayload(user)})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.New(apperr.Validation, "Invalid request body"))
		return
	}

	var user models.User
	err := s.db.WithContext(c.Request.Context()).First(&user, "email = ?", req.Email).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.writeError(c, apperr.New(apperr.Unauthorized, "Invalid email or password"))
		return
	}

	token, err := s.auth.Issue(user)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Success: true, Token: token, User: asUserPayload(user)})
}

func (s *Server) listNotes(c *gin.Context) {
	// limit is accepted but advisory only; callers apply it client-side.
	filter := notes.Filter{
		Subject:    c.Query("subject"),
		ClassLevel: c.Query("classLevel"),
		Topic:      c.Query("topic"),
		Search:     c.Query("search"),
		UserID:     c.Query("userId"),
		Sort:       c.Query("sort"),
	}
	records, err := s.notes.List(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if records == nil {
		records = []notes.Record{}
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) getNote(c *gin.Context) {
	record, err := s.notes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) createNote(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString(middleware.UserIDKey)

	note := models.Note{
		ID:         models.NewID("note"),
		UserID:     userID,
		Subject:    c.PostForm("subject"),
		ClassLevel: c.PostForm("classLevel"),
		Topic:      c.PostForm("topic"),
		Title:      c.PostForm("title"),
		Content:    c.PostForm("content"),
	}

	if header, err := c.FormFile("pdf"); err == nil {
		if header.Size > maxPdfSize {
			s.writeError(c, apperr.New(apperr.InvalidOperation, "PDF exceeds the 5MB limit"))
			return
		}
		if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
			s.writeError(c, apperr.New(apperr.InvalidOperation, "Only PDF attachments are allowed"))
			return
		}
		src, err := header.Open()
		if err != nil {
			s.writeError(c, err)
			return
		}
		defer src.Close()

		object := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
		if err := s.blobs.Put(ctx, object, src, header.Size, "application/pdf"); err != nil {
			s.writeError(c, err)
			return
		}
		note.PdfPath = "/uploads/" + object
		note.PdfName = header.Filename
	}

	if err := s.notes.Create(ctx, &note); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.badges.SyncAwards(ctx, userID); err != nil {
		s.log.Error("Failed to sync badge awards", "user", userID, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": note.ID})
}

func (s *Server) likeNote(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString(middleware.UserIDKey)
	noteID := c.Param("id")

	owner, err := s.notes.Owner(ctx, noteID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	_, count, err := s.social.ToggleLike(ctx, userID, noteID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.badges.SyncAwards(ctx, owner); err != nil {
		s.log.Error("Failed to sync badge awards", "user", owner, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "likes": count})
}

func (s *Server) getUser(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		s.writeError(c, apperr.New(apperr.NotFound, "User not found"))
		return
	}

	followers, err := s.social.Followers(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	following, err := s.social.Following(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	earned, err := s.badges.EarnedIDs(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profilePayload{
		userPayload: asUserPayload(user),
		Followers:   followers,
		Following:   following,
		Badges:      earned,
	})
}

func (s *Server) getUserBadges(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		s.writeError(c, apperr.New(apperr.NotFound, "User not found"))
		return
	}

	statuses, err := s.badges.Evaluate(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (s *Server) followUser(c *gin.Context) {
	ctx := c.Request.Context()
	followerID := c.GetString(middleware.UserIDKey)
	followingID := c.Param("id")

	if _, err := s.social.ToggleFollow(ctx, followerID, followingID); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.badges.SyncAwards(ctx, followingID); err != nil {
		s.log.Error("Failed to sync badge awards", "user", followingID, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) stats(c *gin.Context) {
	ctx := c.Request.Context()

	var out globalStats
	if s.cache.GetJSON(ctx, statsCacheKey, &out) {
		c.JSON(http.StatusOK, out)
		return
	}

	db := s.db.WithContext(ctx)
	for _, count := range []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&out.TotalNotes, db.Model(&models.Note{})},
		{&out.TotalUsers, db.Model(&models.User{})},
		{&out.TotalSubjects, db.Model(&models.Note{}).Distinct("subject")},
		{&out.TotalLikes, db.Model(&models.Like{})},
	} {
		if err := count.query.Count(count.dest).Error; err != nil {
			s.writeError(c, err)
			return
		}
	}

	s.cache.SetJSON(ctx, statsCacheKey, out, statsCacheTTL)
	c.JSON(http.StatusOK, out)
}

func (s *Server) serveUpload(c *gin.Context) {
	rc, info, err := s.blobs.Get(c.Request.Context(), c.Param("object"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, nil)
}
