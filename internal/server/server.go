// Package server wires the HTTP surface: routing, request/response schemas
// and the mapping from application errors to statuses.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"notevault/internal/apperr"
	"notevault/internal/auth"
	"notevault/internal/badge"
	"notevault/internal/cache"
	"notevault/internal/middleware"
	"notevault/internal/notes"
	"notevault/internal/social"
	"notevault/internal/storage"
)

type Server struct {
	db     *gorm.DB
	notes  *notes.Store
	social *social.Store
	badges *badge.Evaluator
	auth   *auth.Manager
	blobs  storage.BlobStore
	cache  *cache.Cache
	log    *slog.Logger
}

func New(db *gorm.DB, mgr *auth.Manager, blobs storage.BlobStore, statsCache *cache.Cache, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		db:     db,
		notes:  notes.NewStore(db),
		social: social.NewStore(db),
		badges: badge.NewEvaluator(db),
		auth:   mgr,
		blobs:  blobs,
		cache:  statsCache,
		log:    log,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	api.POST("/auth/signup", s.signup)
	api.POST("/auth/login", s.login)
	api.GET("/notes", s.listNotes)
	api.GET("/notes/:id", s.getNote)
	api.GET("/users/:id", s.getUser)
	api.GET("/users/:id/badges", s.getUserBadges)
	api.GET("/stats", s.stats)

	authed := api.Group("")
	authed.Use(middleware.Auth(s.auth))
	{
		authed.POST("/notes", s.createNote)
		authed.POST("/notes/:id/like", s.likeNote)
		authed.POST("/users/:id/follow", s.followUser)
	}

	r.GET("/uploads/:object", s.serveUpload)

	return r
}

// writeError renders any error as {"error": message} with the status of its
// kind; untyped errors become opaque 500s and are logged.
func (s *Server) writeError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= 500 {
		s.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
