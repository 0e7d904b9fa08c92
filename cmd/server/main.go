package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"notevault/internal/auth"
	"notevault/internal/cache"
	"notevault/internal/config"
	"notevault/internal/models"
	"notevault/internal/seed"
	"notevault/internal/server"
	"notevault/internal/storage"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the toggle and signup paths rely on.
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Error("Failed to migrate schema", "error", err)
		os.Exit(1)
	}
	if err := seed.Run(db); err != nil {
		log.Error("Failed to seed database", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewMinioStore(context.Background(), storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.Error("Failed to connect to MinIO", "error", err)
		os.Exit(1)
	}

	var statsCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		statsCache = cache.New(rdb)
	}

	srv := server.New(db, auth.NewManager(cfg.JWTSecret), blobs, statsCache, log)

	log.Info("Server starting", "addr", cfg.Addr)
	if err := srv.Router().Run(cfg.Addr); err != nil {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
