// Package config reads server configuration from the environment.
package config

import "os"

type Config struct {
	Addr      string
	DSN       string
	JWTSecret string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// RedisAddr empty disables the stats cache.
	RedisAddr     string
	RedisPassword string
}

func Load() Config {
	return Config{
		Addr:      getenv("ADDR", ":5000"),
		DSN:       getenv("DB_DSN", "root:123456@tcp(127.0.0.1:3306)/notevault?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret: getenv("JWT_SECRET", "secret"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "127.0.0.1:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "admin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "password123"),
		MinioBucket:    getenv("MINIO_BUCKET", "notevault-uploads"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
