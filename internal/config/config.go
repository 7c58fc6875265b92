package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr            string
	RedisURL        string
	DatabaseURL     string
	ContentFile     string
	SiteRepoDir     string
	GitHubAPIURL    string
	TokenSecret     string
	DefaultPassword string
	SessionTTL      time.Duration
	CORSOrigin      string
	MeiliURL        string
	MeiliMasterKey  string
	// MinIO Configuration - asset uploads disabled if endpoint empty
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string
}

func Load() Config {
	return Config{
		Addr:            getenv("ADMIN_ADDR", ":8788"),
		RedisURL:        getenv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		ContentFile:     getenv("NEXUS_CONTENT_FILE", "./cms-data.json"),
		SiteRepoDir:     getenv("NEXUS_SITE_REPO_DIR", "./data/site"),
		GitHubAPIURL:    getenv("NEXUS_GITHUB_API_URL", "https://api.github.com"),
		TokenSecret:     getenv("NEXUS_TOKEN_SECRET", "nexus-dev-secret"),
		DefaultPassword: getenv("NEXUS_DEFAULT_PASSWORD", "admin2026"),
		SessionTTL:      time.Duration(getenvInt("NEXUS_SESSION_TTL_SECONDS", 43200)) * time.Second,
		CORSOrigin:      getenv("NEXUS_CORS_ORIGIN", "*"),
		MeiliURL:        getenv("MEILI_URL", ""),
		MeiliMasterKey:  getenv("MEILI_MASTER_KEY", ""),
		MinioEndpoint:   getenv("MINIO_ENDPOINT", ""),
		MinioAccessKey:  getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:  getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:     getenv("MINIO_BUCKET", "nexus-assets"),
		MinioUseSSL:     getenv("MINIO_USE_SSL", "") == "true",
		MinioPublicURL:  getenv("MINIO_PUBLIC_URL", ""),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
