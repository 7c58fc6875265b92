package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"nexus/admin/internal/app"
	"nexus/admin/internal/assets"
	"nexus/admin/internal/authpw"
	"nexus/admin/internal/config"
	"nexus/admin/internal/github"
	"nexus/admin/internal/publish"
	"nexus/admin/internal/search"
	"nexus/admin/internal/session"
	"nexus/admin/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Snapshot backend: Postgres when DATABASE_URL is set, Redis otherwise.
	var snapshotter store.Snapshotter
	var sessions session.Store
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		log.Printf("Using PostgreSQL for content snapshots")
		db, err := store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if err := store.ApplyMigrations(ctx, db); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		snapshotter = store.NewPostgresStore(db)
		sessions = session.NewMemoryStore()
	} else {
		log.Printf("Using Redis for content snapshots")
		redisStore, err := store.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		snapshotter = redisStore
		redisSessions, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		sessions = redisSessions
	}
	defer snapshotter.Close()
	defer sessions.Close()

	contentStore := store.New(snapshotter, cfg.ContentFile)
	passwords := authpw.NewService(snapshotter)
	githubClient := github.NewClient(cfg.GitHubAPIURL)

	var meiliClient *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meiliClient = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
		defer meiliClient.Close()
	}
	searchService := search.NewService(meiliClient)

	var publisher *publish.Service
	if strings.TrimSpace(cfg.SiteRepoDir) != "" {
		if err := os.MkdirAll(cfg.SiteRepoDir, 0o755); err != nil {
			log.Fatalf("failed to create site repo dir: %v", err)
		}
		publisher = publish.New(cfg.SiteRepoDir)
	}

	var assetStore *assets.Store
	if strings.TrimSpace(cfg.MinioEndpoint) != "" {
		var err error
		assetStore, err = assets.New(ctx, assets.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			log.Fatalf("minio connection failed: %v", err)
		}
	}

	service := app.New(cfg, contentStore, passwords, sessions, githubClient, searchService, publisher, assetStore)
	if err := service.Bootstrap(ctx); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Nexus admin listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
