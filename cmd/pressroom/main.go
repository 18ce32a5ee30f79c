// Package main is the entry point for the pressroom content service.
// It loads configuration, connects to the document store, syncs the
// declared collection schemas, sets up routing, and starts the HTTP
// server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pressroom/internal/auth"
	"pressroom/internal/cache"
	"pressroom/internal/config"
	"pressroom/internal/graph"
	"pressroom/internal/router"
	"pressroom/internal/schema"
	"pressroom/internal/service"
	"pressroom/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"database", cfg.DatabaseName(),
	)

	// Connect to the document store. Startup calls run under a bounded
	// timeout; request-scoped calls use each request's context.
	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := store.Connect(startupCtx, cfg.MongoURI)
	if err != nil {
		slog.Error("failed to connect to document store", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.DatabaseName())

	// Sync collection validators and indexes. A failure here means the
	// store disagrees with the declared shapes — abort rather than risk
	// silently corrupted writes.
	if err := schema.Sync(startupCtx, db); err != nil {
		slog.Error("failed to sync collection schemas", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	articleStore := store.NewArticleStore(db)

	// Seed development data (no-op if users already exist).
	if cfg.IsDev() {
		if err := store.Seed(startupCtx, userStore); err != nil {
			slog.Error("failed to seed store", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the article read cache (optional — the
	// service works without it).
	var articleCache *cache.ArticleCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		articleCache = cache.NewArticleCache(valkeyClient, cache.DefaultArticleTTL)
	} else {
		slog.Warn("valkey not configured — article cache disabled")
	}

	// Token manager holds the process-wide signing secret.
	tokens, err := auth.NewTokenManager(cfg.SecretKey, cfg.TokenAlgorithm, cfg.TokenTTLMinutes)
	if err != nil {
		slog.Error("failed to initialize token manager", "error", err)
		os.Exit(1)
	}

	// Services and the GraphQL schema.
	authService := service.NewAuthService(userStore, tokens)
	articleService := service.NewArticleService(articleStore, articleCache)

	resolver := graph.NewResolver(authService, articleService, cfg.ArticleAccess == "authenticated")
	gqlSchema, err := graph.NewSchema(resolver)
	if err != nil {
		slog.Error("failed to build graphql schema", "error", err)
		os.Exit(1)
	}

	r := router.New(gqlSchema, cfg.AllowedOrigins)

	// Create the HTTP server with sensible timeouts. Password hashing
	// is CPU-bound but brief; store calls dominate request latency.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
