package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camptrail/camptrail/internal/config"
	"github.com/camptrail/camptrail/internal/domain"
	"github.com/camptrail/camptrail/internal/handler"
	"github.com/camptrail/camptrail/internal/repository/redis"
	"github.com/camptrail/camptrail/internal/repository/sqlite"
	"github.com/camptrail/camptrail/internal/service"
	"github.com/camptrail/camptrail/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	// Sessions live in Redis when configured, otherwise in SQLite
	// alongside the rest of the data.
	var store domain.SessionStore = db.Sessions()
	if cfg.RedisURL != "" {
		redisStore, err := redis.Open(context.Background(), cfg.RedisURL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
		slog.Info("using redis session store")
	}

	authService := service.NewAuthService(db.Users(), cfg.BcryptCost)
	campgroundService := service.NewCampgroundService(db.Campgrounds())
	reviewService := service.NewReviewService(db.Reviews(), db.Campgrounds())

	sessions := session.NewManager(store, cfg.SessionSecret, cfg.CookieSecure)
	render := handler.NewRenderer(sessions)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		handler.NewAuthHandler(authService, sessions, render),
		handler.NewCampgroundHandler(campgroundService, reviewService, sessions, render),
		handler.NewReviewHandler(reviewService, sessions, render),
		sessions, render)

	root := handler.SecurityHeaders(
		handler.Recover(render,
			handler.WithSession(sessions,
				handler.WithUser(authService, mux))))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
