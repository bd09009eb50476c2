package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventdeck/eventdeck-go/internal/config"
	"github.com/eventdeck/eventdeck-go/internal/handler"
	"github.com/eventdeck/eventdeck-go/internal/middleware"
	"github.com/eventdeck/eventdeck-go/internal/repository"
	"github.com/eventdeck/eventdeck-go/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.Open(cfg.StorePath)
	if err != nil {
		slog.Error("failed to open local store", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := repository.NewLocalStore(db)

	// Both stores are constructed once here and passed by reference;
	// the session store restores first so event seeding can see the
	// rehydrated user.
	sessions := service.NewSessionStore(store, nil, cfg.JWTSecret, cfg.TokenExpiry, cfg.AuthLatency)
	events := service.NewEventStore(store, sessions, nil, cfg.EventLatency, cfg.SeedEvents)

	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 10*time.Second)
	sessions.Restore(restoreCtx)
	events.Restore(restoreCtx)
	cancelRestore()

	authHandler := handler.NewAuthHandler(sessions)
	eventHandler := handler.NewEventHandler(events)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Get("/api/v1/events", eventHandler.HandleList)
	r.Get("/api/v1/events/{event_id}", eventHandler.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)
		r.Post("/api/v1/auth/logout", authHandler.HandleLogout)

		r.Get("/api/v1/events/mine", eventHandler.HandleMine)
		r.Post("/api/v1/events", eventHandler.HandleCreate)
		r.Put("/api/v1/events/{event_id}", eventHandler.HandleUpdate)
		r.Delete("/api/v1/events/{event_id}", eventHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.StorePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
