package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizbank/backend/internal/api"
	"github.com/quizbank/backend/internal/infrastructure/config"
	"github.com/quizbank/backend/internal/service"
	"github.com/quizbank/backend/internal/store"

	_ "github.com/quizbank/backend/docs" // generated swagger docs
)

// @title           Question Bank & Quiz API
// @version         1.0
// @description     Self-study question bank — import questions, take standard or adaptive quizzes, flag items for review, and inspect per-category performance.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	st, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	attachments, err := store.NewAttachments(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open attachment store", "error", err)
		os.Exit(1)
	}

	svc, err := service.NewQuizService(st, attachments, nil, logger)
	if err != nil {
		logger.Error("failed to load question bank", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(svc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "backend", cfg.StorageBackend)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.StorageBackend == "sqlite" {
		return store.NewSQLite(cfg.SQLitePath)
	}
	return store.NewJSON(cfg.DataDir)
}
