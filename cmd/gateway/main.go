package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fgpay/transaction-gateway/internal/application"
	"github.com/fgpay/transaction-gateway/internal/application/services"
	"github.com/fgpay/transaction-gateway/internal/config"
	"github.com/fgpay/transaction-gateway/internal/infrastructure/partner"
	"github.com/fgpay/transaction-gateway/internal/infrastructure/persistence/postgres"
	"github.com/fgpay/transaction-gateway/internal/interfaces/rest/handlers"
	"github.com/fgpay/transaction-gateway/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting transaction gateway",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"directory", cfg.Directory,
	)

	ctx := context.Background()

	var directory application.PartnerDirectory
	switch cfg.Directory {
	case config.DirectoryPostgres:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		repo := postgres.NewPartnerRepository(db.Pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare partner schema", "error", err)
			os.Exit(1)
		}
		if err := repo.Seed(ctx, cfg.Auth.Partners); err != nil {
			logger.Error("failed to seed partners", "error", err)
			os.Exit(1)
		}
		directory = repo
	default:
		directory = partner.NewStaticDirectory(cfg.Auth.Partners)
	}

	transactionService := services.NewTransactionService(directory, cfg.Auth.TimestampWindow, logger)

	h := handlers.NewTransactionHandler(transactionService, logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	router := http.Handler(mux)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
