package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/auth"
	"github.com/blueswitch/blueswitch/internal/config"
	"github.com/blueswitch/blueswitch/internal/handler"
	"github.com/blueswitch/blueswitch/internal/logger"
	"github.com/blueswitch/blueswitch/internal/middleware"
	"github.com/blueswitch/blueswitch/internal/repository"
	"github.com/blueswitch/blueswitch/internal/router"
	"github.com/blueswitch/blueswitch/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := logger.New(os.Stdout, logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	slog.SetDefault(lg)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	db, err := repository.NewPostgresDB(ctx, cfg.Database.DSN())
	if err != nil {
		lg.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := repository.Migrate(ctx, db); err != nil {
		lg.Error("Failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	authMiddleware := middleware.NewAuthMiddleware(nil)
	if cfg.Firebase.Enabled() {
		verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			lg.Error("Failed to initialize Firebase", slog.Any("error", err))
			os.Exit(1)
		}
		authMiddleware = middleware.NewAuthMiddleware(verifier)
	} else {
		lg.Warn("Firebase verification disabled, trusting " + middleware.HeaderUserEmail + " header")
	}

	calculator := service.NewFootprintCalculator(time.Now)
	deviceService := service.NewDeviceService(db, calculator, time.Now)
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))
	userService := service.NewUserService(db)

	r := router.SetupRoutes(lg, authMiddleware, router.Handlers{
		Device: handler.NewDeviceHandler(deviceService),
		Team:   handler.NewTeamHandler(teamService),
		User:   handler.NewUserHandler(userService),
		Stats:  handler.NewStatsHandler(deviceService),
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("Server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("Failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("Server forced to shutdown", slog.Any("error", err))
		return
	}

	lg.Info("Server exited")
}
