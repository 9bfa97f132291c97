package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdesk/internal/adapters/httpapi"
	"eventdesk/internal/application"
	"eventdesk/internal/auth"
	"eventdesk/internal/config"
	"eventdesk/internal/infrastructure/database"
	"eventdesk/internal/infrastructure/i18n"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := database.NewPool(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()
	logger.Info().Msg("database connected")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	eventRepo := database.NewEventRepository(pool)
	attendeeRepo := database.NewAttendeeRepository(pool)
	userRepo := database.NewUserRepository(pool)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, "eventdesk")

	guard := application.NewCapacityGuard(eventRepo, attendeeRepo)
	registrationSvc := application.NewRegistrationService(attendeeRepo, guard)
	checkInSvc := application.NewCheckInService(attendeeRepo)
	eventSvc := application.NewEventService(eventRepo)
	authSvc := application.NewAuthService(userRepo, tokens)
	rollover := application.NewRolloverService(eventRepo, cfg.RolloverInterval, logger)

	go rollover.Run(ctx)

	handler := httpapi.NewHandler(eventSvc, registrationSvc, checkInSvc, authSvc, tokens, translator, logger)
	router := httpapi.NewRouter(handler, pool, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()
	logger.Info().Str("port", cfg.Port).Msg("api listening")

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
