// @title Freelancer Check-in API
// @version 1.0
// @description Event staffing bulletin: organizers publish events with open roles, freelancers register, organizers review registrants.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelancercheckin/config"
	_ "freelancercheckin/docs"
	"freelancercheckin/internal/adapters/email"
	"freelancercheckin/internal/adapters/gemini"
	httpdelivery "freelancercheckin/internal/delivery/http"
	"freelancercheckin/internal/delivery/http/controllers"
	"freelancercheckin/internal/domain"
	"freelancercheckin/internal/repository"
	"freelancercheckin/internal/repository/memory"
	"freelancercheckin/internal/repository/postgres"
	"freelancercheckin/internal/repository/sqlite"
	"freelancercheckin/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slots, closeStore, err := openSlots(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("slot store ready", "driver", cfg.StoreDriver)

	generator := gemini.NewGenerator(gemini.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeneratorTimeout,
	}, &http.Client{}, logger)
	if cfg.APIKey == "" {
		logger.Warn("API_KEY not set, events will use the fallback description")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailerFromAddress,
		FromName:    cfg.MailerFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	notifier := services.NewRegistrationNotifier(mailer, email.NewTemplateRenderer(), cfg.OrganizerEmail, logger)

	store := repository.NewSnapshotStore(slots, logger)
	board := services.NewBoardService(ctx, store, generator, notifier, logger)

	router := httpdelivery.NewRouter(
		controllers.NewEventController(logger, board),
		controllers.NewRegistrationController(logger, board),
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.NewHandler(router, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		// event creation waits for the generator
		WriteTimeout: cfg.GeneratorTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openSlots(ctx context.Context, cfg *config.Config) (domain.SlotRepository, func(), error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return memory.NewSlotRepository(), func() {}, nil
	case config.StorePostgres:
		if db, err = postgres.Open(ctx, cfg.DBUrl); err != nil {
			return nil, nil, err
		}
		return postgres.NewSlotRepository(db), func() { db.Close() }, nil
	default:
		if db, err = sqlite.Open(ctx, cfg.SQLitePath); err != nil {
			return nil, nil, err
		}
		return sqlite.NewSlotRepository(db), func() { db.Close() }, nil
	}
}
