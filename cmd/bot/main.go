package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lecturebot/internal/catalog"
	"lecturebot/internal/config"
	"lecturebot/internal/handler"
	"lecturebot/internal/repository"
	"lecturebot/internal/repository/postgres"
	"lecturebot/internal/repository/statefile"
	"lecturebot/internal/server"
	"lecturebot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const autoSaveInterval = 30 * time.Second

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Lecture Archive Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Pick the state store backend
	stateRepo, cleanup, err := buildStateRepo(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize state store", zap.Error(err))
	}
	defer cleanup()

	stateService := service.NewStateService(stateRepo, logger)
	if err := stateService.Load(); err != nil {
		logger.Fatal("Failed to load user states", zap.Error(err))
	}

	// Build and validate the menu tree
	tree, err := catalog.Build(catalog.Default())
	if err != nil {
		logger.Fatal("Invalid menu catalogue", zap.Error(err))
	}

	logger.Info("Menu catalogue loaded", zap.Int("nodes", tree.Len()))

	// Initialize Telegram bot. Handler faults are logged and reported
	// to the operator chat; the poller keeps running, so the bot
	// restarts in place instead of exiting.
	var bot *tele.Bot
	bot, err = tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot error", zap.Error(err))
			if cfg.AdminChatID != 0 && bot != nil {
				msg := fmt.Sprintf("⚠️ خطا در اجرای ربات:\n%v", err)
				if _, sendErr := bot.Send(tele.ChatID(cfg.AdminChatID), msg); sendErr != nil {
					logger.Warn("Failed to notify admin", zap.Error(sendErr))
				}
			}
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(
		bot,
		handler.NewTelebotSender(bot),
		tree,
		stateService,
		service.NewCaptureService(),
		logger,
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start keep-alive server in background
	keepAlive := server.NewKeepAlive(cfg.Port, logger)
	go func() {
		if err := keepAlive.Start(); err != nil {
			logger.Error("Keep-alive server failed", zap.Error(err))
		}
	}()

	// Start periodic state flush in background
	go runAutoSaveLoop(ctx, stateService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	h.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := keepAlive.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Keep-alive shutdown failed", zap.Error(err))
	}

	// Final state flush so restarts resume where users left off
	if err := stateService.Flush(); err != nil {
		logger.Error("Failed to flush user states on shutdown", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// buildStateRepo selects Postgres when configured, JSON file otherwise
func buildStateRepo(cfg *config.Config, logger *zap.Logger) (repository.StateRepository, func(), error) {
	if !cfg.Database.Enabled() {
		logger.Info("Using file state store", zap.String("path", cfg.StateFile))
		return statefile.NewRepo(cfg.StateFile), func() {}, nil
	}

	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("Using Postgres state store", zap.String("host", cfg.Database.Host))
	return postgres.NewStateRepo(db), func() { db.Close() }, nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}

// runAutoSaveLoop flushes user states to the repository periodically.
// A failed flush is logged and retried on the next tick; it must never
// take the bot down.
func runAutoSaveLoop(ctx context.Context, states *service.StateService, logger *zap.Logger) {
	ticker := time.NewTicker(autoSaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Auto-save loop stopped")
			return
		case <-ticker.C:
			if err := states.Flush(); err != nil {
				logger.Error("Failed to flush user states", zap.Error(err))
			}
		}
	}
}
