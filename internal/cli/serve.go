package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vanifolio/internal/db"
	"vanifolio/internal/jobs"
	"vanifolio/internal/logger"
	"vanifolio/internal/metrics"
	"vanifolio/internal/pages"
	"vanifolio/internal/server"
)

// pruneInterval is how often old query logs are deleted.
const pruneInterval = time.Hour

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
}

func runServe(opts *rootOptions) error {
	cfg := opts.loadConfig()

	log, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	kb, err := opts.knowledgeBase()
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}
	log.Info("knowledge base loaded", zap.String("file", cfg.SiteFile), zap.Int("entries", kb.Len()))

	site, err := pages.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("loading pages: %w", err)
	}
	log.Info("pages loaded", zap.Strings("pages", site.Names()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.ContextWithLogger(ctx, log)

	// Query analytics are optional
	var database *db.DB
	if cfg.HasDatabase() {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations completed successfully")

		metrics.Init(database, log)
		go jobs.NewQueryLogPruner(database, pruneInterval, cfg.QueryLogRetention, log).Start(ctx)
	} else {
		log.Info("DATABASE_URL not set; query analytics disabled")
		metrics.Init(nil, log)
	}

	srv := server.New(cfg, log)
	srv.RegisterRoutes(site, kb, database)

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	metrics.Flush()
	log.Info("server exited")
	return nil
}
