package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsroom-backend/internal/config"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("review_on_draft_edit", cfg.Newsroom.ReviewOnDraftEdit),
		slog.Bool("comment_pre_moderation", cfg.Newsroom.CommentPreModeration),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	handler, stop := NewHandler(cfg, pool, logger)
	defer stop()

	srv := newHTTPServer(cfg.Server, handler)
	logger.Info("http server listening", slog.String("addr", srv.Addr))

	if err := serve(ctx, srv, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
