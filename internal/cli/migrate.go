package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/newsroom-backend/migrations"
)

var migrateDirections = []string{"up", "down", "status"}

func newMigrateCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateDirections,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), e, args[0], cmd)
		},
	}
}

func runMigrate(ctx context.Context, e *env, direction string, cmd *cobra.Command) error {
	// goose requires *sql.DB.
	db, err := sql.Open("pgx", e.cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch direction {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		e.log.Info("migrations applied", slog.Int("count", len(results)))
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		if result != nil && result.Source != nil {
			e.log.Info("migration rolled back", slog.Int64("version", result.Source.Version))
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s  %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	}
	return nil
}
