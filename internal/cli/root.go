// Package cli implements newsroomctl, the operator command line for
// migrations, seeding, role grants and development tokens.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsroom-backend/internal/app"
	"github.com/heartmarshall/newsroom-backend/internal/config"
)

// env is shared by every subcommand. Config and logger are loaded once in
// PersistentPreRunE.
type env struct {
	configPath string

	cfg *config.Config
	log *slog.Logger
}

// pool opens a connection pool; the caller closes it.
func (e *env) pool(ctx context.Context) (*pgxpool.Pool, error) {
	p, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return p, nil
}

// NewRootCommand creates the newsroomctl root command.
func NewRootCommand() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:           "newsroomctl",
		Short:         "Operate the newsroom backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := e.configPath
			if path == "" {
				path = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(newMigrateCommand(e))
	cmd.AddCommand(newSeedCommand(e))
	cmd.AddCommand(newSetRolesCommand(e))
	cmd.AddCommand(newIssueTokenCommand(e))

	return cmd
}
