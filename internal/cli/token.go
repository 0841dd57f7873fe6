package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	userrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/newsroom-backend/internal/auth"
	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

type userGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(s domain.Session) (string, error)
}

func newIssueTokenCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "issue-token <user-id>",
		Short: "Print an access token for a stored user (development only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := e.pool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			token, err := issueToken(cmd.Context(), userrepo.New(pool), jwt, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func issueToken(ctx context.Context, users userGetter, issuer tokenIssuer, userID string) (string, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}

	token, err := issuer.GenerateAccessToken(domain.Session{
		UserID:      u.ID,
		Roles:       u.Roles.Strings(),
		Departments: u.Departments.Strings(),
	})
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
