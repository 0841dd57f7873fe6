package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/internal/service/user"
)

// systemActorID is recorded in the audit log for changes made from the CLI.
const systemActorID = "system:newsroomctl"

type roleSetter interface {
	SetRoles(ctx context.Context, input user.SetRolesInput) (*domain.User, error)
}

func newSetRolesCommand(e *env) *cobra.Command {
	var input user.SetRolesInput

	cmd := &cobra.Command{
		Use:   "set-roles <user-id>",
		Short: "Replace the roles and departments of a user",
		Long: `Replace the roles and departments of a user.

Granting EDITORIAL implies WRITER, REVIEWER and every department.
Revoking it clears them. Bootstraps the first admin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.UserID = args[0]

			pool, err := e.pool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := user.NewService(e.log, userrepo.New(pool), auditrepo.New(pool), postgres.NewTxManager(pool))
			u, err := setRoles(cmd.Context(), svc, input)
			if err != nil {
				return err
			}

			e.log.Info("roles updated",
				slog.String("user_id", u.ID),
				slog.String("roles", u.Roles.String()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s roles=%v departments=%v\n", u.ID, u.Roles.Strings(), u.Departments.Strings())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&input.Roles, "role", nil, "role to hold (repeatable): ADMIN, EDITORIAL, REVIEWER, WRITER")
	cmd.Flags().StringSliceVar(&input.Departments, "department", nil, "reviewer department (repeatable)")

	return cmd
}

// setRoles runs the change as a system administrator.
func setRoles(ctx context.Context, svc roleSetter, input user.SetRolesInput) (*domain.User, error) {
	ctx = actor.WithActor(ctx, domain.Actor{
		ID:    systemActorID,
		Roles: domain.NewRoleSet(domain.RoleAdmin),
	})
	return svc.SetRoles(ctx, input)
}
