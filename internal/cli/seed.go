package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// seedFile is the YAML document accepted by `newsroomctl seed`.
type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	ID          string   `yaml:"id"`
	Email       string   `yaml:"email"`
	Name        string   `yaml:"name"`
	Roles       []string `yaml:"roles"`
	Departments []string `yaml:"departments"`
}

type userUpserter interface {
	Upsert(ctx context.Context, u domain.User) (*domain.User, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func newSeedCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Create or refresh users from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer f.Close()

			users, err := parseSeed(f, time.Now().UTC())
			if err != nil {
				return err
			}

			pool, err := e.pool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := seedUsers(cmd.Context(), postgres.NewTxManager(pool), userrepo.New(pool), users); err != nil {
				return err
			}
			e.log.Info("seed completed", slog.Int("users", len(users)))
			return nil
		},
	}
}

// parseSeed decodes and validates a seed document. Editorial users are
// normalized the same way a role grant would be.
func parseSeed(r io.Reader, now time.Time) ([]domain.User, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc seedFile
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	var errs []domain.FieldError
	seen := make(map[string]bool, len(doc.Users))
	users := make([]domain.User, 0, len(doc.Users))

	for n, su := range doc.Users {
		field := fmt.Sprintf("users[%d]", n)
		id := strings.TrimSpace(su.ID)

		switch {
		case id == "":
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: "required"})
		case seen[id]:
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: fmt.Sprintf("duplicate id %q", id)})
		}
		seen[id] = true

		if strings.TrimSpace(su.Email) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".email", Message: "required"})
		}

		var roles domain.RoleSet
		for i, raw := range su.Roles {
			role := domain.Role(strings.ToUpper(strings.TrimSpace(raw)))
			if !role.IsValid() {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.roles[%d]", field, i),
					Message: fmt.Sprintf("unknown role %q", raw),
				})
				continue
			}
			roles = roles.With(role)
		}

		depts := make([]domain.Location, 0, len(su.Departments))
		for i, raw := range su.Departments {
			loc := domain.Location(strings.ToLower(strings.TrimSpace(raw)))
			if !loc.IsValid() {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.departments[%d]", field, i),
					Message: fmt.Sprintf("unknown location %q", raw),
				})
				continue
			}
			depts = append(depts, loc)
		}

		roleSet, deptSet := domain.NormalizeRoles(roles, domain.NewLocationSet(depts...))
		users = append(users, domain.User{
			ID:          id,
			Email:       strings.TrimSpace(su.Email),
			Name:        strings.TrimSpace(su.Name),
			Roles:       roleSet,
			Departments: deptSet,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return users, nil
}

// seedUsers writes every user in one transaction.
func seedUsers(ctx context.Context, tx txRunner, repo userUpserter, users []domain.User) error {
	return tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if _, err := repo.Upsert(ctx, u); err != nil {
				return fmt.Errorf("upsert user %s: %w", u.ID, err)
			}
		}
		return nil
	})
}
