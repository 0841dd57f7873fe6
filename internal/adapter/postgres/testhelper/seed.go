package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user holding roles. Editorial grants are normalized
// before they are stored.
func SeedUser(t *testing.T, pool *pgxpool.Pool, roles ...domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rs, deps := domain.NormalizeRoles(domain.NewRoleSet(roles...), 0)
	user := domain.User{
		ID:          uuid.NewString(),
		Email:       "user-" + suffix + "@school.test",
		Name:        "Test User " + suffix,
		Roles:       rs,
		Departments: deps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, roles, departments, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.Roles.Strings(), user.Departments.Strings(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedArticle creates a Draft article owned by ownerID. Options run before
// the insert and may set any column.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, ownerID string, opts ...func(a *domain.Article)) domain.Article {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Article{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		CoWriterIDs: []string{},
		Title:       "Article " + suffix,
		Body:        "Body of article " + suffix,
		Location:    domain.LocationNews,
		CategoryIDs: []string{"general"},
		Tags:        []string{},
		SharedID:    "share-" + uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
	for _, opt := range opts {
		opt(&a)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO articles (id, owner_id, co_writer_ids, title, body, location, category_ids, tags,
		                       published, under_review, ready_to_publish, shared, shared_to_team, shared_id,
		                       created_at, updated_at, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		a.ID, a.OwnerID, a.CoWriterIDs, a.Title, a.Body, string(a.Location), a.CategoryIDs, a.Tags,
		a.Published, a.UnderReview, a.ReadyToPublish, a.Shared, a.SharedToTeam, a.SharedID,
		a.CreatedAt, a.UpdatedAt, a.Version,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert: %v", err)
	}

	return a
}
