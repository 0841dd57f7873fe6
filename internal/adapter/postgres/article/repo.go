// Package article implements the article store on PostgreSQL. Every write is
// a single conditional statement keyed on the row version.
package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

const table = "articles"

var columns = []string{
	"id", "owner_id", "co_writer_ids", "title", "body", "location", "category_ids", "tags",
	"published", "under_review", "ready_to_publish", "shared", "shared_to_team", "shared_id",
	"created_at", "updated_at", "version",
}

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the article with the given id.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Article, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build get article: %w", err)
	}

	a, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// List returns articles matching any of the filter's enabled clauses,
// newest first.
func (r *Repo) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id")

	if !f.All {
		scope := sq.Or{}
		if f.Published {
			scope = append(scope, sq.And{sq.Eq{"published": true}, sq.Eq{"under_review": false}})
		}
		if f.AuthorID != "" {
			scope = append(scope, sq.Or{
				sq.Eq{"owner_id": f.AuthorID},
				sq.Expr("? = ANY(co_writer_ids)", f.AuthorID),
			})
		}
		if !f.Departments.IsEmpty() {
			scope = append(scope, sq.Eq{"location": f.Departments.Strings()})
		}
		b = b.Where(scope)
	}
	if f.Location != nil {
		b = b.Where(sq.Eq{"location": string(*f.Location)})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list articles: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return articles, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new article and returns the stored row.
func (r *Repo) Create(ctx context.Context, a domain.Article) (domain.Article, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			a.ID, a.OwnerID, nonNil(a.CoWriterIDs), a.Title, a.Body, string(a.Location), nonNil(a.CategoryIDs), nonNil(a.Tags),
			a.Published, a.UnderReview, a.ReadyToPublish, a.Shared, a.SharedToTeam, a.SharedID,
			a.CreatedAt, a.UpdatedAt, a.Version,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build create article: %w", err)
	}

	created, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", a.ID)
	}
	return created, nil
}

// Update applies patch if the stored row still has expectedVersion and bumps
// the version. A missing row yields ErrNotFound; a version mismatch yields
// ErrConflict.
func (r *Repo) Update(ctx context.Context, id string, patch domain.ArticlePatch, expectedVersion int64) (domain.Article, error) {
	set := setClause(patch)
	set["version"] = sq.Expr("version + 1")
	set["updated_at"] = sq.Expr("now()")

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id, "version": expectedVersion}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build update article: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	updated, err := scanArticle(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Article{}, r.missOrConflict(ctx, q, id)
	}
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}
	return updated, nil
}

// Delete removes an unprotected article at expectedVersion. A row that has
// moved on, or became protected, yields ErrConflict.
func (r *Repo) Delete(ctx context.Context, id string, expectedVersion int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "version": expectedVersion, "under_review": false, "published": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete article: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return r.missOrConflict(ctx, q, id)
	}
	return nil
}

func (r *Repo) missOrConflict(ctx context.Context, q postgres.Querier, id string) error {
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "article", id)
	}
	if !exists {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("article %s: %w", id, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func setClause(p domain.ArticlePatch) map[string]any {
	set := make(map[string]any)
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Body != nil {
		set["body"] = *p.Body
	}
	if p.Location != nil {
		set["location"] = string(*p.Location)
	}
	if p.CategoryIDs != nil {
		set["category_ids"] = nonNil(*p.CategoryIDs)
	}
	if p.Tags != nil {
		set["tags"] = nonNil(*p.Tags)
	}
	if p.OwnerID != nil {
		set["owner_id"] = *p.OwnerID
	}
	if p.CoWriterIDs != nil {
		set["co_writer_ids"] = nonNil(*p.CoWriterIDs)
	}
	if p.Published != nil {
		set["published"] = *p.Published
	}
	if p.UnderReview != nil {
		set["under_review"] = *p.UnderReview
	}
	if p.ReadyToPublish != nil {
		set["ready_to_publish"] = *p.ReadyToPublish
	}
	if p.Shared != nil {
		set["shared"] = *p.Shared
	}
	if p.SharedToTeam != nil {
		set["shared_to_team"] = *p.SharedToTeam
	}
	if p.SharedID != nil {
		set["shared_id"] = *p.SharedID
	}
	if p.CreatedAt != nil {
		set["created_at"] = *p.CreatedAt
	}
	return set
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var (
		a        domain.Article
		location string
	)
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.CoWriterIDs, &a.Title, &a.Body, &location, &a.CategoryIDs, &a.Tags,
		&a.Published, &a.UnderReview, &a.ReadyToPublish, &a.Shared, &a.SharedToTeam, &a.SharedID,
		&a.CreatedAt, &a.UpdatedAt, &a.Version,
	)
	if err != nil {
		return domain.Article{}, err
	}
	a.Location = domain.Location(location)
	return a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
