// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

const table = "comments"

var columns = []string{"id", "article_id", "author_id", "body", "under_review", "created_at"}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comment: %w", err)
	}

	c, err := scanComment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &c, nil
}

// ListByArticle returns every comment on an article, oldest first. Callers
// filter the result for the reading actor.
func (r *Repo) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"article_id": articleID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}

// ExistsDuplicate reports whether authorID already posted body on articleID.
func (r *Repo) ExistsDuplicate(ctx context.Context, articleID, authorID, body string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"article_id": articleID, "author_id": authorID}).
		Where("md5(body) = md5(?)", body).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build duplicate check: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("duplicate check: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a comment. A concurrent duplicate loses on the unique index
// and yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.ArticleID, c.AuthorID, c.Body, c.UnderReview, c.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("build create comment: %w", err)
	}

	created, err := scanComment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "comment", c.ID)
	}
	return created, nil
}

// SetReview flags or clears the moderation flag of a comment.
func (r *Repo) SetReview(ctx context.Context, id string, underReview bool) (domain.Comment, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("under_review", underReview).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("build set comment review: %w", err)
	}

	c, err := scanComment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "comment", id)
	}
	return c, nil
}

// Delete removes a comment. A missing row yields ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comment: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Body, &c.UnderReview, &c.CreatedAt)
	return c, err
}
