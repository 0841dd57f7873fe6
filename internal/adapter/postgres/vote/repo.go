// Package vote implements the vote store on PostgreSQL. Writes are
// conditional so a voter never ends up with two rows, and a write whose
// precondition no longer holds reports ErrConflict.
package vote

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

const table = "votes"

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the voter's vote on the article, or nil if there is none.
func (r *Repo) Get(ctx context.Context, articleID, voterID string) (*domain.Vote, error) {
	query, args, err := postgres.Builder().
		Select("id", "article_id", "voter_id", "kind", "created_at").
		From(table).
		Where(sq.Eq{"article_id": articleID, "voter_id": voterID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vote: %w", err)
	}

	var (
		v    domain.Vote
		kind string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&v.ID, &v.ArticleID, &v.VoterID, &kind, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "vote", articleID+"/"+voterID)
	}
	v.Kind = domain.VoteKind(kind)
	return &v, nil
}

// Counts returns the aggregate reactions on one article.
func (r *Repo) Counts(ctx context.Context, articleID string) (domain.VoteCounts, error) {
	counts, err := r.CountsByArticles(ctx, []string{articleID})
	if err != nil {
		return domain.VoteCounts{}, err
	}
	return counts[articleID], nil
}

// CountsByArticles returns aggregate reactions keyed by article id. Articles
// without votes are absent from the map.
func (r *Repo) CountsByArticles(ctx context.Context, articleIDs []string) (map[string]domain.VoteCounts, error) {
	out := make(map[string]domain.VoteCounts, len(articleIDs))
	if len(articleIDs) == 0 {
		return out, nil
	}

	query, args, err := postgres.Builder().
		Select(
			"article_id",
			"count(*) FILTER (WHERE kind = 'UPVOTE')",
			"count(*) FILTER (WHERE kind = 'DOWNVOTE')",
		).
		From(table).
		Where(sq.Eq{"article_id": articleIDs}).
		GroupBy("article_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vote counts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("vote counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       string
			up, down int64
		)
		if err := rows.Scan(&id, &up, &down); err != nil {
			return nil, fmt.Errorf("scan vote counts: %w", err)
		}
		out[id] = domain.VoteCounts{Upvotes: int(up), Downvotes: int(down)}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vote counts: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert adds v unless the voter already has a vote on the article.
func (r *Repo) Insert(ctx context.Context, v domain.Vote) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "article_id", "voter_id", "kind", "created_at").
		Values(v.ID, v.ArticleID, v.VoterID, string(v.Kind), v.CreatedAt).
		Suffix("ON CONFLICT (article_id, voter_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert vote: %w", err)
	}

	return r.execOne(ctx, query, args, v.ArticleID+"/"+v.VoterID)
}

// ChangeKind switches the voter's vote from one kind to the other in place.
func (r *Repo) ChangeKind(ctx context.Context, articleID, voterID string, from, to domain.VoteKind) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("kind", string(to)).
		Where(sq.Eq{"article_id": articleID, "voter_id": voterID, "kind": string(from)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build change vote: %w", err)
	}

	return r.execOne(ctx, query, args, articleID+"/"+voterID)
}

// Delete removes the voter's vote if it still has the given kind.
func (r *Repo) Delete(ctx context.Context, articleID, voterID string, kind domain.VoteKind) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"article_id": articleID, "voter_id": voterID, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete vote: %w", err)
	}

	return r.execOne(ctx, query, args, articleID+"/"+voterID)
}

// execOne runs a conditional write that must touch exactly one row.
func (r *Repo) execOne(ctx context.Context, query string, args []any, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "vote", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vote %s: %w", id, domain.ErrConflict)
	}
	return nil
}
