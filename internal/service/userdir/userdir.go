// Package userdir provides per-request DataLoaders that batch user and vote
// count lookups into single SQL calls. Loaders call repositories directly;
// callers apply visibility rules themselves.
package userdir

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.User, error)
}

type voteRepo interface {
	CountsByArticles(ctx context.Context, articleIDs []string) (map[string]domain.VoteCounts, error)
}

// Repos holds the repositories the loaders batch against.
type Repos struct {
	Users userRepo
	Votes voteRepo
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders holds the per-request loader instances. Results are cached for the
// lifetime of one request.
type Loaders struct {
	UserByID              *dataloader.Loader[string, *domain.User]
	VoteCountsByArticleID *dataloader.Loader[string, domain.VoteCounts]
}

// NewLoaders creates a fresh set of loaders backed by repos.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:              newLoader(newUsersBatchFn(repos.Users)),
		VoteCountsByArticleID: newLoader(newVoteCountsBatchFn(repos.Votes)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Directory
// ---------------------------------------------------------------------------

// Directory resolves ids through the request's loaders. Outside a request
// (CLI, background work) it batches through a one-off loader set.
type Directory struct {
	repos *Repos
}

// NewDirectory creates a Directory over repos.
func NewDirectory(repos *Repos) *Directory {
	return &Directory{repos: repos}
}

func (d *Directory) loaders(ctx context.Context) *Loaders {
	if l, ok := FromContext(ctx); ok {
		return l
	}
	return NewLoaders(d.repos)
}

// ResolveUsers returns the stored user for every id that exists. Unknown ids
// are absent from the map.
func (d *Directory) ResolveUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, errs := d.loaders(ctx).UserByID.LoadMany(ctx, ids)()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load user %s: %w", ids[i], err)
		}
	}
	for i, u := range users {
		if u != nil {
			out[ids[i]] = u
		}
	}
	return out, nil
}

// LookupUsers reads users straight from the repository, skipping the request
// cache, so a lookup made inside a transaction sees that transaction's view.
// Unknown ids are absent from the map.
func (d *Directory) LookupUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, err := d.repos.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup users: %w", err)
	}
	for i := range users {
		out[users[i].ID] = &users[i]
	}
	return out, nil
}

// VoteCounts returns the reaction totals for every article id. Articles
// without votes map to zero counts.
func (d *Directory) VoteCounts(ctx context.Context, articleIDs []string) (map[string]domain.VoteCounts, error) {
	out := make(map[string]domain.VoteCounts, len(articleIDs))
	if len(articleIDs) == 0 {
		return out, nil
	}

	counts, errs := d.loaders(ctx).VoteCountsByArticleID.LoadMany(ctx, articleIDs)()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load vote counts %s: %w", articleIDs[i], err)
		}
	}
	for i, c := range counts {
		out[articleIDs[i]] = c
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "userdir_loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
