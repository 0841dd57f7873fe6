package userdir

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID
// ---------------------------------------------------------------------------

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[string, *domain.User] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[string]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		return mapResults(keys, byID, nilValue[*domain.User])
	}
}

// ---------------------------------------------------------------------------
// Vote counts by ArticleID
// ---------------------------------------------------------------------------

func newVoteCountsBatchFn(repo voteRepo) dataloader.BatchFunc[string, domain.VoteCounts] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[domain.VoteCounts] {
		counts, err := repo.CountsByArticles(ctx, keys)
		if err != nil {
			return errorResults[domain.VoteCounts](len(keys), err)
		}

		return mapResults(keys, counts, nilValue[domain.VoteCounts])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []string, grouped map[string]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[V any]() V {
	var zero V
	return zero
}
