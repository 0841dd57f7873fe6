package actor

import (
	"context"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

type ctxKey struct{}

// WithActor stores a resolved actor in ctx.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromCtx returns the actor stored in ctx, or the anonymous actor.
func FromCtx(ctx context.Context) domain.Actor {
	if a, ok := ctx.Value(ctxKey{}).(domain.Actor); ok {
		return a
	}
	return domain.Anonymous()
}
