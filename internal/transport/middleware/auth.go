package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Session, error)
}

type actorResolver interface {
	Resolve(ctx context.Context, session *domain.Session) (domain.Actor, error)
}

// Auth resolves the request's Actor. Requests without a bearer token proceed
// as the anonymous reader; an invalid token or an unknown user is rejected.
func Auth(validator tokenValidator, actors actorResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			session, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			a, err := actors.Resolve(r.Context(), &session)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				logger.ErrorContext(r.Context(), "resolve actor", slog.String("error", err.Error()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), a.ID)
			ctx = actor.WithActor(ctx, a)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
