package rest

import (
	"net/http"

	"github.com/heartmarshall/newsroom-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Articles *ArticleHandler
	Comments *CommentHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

// Limits holds the rate limiting middleware for mutating routes. Nil entries
// disable limiting.
type Limits struct {
	Writes middleware.Middleware
	Votes  middleware.Middleware
}

// NewRouter registers every endpoint on a new ServeMux.
func NewRouter(h Handlers, limits Limits) *http.ServeMux {
	writes := middleware.Chain(limits.Writes)
	votes := middleware.Chain(limits.Votes)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /articles", h.Articles.List)
	mux.Handle("POST /articles", writes(http.HandlerFunc(h.Articles.Create)))
	mux.HandleFunc("GET /articles/{id}", h.Articles.Get)
	mux.Handle("PATCH /articles/{id}", writes(http.HandlerFunc(h.Articles.Edit)))
	mux.Handle("DELETE /articles/{id}", writes(http.HandlerFunc(h.Articles.Delete)))
	mux.Handle("POST /articles/{id}/transition", writes(http.HandlerFunc(h.Articles.Transition)))
	mux.Handle("PUT /articles/{id}/co-writers", writes(http.HandlerFunc(h.Articles.SetCoWriters)))
	mux.Handle("POST /articles/{id}/transfer", writes(http.HandlerFunc(h.Articles.Transfer)))
	mux.Handle("PUT /articles/{id}/sharing", writes(http.HandlerFunc(h.Articles.SetSharing)))
	mux.Handle("POST /articles/{id}/sharing/rotate", writes(http.HandlerFunc(h.Articles.RotateShareToken)))
	mux.HandleFunc("GET /articles/{id}/votes", h.Articles.Votes)
	mux.Handle("POST /articles/{id}/votes", votes(http.HandlerFunc(h.Articles.Vote)))

	mux.HandleFunc("GET /articles/{id}/comments", h.Comments.List)
	mux.Handle("POST /articles/{id}/comments", writes(http.HandlerFunc(h.Comments.Add)))
	mux.Handle("PUT /comments/{id}/review", writes(http.HandlerFunc(h.Comments.SetReview)))
	mux.Handle("DELETE /comments/{id}", writes(http.HandlerFunc(h.Comments.Delete)))

	mux.HandleFunc("GET /admin/users/{id}", h.Admin.GetUser)
	mux.Handle("PUT /admin/users/{id}/roles", writes(http.HandlerFunc(h.Admin.SetRoles)))

	return mux
}
