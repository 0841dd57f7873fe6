package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/internal/service/article"
	"github.com/heartmarshall/newsroom-backend/internal/service/vote"
)

type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (domain.Article, error)
	Get(ctx context.Context, articleID string) (domain.Article, error)
	List(ctx context.Context, input article.ListInput) ([]domain.Article, error)
	Edit(ctx context.Context, input article.EditInput) (domain.Article, error)
	Delete(ctx context.Context, articleID string) error
	ApplyTransition(ctx context.Context, articleID string, to domain.ArticleState) (article.TransitionResult, error)
	SetCoWriters(ctx context.Context, articleID string, ids []string) (domain.Article, error)
	TransferOwnership(ctx context.Context, articleID, newOwnerID string) (domain.Article, error)
	SetSharing(ctx context.Context, articleID string, shared, toTeam bool) (domain.Article, error)
	RotateShareToken(ctx context.Context, articleID string) (domain.Article, error)
}

type voteService interface {
	ApplyVote(ctx context.Context, articleID string, kind domain.VoteKind) (vote.Result, error)
	Summary(ctx context.Context, articleID string) (vote.Result, error)
}

// listDirectory batches the per-article extras of a list page.
type listDirectory interface {
	VoteCounts(ctx context.Context, articleIDs []string) (map[string]domain.VoteCounts, error)
	ResolveUsers(ctx context.Context, ids []string) (map[string]*domain.User, error)
}

// ArticleHandler serves article and vote endpoints.
type ArticleHandler struct {
	articles articleService
	votes    voteService
	dir      listDirectory
	log      *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articles articleService, votes voteService, dir listDirectory, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		votes:    votes,
		dir:      dir,
		log:      logger.With("handler", "article"),
	}
}

// List handles GET /articles?location=&limit=&offset=.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	var input article.ListInput

	if raw := r.URL.Query().Get("location"); raw != "" {
		loc := parseLocation(raw)
		input.Location = &loc
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	input.Limit, input.Offset = limit, offset

	list, err := h.articles.List(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ids := make([]string, len(list))
	owners := make([]string, len(list))
	for i, a := range list {
		ids[i], owners[i] = a.ID, a.OwnerID
	}
	counts, err := h.dir.VoteCounts(r.Context(), ids)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	users, err := h.dir.ResolveUsers(r.Context(), owners)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	viewer := actor.FromCtx(r.Context())
	resp := articleListResponse{Articles: make([]articleResponse, 0, len(list))}
	for _, a := range list {
		item := toArticleResponse(a, viewer)
		c := counts[a.ID]
		item.Votes = &voteCountsResponse{Upvotes: c.Upvotes, Downvotes: c.Downvotes}
		if u := users[a.OwnerID]; u != nil {
			item.OwnerName = u.Name
		}
		resp.Articles = append(resp.Articles, item)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.articles.Create(r.Context(), article.CreateInput{
		Title:       req.Title,
		Body:        req.Body,
		Location:    parseLocation(req.Location),
		CategoryIDs: req.CategoryIDs,
		Tags:        req.Tags,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(created, actor.FromCtx(r.Context())))
}

// Get handles GET /articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.articles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(a, actor.FromCtx(r.Context())))
}

// Edit handles PATCH /articles/{id}.
func (h *ArticleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := article.EditInput{
		ArticleID:   r.PathValue("id"),
		Title:       req.Title,
		Body:        req.Body,
		CategoryIDs: req.CategoryIDs,
		Tags:        req.Tags,
	}
	if req.Location != nil {
		loc := parseLocation(*req.Location)
		input.Location = &loc
	}

	updated, err := h.articles.Edit(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(updated, actor.FromCtx(r.Context())))
}

// Delete handles DELETE /articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.articles.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Transition handles POST /articles/{id}/transition.
func (h *ArticleHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	to := domain.ArticleState(strings.ToUpper(strings.TrimSpace(req.To)))
	res, err := h.articles.ApplyTransition(r.Context(), r.PathValue("id"), to)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransitionResponse(res, actor.FromCtx(r.Context())))
}

// SetCoWriters handles PUT /articles/{id}/co-writers.
func (h *ArticleHandler) SetCoWriters(w http.ResponseWriter, r *http.Request) {
	var req coWritersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.articles.SetCoWriters(r.Context(), r.PathValue("id"), req.CoWriterIDs)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(updated, actor.FromCtx(r.Context())))
}

// Transfer handles POST /articles/{id}/transfer.
func (h *ArticleHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.articles.TransferOwnership(r.Context(), r.PathValue("id"), req.NewOwnerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(updated, actor.FromCtx(r.Context())))
}

// SetSharing handles PUT /articles/{id}/sharing.
func (h *ArticleHandler) SetSharing(w http.ResponseWriter, r *http.Request) {
	var req sharingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.articles.SetSharing(r.Context(), r.PathValue("id"), req.Shared, req.ToTeam)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(updated, actor.FromCtx(r.Context())))
}

// RotateShareToken handles POST /articles/{id}/sharing/rotate.
func (h *ArticleHandler) RotateShareToken(w http.ResponseWriter, r *http.Request) {
	updated, err := h.articles.RotateShareToken(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(updated, actor.FromCtx(r.Context())))
}

// Vote handles POST /articles/{id}/votes.
func (h *ArticleHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	kind := domain.VoteKind(strings.ToUpper(strings.TrimSpace(req.Kind)))
	res, err := h.votes.ApplyVote(r.Context(), r.PathValue("id"), kind)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResponse(res))
}

// Votes handles GET /articles/{id}/votes.
func (h *ArticleHandler) Votes(w http.ResponseWriter, r *http.Request) {
	res, err := h.votes.Summary(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResponse(res))
}

func (h *ArticleHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, scopeResource, err)
}
