package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

type commentService interface {
	AddComment(ctx context.Context, articleID, body string) (domain.Comment, error)
	ListComments(ctx context.Context, articleID string) ([]domain.Comment, error)
	SetCommentReview(ctx context.Context, commentID string, underReview bool) (domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentHandler serves comment endpoints.
type CommentHandler struct {
	comments commentService
	log      *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(comments commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, log: logger.With("handler", "comment")}
}

// List handles GET /articles/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.comments.ListComments(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := commentListResponse{Comments: make([]commentResponse, 0, len(list))}
	for _, c := range list {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /articles/{id}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.comments.AddComment(r.Context(), r.PathValue("id"), req.Body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// SetReview handles PUT /comments/{id}/review.
func (h *CommentHandler) SetReview(w http.ResponseWriter, r *http.Request) {
	var req commentReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.comments.SetCommentReview(r.Context(), r.PathValue("id"), req.UnderReview)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

// Delete handles DELETE /comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.comments.DeleteComment(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, scopeResource, err)
}
