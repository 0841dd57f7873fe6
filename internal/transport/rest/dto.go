package rest

import (
	"strings"
	"time"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/article"
	"github.com/heartmarshall/newsroom-backend/internal/service/vote"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createArticleRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Location    string   `json:"location"`
	CategoryIDs []string `json:"categoryIds"`
	Tags        []string `json:"tags"`
}

type editArticleRequest struct {
	Title       *string   `json:"title"`
	Body        *string   `json:"body"`
	Location    *string   `json:"location"`
	CategoryIDs *[]string `json:"categoryIds"`
	Tags        *[]string `json:"tags"`
}

type transitionRequest struct {
	To string `json:"to"`
}

type coWritersRequest struct {
	CoWriterIDs []string `json:"coWriterIds"`
}

type transferRequest struct {
	NewOwnerID string `json:"newOwnerId"`
}

type sharingRequest struct {
	Shared bool `json:"shared"`
	ToTeam bool `json:"toTeam"`
}

type voteRequest struct {
	Kind string `json:"kind"`
}

type commentRequest struct {
	Body string `json:"body"`
}

type commentReviewRequest struct {
	UnderReview bool `json:"underReview"`
}

type setRolesRequest struct {
	Roles       []string `json:"roles"`
	Departments []string `json:"departments"`
}

func parseLocation(raw string) domain.Location {
	return domain.Location(strings.ToLower(strings.TrimSpace(raw)))
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type articleResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	OwnerName    string    `json:"ownerName,omitempty"`
	CoWriterIDs  []string  `json:"coWriterIds"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Location     string    `json:"location,omitempty"`
	CategoryIDs  []string  `json:"categoryIds"`
	Tags         []string  `json:"tags"`
	State        string    `json:"state"`
	Shared       bool      `json:"shared"`
	SharedToTeam bool      `json:"sharedToTeam"`
	ShareToken   string    `json:"shareToken,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Version      int64     `json:"version"`

	Votes *voteCountsResponse `json:"votes,omitempty"`
}

type voteCountsResponse struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// toArticleResponse renders a for viewer. The share token is only disclosed
// to authors and staff.
func toArticleResponse(a domain.Article, viewer domain.Actor) articleResponse {
	resp := articleResponse{
		ID:           a.ID,
		OwnerID:      a.OwnerID,
		CoWriterIDs:  nonNil(a.CoWriterIDs),
		Title:        a.Title,
		Body:         a.Body,
		Location:     a.Location.String(),
		CategoryIDs:  nonNil(a.CategoryIDs),
		Tags:         nonNil(a.Tags),
		State:        a.State().String(),
		Shared:       a.Shared,
		SharedToTeam: a.SharedToTeam,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Version:      a.Version,
	}
	if viewer.IsStaff() || a.IsAuthor(viewer.ID) {
		resp.ShareToken = a.SharedID
	}
	return resp
}

type articleListResponse struct {
	Articles []articleResponse `json:"articles"`
}

type transitionResponse struct {
	Article articleResponse `json:"article"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Effects []string        `json:"effects"`
	Changed bool            `json:"changed"`
}

func toTransitionResponse(res article.TransitionResult, viewer domain.Actor) transitionResponse {
	return transitionResponse{
		Article: toArticleResponse(res.Article, viewer),
		From:    res.From.String(),
		To:      res.To.String(),
		Effects: effectNames(res.Effects),
		Changed: res.Changed,
	}
}

func effectNames(effects []policy.Effect) []string {
	out := make([]string, len(effects))
	for i, e := range effects {
		out[i] = string(e)
	}
	return out
}

type voteResponse struct {
	State     string `json:"state"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

func toVoteResponse(r vote.Result) voteResponse {
	return voteResponse{State: r.State.String(), Upvotes: r.Upvotes, Downvotes: r.Downvotes}
}

type commentResponse struct {
	ID          string    `json:"id"`
	ArticleID   string    `json:"articleId"`
	AuthorID    string    `json:"authorId"`
	Body        string    `json:"body"`
	UnderReview bool      `json:"underReview"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:          c.ID,
		ArticleID:   c.ArticleID,
		AuthorID:    c.AuthorID,
		Body:        c.Body,
		UnderReview: c.UnderReview,
		CreatedAt:   c.CreatedAt,
	}
}

type commentListResponse struct {
	Comments []commentResponse `json:"comments"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Roles       []string  `json:"roles"`
	Departments []string  `json:"departments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Roles:       u.Roles.Strings(),
		Departments: u.Departments.Strings(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
