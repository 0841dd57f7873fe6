package domain

import (
	"slices"
	"time"
)

// Limits on article classification.
const (
	MaxCategories = 3
	MaxTags       = 2
)

// Article is a news piece owned by one writer and optionally co-written.
// Lifecycle is encoded in Published/UnderReview/ReadyToPublish; sharing is
// orthogonal to it.
type Article struct {
	ID          string
	OwnerID     string
	CoWriterIDs []string
	Title       string
	Body        string
	Location    Location // empty when unset
	CategoryIDs []string
	Tags        []string

	Published      bool
	UnderReview    bool
	ReadyToPublish bool

	Shared       bool
	SharedToTeam bool
	SharedID     string

	// CreatedAt doubles as the public "published at" timestamp; publishing resets it.
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

// State derives the lifecycle state from the article's flags.
func (a Article) State() ArticleState {
	switch {
	case a.Published:
		return ArticleStatePublished
	case a.UnderReview && a.ReadyToPublish:
		return ArticleStateReadyToPublish
	case a.UnderReview:
		return ArticleStateUnderReview
	default:
		return ArticleStateDraft
	}
}

// IsOwner reports whether userID owns the article.
func (a Article) IsOwner(userID string) bool {
	return userID != "" && a.OwnerID == userID
}

// IsCoWriter reports whether userID is a co-writer of the article.
func (a Article) IsCoWriter(userID string) bool {
	return userID != "" && slices.Contains(a.CoWriterIDs, userID)
}

// IsAuthor reports whether userID is the owner or a co-writer.
func (a Article) IsAuthor(userID string) bool {
	return a.IsOwner(userID) || a.IsCoWriter(userID)
}

// IsProtected reports whether the article is shielded from deletion.
func (a Article) IsProtected() bool {
	return a.UnderReview || a.Published
}

// Clone returns a deep copy so callers can derive a new snapshot without
// mutating the original.
func (a Article) Clone() Article {
	a.CoWriterIDs = slices.Clone(a.CoWriterIDs)
	a.CategoryIDs = slices.Clone(a.CategoryIDs)
	a.Tags = slices.Clone(a.Tags)
	return a
}

// ArticlePatch is a partial update. Nil fields are left unchanged.
type ArticlePatch struct {
	Title       *string
	Body        *string
	Location    *Location
	CategoryIDs *[]string
	Tags        *[]string

	OwnerID     *string
	CoWriterIDs *[]string

	Published      *bool
	UnderReview    *bool
	ReadyToPublish *bool

	Shared       *bool
	SharedToTeam *bool
	SharedID     *string

	CreatedAt *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p == ArticlePatch{}
}

// Apply returns a copy of a with the patch applied.
func (p ArticlePatch) Apply(a Article) Article {
	out := a.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Body != nil {
		out.Body = *p.Body
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.CategoryIDs != nil {
		out.CategoryIDs = slices.Clone(*p.CategoryIDs)
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(*p.Tags)
	}
	if p.OwnerID != nil {
		out.OwnerID = *p.OwnerID
	}
	if p.CoWriterIDs != nil {
		out.CoWriterIDs = slices.Clone(*p.CoWriterIDs)
	}
	if p.Published != nil {
		out.Published = *p.Published
	}
	if p.UnderReview != nil {
		out.UnderReview = *p.UnderReview
	}
	if p.ReadyToPublish != nil {
		out.ReadyToPublish = *p.ReadyToPublish
	}
	if p.Shared != nil {
		out.Shared = *p.Shared
	}
	if p.SharedToTeam != nil {
		out.SharedToTeam = *p.SharedToTeam
	}
	if p.SharedID != nil {
		out.SharedID = *p.SharedID
	}
	if p.CreatedAt != nil {
		out.CreatedAt = *p.CreatedAt
	}
	return out
}

// ArticleFilter narrows an article listing on the store side. Rows matching
// any of the enabled clauses are returned; the visibility resolver re-checks
// each row afterwards.
type ArticleFilter struct {
	All         bool        // staff: no restriction
	Published   bool        // published and not under review
	AuthorID    string      // owned or co-written by this user
	Departments LocationSet // location within these departments
	Location    *Location   // optional exact location narrowing
	Limit       int
	Offset      int
}

// Comment is a reader remark attached to an article.
type Comment struct {
	ID          string
	ArticleID   string
	AuthorID    string
	Body        string
	UnderReview bool
	CreatedAt   time.Time
}

// Vote is one reader's reaction on one article.
type Vote struct {
	ID        string
	ArticleID string
	VoterID   string
	Kind      VoteKind
	CreatedAt time.Time
}

// VoteCounts holds the aggregate reactions for an article.
type VoteCounts struct {
	Upvotes   int
	Downvotes int
}
