package domain

// Role is one independent authorization flag held by a user.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleEditorial Role = "EDITORIAL"
	RoleReviewer  Role = "REVIEWER"
	RoleWriter    Role = "WRITER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditorial, RoleReviewer, RoleWriter:
		return true
	}
	return false
}

// AllRoles lists every role in a stable order.
var AllRoles = []Role{RoleAdmin, RoleEditorial, RoleReviewer, RoleWriter}

// Location is a subject-area tag. It categorizes articles and scopes
// reviewer access (as a department).
type Location string

const (
	LocationNews      Location = "news"
	LocationSports    Location = "sports"
	LocationArts      Location = "arts"
	LocationOpinion   Location = "opinion"
	LocationFeatures  Location = "features"
	LocationScience   Location = "science"
	LocationCommunity Location = "community"
)

func (l Location) String() string { return string(l) }

func (l Location) IsValid() bool {
	switch l {
	case LocationNews, LocationSports, LocationArts, LocationOpinion,
		LocationFeatures, LocationScience, LocationCommunity:
		return true
	}
	return false
}

// AllLocations lists the closed Location enumeration in a stable order.
var AllLocations = []Location{
	LocationNews, LocationSports, LocationArts, LocationOpinion,
	LocationFeatures, LocationScience, LocationCommunity,
}

// ArticleState is the lifecycle state derived from an article's flags.
type ArticleState string

const (
	ArticleStateDraft          ArticleState = "DRAFT"
	ArticleStateUnderReview    ArticleState = "UNDER_REVIEW"
	ArticleStateReadyToPublish ArticleState = "READY_TO_PUBLISH"
	ArticleStatePublished      ArticleState = "PUBLISHED"
)

func (s ArticleState) String() string { return string(s) }

func (s ArticleState) IsValid() bool {
	switch s {
	case ArticleStateDraft, ArticleStateUnderReview, ArticleStateReadyToPublish, ArticleStatePublished:
		return true
	}
	return false
}

// VoteKind is the reaction a reader leaves on an article.
type VoteKind string

const (
	VoteKindUpvote   VoteKind = "UPVOTE"
	VoteKindDownvote VoteKind = "DOWNVOTE"
)

func (k VoteKind) String() string { return string(k) }

func (k VoteKind) IsValid() bool {
	switch k {
	case VoteKindUpvote, VoteKindDownvote:
		return true
	}
	return false
}

// Opposite returns the other vote kind.
func (k VoteKind) Opposite() VoteKind {
	if k == VoteKindUpvote {
		return VoteKindDownvote
	}
	return VoteKindUpvote
}

// State returns the vote state a stored vote of this kind represents.
func (k VoteKind) State() VoteState {
	return VoteState(k)
}

// VoteState is an actor's resulting reaction on an article.
type VoteState string

const (
	VoteStateNone     VoteState = "NONE"
	VoteStateUpvote   VoteState = "UPVOTE"
	VoteStateDownvote VoteState = "DOWNVOTE"
)

func (s VoteState) String() string { return string(s) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeArticle EntityType = "ARTICLE"
	EntityTypeComment EntityType = "COMMENT"
	EntityTypeVote    EntityType = "VOTE"
	EntityTypeUser    EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeArticle, EntityTypeComment, EntityTypeVote, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionDelete     AuditAction = "DELETE"
	AuditActionTransition AuditAction = "TRANSITION"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionTransition:
		return true
	}
	return false
}
