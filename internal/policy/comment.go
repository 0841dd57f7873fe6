package policy

import "github.com/heartmarshall/newsroom-backend/internal/domain"

// CommentPolicy holds the deployment switches for new comments.
type CommentPolicy struct {
	// PreModeration flags comments from actors without any role for review.
	PreModeration bool
}

// CanComment checks whether actor may comment on article.
func CanComment(actor domain.Actor, article domain.Article, shareToken string) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	if !CanRead(actor, article, shareToken) {
		return domain.ErrNotFound
	}
	return nil
}

// InitialCommentReview reports whether a new comment by actor starts flagged.
func InitialCommentReview(actor domain.Actor, p CommentPolicy) bool {
	return p.PreModeration && actor.Roles.IsEmpty()
}

// CanModerateComment reports whether actor may flag or clear a comment.
func CanModerateComment(actor domain.Actor) bool {
	return actor.IsStaff()
}

// CanDeleteComment reports whether actor may delete comment.
func CanDeleteComment(actor domain.Actor, comment domain.Comment) bool {
	if actor.IsAnonymous() {
		return false
	}
	return actor.IsAdmin() || comment.AuthorID == actor.ID
}
