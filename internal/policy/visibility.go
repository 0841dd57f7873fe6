package policy

import "github.com/heartmarshall/newsroom-backend/internal/domain"

// CanRead decides whether actor may read article. shareToken is the token the
// request presented, or "" when none was presented.
//
// Precedence, first grant wins:
//  1. Admin or Editorial: always.
//  2. Reviewer: location within departments, authorship, or a matching token.
//  3. Writer: authorship, published, or a matching token.
//  4. Everyone: published and not under review, or a matching token on a
//     public (non-team) share.
//
// Authorship covers the owner and co-writers.
func CanRead(actor domain.Actor, article domain.Article, shareToken string) bool {
	if actor.IsStaff() {
		return true
	}

	tokenMatches := shareToken != "" && shareToken == article.SharedID

	if actor.IsReviewer() {
		if article.Location != "" && actor.Departments.Contains(article.Location) {
			return true
		}
		if article.IsAuthor(actor.ID) || tokenMatches {
			return true
		}
	}

	if actor.IsWriter() {
		if article.IsAuthor(actor.ID) || article.Published || tokenMatches {
			return true
		}
	}

	if article.Published && !article.UnderReview {
		return true
	}
	return tokenMatches && article.Shared && !article.SharedToTeam
}

// SeesAllComments reports whether actor sees flagged comments of other authors.
func SeesAllComments(actor domain.Actor) bool {
	return actor.IsStaff() || actor.IsReviewer()
}

// FilterComments returns the comments actor may see. The caller must already
// have established that actor can read article.
func FilterComments(actor domain.Actor, article domain.Article, comments []domain.Comment) []domain.Comment {
	out := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ArticleID != "" && c.ArticleID != article.ID {
			continue
		}
		if SeesAllComments(actor) || !c.UnderReview || (!actor.IsAnonymous() && c.AuthorID == actor.ID) {
			out = append(out, c)
		}
	}
	return out
}

// ArticleScope returns the store-side pre-filter matching every article actor
// could read without a share token. Rows it returns are still re-checked with
// CanRead.
func ArticleScope(actor domain.Actor) domain.ArticleFilter {
	if actor.IsStaff() {
		return domain.ArticleFilter{All: true}
	}

	f := domain.ArticleFilter{Published: true}
	if !actor.IsAnonymous() && (actor.IsWriter() || actor.IsReviewer()) {
		f.AuthorID = actor.ID
	}
	if actor.IsReviewer() {
		f.Departments = actor.Departments
	}
	return f
}
