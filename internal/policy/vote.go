package policy

import "github.com/heartmarshall/newsroom-backend/internal/domain"

// VoteOp is the single store write a vote request turns into.
type VoteOp string

const (
	VoteInsert VoteOp = "INSERT"
	VoteDelete VoteOp = "DELETE"
	VoteSwitch VoteOp = "SWITCH"
)

// VotePlan describes how to move from the existing vote to the requested one.
// Expected is the kind the stored row must still have for the write to apply;
// it is empty for inserts.
type VotePlan struct {
	Op       VoteOp
	Expected domain.VoteKind
	Kind     domain.VoteKind
	Result   domain.VoteState
}

// PlanVote resolves a vote request against the voter's existing vote, if any.
// The same kind twice clears the vote. The opposite kind switches it in place.
func PlanVote(existing *domain.Vote, kind domain.VoteKind) (VotePlan, error) {
	if !kind.IsValid() {
		return VotePlan{}, domain.NewValidationError("kind", "must be UPVOTE or DOWNVOTE")
	}

	switch {
	case existing == nil:
		return VotePlan{Op: VoteInsert, Kind: kind, Result: kind.State()}, nil
	case existing.Kind == kind:
		return VotePlan{Op: VoteDelete, Expected: kind, Kind: kind, Result: domain.VoteStateNone}, nil
	default:
		return VotePlan{Op: VoteSwitch, Expected: existing.Kind, Kind: kind, Result: kind.State()}, nil
	}
}

// CanVote checks whether actor may vote on article. Anonymous actors are
// unauthorized and unpublished articles cannot collect votes.
func CanVote(actor domain.Actor, article domain.Article) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	if !article.Published {
		return domain.NewPreconditionError("article is not published")
	}
	return nil
}
