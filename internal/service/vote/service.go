// Package vote applies reader reactions so that each reader holds at most one
// vote per article, whatever the interleaving of concurrent requests.
package vote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

type articleRepo interface {
	GetByID(ctx context.Context, id string) (domain.Article, error)
}

type voteRepo interface {
	Get(ctx context.Context, articleID, voterID string) (*domain.Vote, error)
	Counts(ctx context.Context, articleID string) (domain.VoteCounts, error)
	Insert(ctx context.Context, v domain.Vote) error
	ChangeKind(ctx context.Context, articleID, voterID string, from, to domain.VoteKind) error
	Delete(ctx context.Context, articleID, voterID string, kind domain.VoteKind) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result is the caller's vote state and the article totals after a request.
type Result struct {
	State     domain.VoteState
	Upvotes   int
	Downvotes int
}

// Service provides vote operations.
type Service struct {
	articles articleRepo
	votes    voteRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Vote service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	votes voteRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		articles: articles,
		votes:    votes,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "vote"),
	}
}

// ApplyVote records kind for the calling actor. Voting the same kind twice
// withdraws the vote; the opposite kind switches it in one write. A write
// that loses a race with another request from the same voter returns
// ErrConflict and leaves the store unchanged.
func (s *Service) ApplyVote(ctx context.Context, articleID string, kind domain.VoteKind) (Result, error) {
	a := actor.FromCtx(ctx)
	if a.IsAnonymous() {
		return Result{}, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return Result{}, domain.NewValidationError("kind", "must be UPVOTE or DOWNVOTE")
	}
	token := ctxutil.ShareTokenFromCtx(ctx)

	var (
		result Result
		plan   policy.VotePlan
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		article, err := s.articles.GetByID(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if !policy.CanRead(a, article, token) {
			return fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
		}
		if err := policy.CanVote(a, article); err != nil {
			return err
		}

		existing, err := s.votes.Get(txCtx, articleID, a.ID)
		if err != nil {
			return fmt.Errorf("get vote: %w", err)
		}
		plan, err = policy.PlanVote(existing, kind)
		if err != nil {
			return err
		}

		switch plan.Op {
		case policy.VoteInsert:
			err = s.votes.Insert(txCtx, domain.Vote{
				ID:        uuid.NewString(),
				ArticleID: articleID,
				VoterID:   a.ID,
				Kind:      plan.Kind,
				CreatedAt: time.Now().UTC(),
			})
		case policy.VoteSwitch:
			err = s.votes.ChangeKind(txCtx, articleID, a.ID, plan.Expected, plan.Kind)
		case policy.VoteDelete:
			err = s.votes.Delete(txCtx, articleID, a.ID, plan.Expected)
		}
		if err != nil {
			return fmt.Errorf("%s vote: %w", plan.Op, err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeVote,
			EntityID:   articleID,
			Action:     voteAction(plan.Op),
			Changes: map[string]any{
				"state": map[string]any{"new": plan.Result.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		counts, err := s.votes.Counts(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}
		result = Result{State: plan.Result, Upvotes: counts.Upvotes, Downvotes: counts.Downvotes}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.InfoContext(ctx, "vote applied",
		slog.String("user_id", a.ID),
		slog.String("article_id", articleID),
		slog.String("op", string(plan.Op)),
		slog.String("state", plan.Result.String()),
	)
	return result, nil
}

// Summary returns the totals for an article the actor may read, along with
// the actor's own vote state.
func (s *Service) Summary(ctx context.Context, articleID string) (Result, error) {
	a := actor.FromCtx(ctx)

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return Result{}, fmt.Errorf("get article: %w", err)
	}
	if !policy.CanRead(a, article, ctxutil.ShareTokenFromCtx(ctx)) {
		return Result{}, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
	}

	counts, err := s.votes.Counts(ctx, articleID)
	if err != nil {
		return Result{}, fmt.Errorf("count votes: %w", err)
	}
	res := Result{State: domain.VoteStateNone, Upvotes: counts.Upvotes, Downvotes: counts.Downvotes}

	if !a.IsAnonymous() {
		mine, err := s.votes.Get(ctx, articleID, a.ID)
		if err != nil {
			return Result{}, fmt.Errorf("get vote: %w", err)
		}
		if mine != nil {
			res.State = mine.Kind.State()
		}
	}
	return res, nil
}

func voteAction(op policy.VoteOp) domain.AuditAction {
	switch op {
	case policy.VoteInsert:
		return domain.AuditActionCreate
	case policy.VoteDelete:
		return domain.AuditActionDelete
	default:
		return domain.AuditActionUpdate
	}
}
