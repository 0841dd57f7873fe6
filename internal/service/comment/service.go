package comment

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
)

const MaxBodyLength = 5000

type articleRepo interface {
	GetByID(ctx context.Context, id string) (domain.Article, error)
}

type commentRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	ExistsDuplicate(ctx context.Context, articleID, authorID, body string) (bool, error)
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	SetReview(ctx context.Context, id string, underReview bool) (domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides comment operations.
type Service struct {
	articles articleRepo
	comments commentRepo
	audit    auditLogger
	tx       txManager
	policy   policy.CommentPolicy
	log      *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	comments commentRepo,
	audit auditLogger,
	tx txManager,
	p policy.CommentPolicy,
) *Service {
	return &Service{
		articles: articles,
		comments: comments,
		audit:    audit,
		tx:       tx,
		policy:   p,
		log:      log.With("service", "comment"),
	}
}
