package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

type articleRepo interface {
	GetByID(ctx context.Context, id string) (domain.Article, error)
	List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error)
	Create(ctx context.Context, a domain.Article) (domain.Article, error)
	Update(ctx context.Context, id string, patch domain.ArticlePatch, expectedVersion int64) (domain.Article, error)
	Delete(ctx context.Context, id string, expectedVersion int64) error
}

type userResolver interface {
	LookupUsers(ctx context.Context, ids []string) (map[string]*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenGenerator interface {
	NewShareToken() (string, error)
}

type mediaRemover interface {
	Purge(ctx context.Context, articleID string) error
}

// Config holds the article rules that vary per deployment.
type Config struct {
	Edit            policy.EditPolicy
	DefaultPageSize int
	MaxPageSize     int
}

// Service implements the article lifecycle: authoring, review transitions,
// sharing, and authorship changes. Every write is a compare-and-swap on the
// version of the snapshot the decision was made on.
type Service struct {
	articles articleRepo
	users    userResolver
	audit    auditLogger
	tx       txManager
	tokens   tokenGenerator
	media    mediaRemover
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Article service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	users userResolver,
	audit auditLogger,
	tx txManager,
	tokens tokenGenerator,
	media mediaRemover,
	cfg Config,
) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	return &Service{
		articles: articles,
		users:    users,
		audit:    audit,
		tx:       tx,
		tokens:   tokens,
		media:    media,
		cfg:      cfg,
		log:      log.With("service", "article"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// mutation is a planning step run against a fresh snapshot inside the
// transaction. ctx carries the transaction.
type mutation func(ctx context.Context, a domain.Article) (policy.Plan, error)

// mutate loads the article, hides it from actors who cannot read it, plans
// the change and commits the patch with the snapshot version. An unchanged
// plan returns the snapshot without writing.
func (s *Service) mutate(ctx context.Context, articleID string, action domain.AuditAction, plan mutation) (domain.Article, policy.Plan, error) {
	a := actor.FromCtx(ctx)
	token := ctxutil.ShareTokenFromCtx(ctx)

	var (
		result domain.Article
		done   policy.Plan
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.articles.GetByID(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if !policy.CanRead(a, current, token) {
			return fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
		}

		p, err := plan(txCtx, current)
		if err != nil {
			return err
		}
		done = p
		if !p.Changed {
			result = current
			return nil
		}

		result, err = s.articles.Update(txCtx, articleID, p.Patch, current.Version)
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     a.ID,
			EntityType: domain.EntityTypeArticle,
			EntityID:   articleID,
			Action:     action,
			Changes:    planChanges(p),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Article{}, policy.Plan{}, err
	}

	return result, done, nil
}

// newToken draws a fresh share token.
func (s *Service) newToken() (string, error) {
	tok, err := s.tokens.NewShareToken()
	if err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return tok, nil
}

// planChanges renders a plan for the audit log. The share token itself is
// never recorded.
func planChanges(p policy.Plan) map[string]any {
	changes := map[string]any{}
	if p.From != p.To {
		changes["state"] = map[string]any{"old": p.From.String(), "new": p.To.String()}
	}
	fields := patchFields(p.Patch)
	if len(fields) > 0 {
		changes["fields"] = fields
	}
	if len(p.Effects) > 0 {
		effects := make([]string, len(p.Effects))
		for i, e := range p.Effects {
			effects[i] = string(e)
		}
		changes["effects"] = effects
	}
	return changes
}

func patchFields(p domain.ArticlePatch) []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(p.Title != nil, "title")
	add(p.Body != nil, "body")
	add(p.Location != nil, "location")
	add(p.CategoryIDs != nil, "category_ids")
	add(p.Tags != nil, "tags")
	add(p.OwnerID != nil, "owner_id")
	add(p.CoWriterIDs != nil, "co_writer_ids")
	add(p.Published != nil, "published")
	add(p.UnderReview != nil, "under_review")
	add(p.ReadyToPublish != nil, "ready_to_publish")
	add(p.Shared != nil, "shared")
	add(p.SharedToTeam != nil, "shared_to_team")
	add(p.SharedID != nil, "shared_id")
	add(p.CreatedAt != nil, "created_at")
	return fields
}

func effectAttr(p policy.Plan) slog.Attr {
	effects := make([]string, len(p.Effects))
	for i, e := range p.Effects {
		effects[i] = string(e)
	}
	return slog.String("effects", strings.Join(effects, ","))
}
