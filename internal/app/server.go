package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/newsroom-backend/internal/adapter/media"
	"github.com/heartmarshall/newsroom-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/article"
	auditrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/audit"
	commentrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/comment"
	userrepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/user"
	voterepo "github.com/heartmarshall/newsroom-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/newsroom-backend/internal/auth"
	"github.com/heartmarshall/newsroom-backend/internal/config"
	"github.com/heartmarshall/newsroom-backend/internal/policy"
	"github.com/heartmarshall/newsroom-backend/internal/service/actor"
	"github.com/heartmarshall/newsroom-backend/internal/service/article"
	"github.com/heartmarshall/newsroom-backend/internal/service/comment"
	"github.com/heartmarshall/newsroom-backend/internal/service/user"
	"github.com/heartmarshall/newsroom-backend/internal/service/userdir"
	"github.com/heartmarshall/newsroom-backend/internal/service/vote"
	"github.com/heartmarshall/newsroom-backend/internal/transport/middleware"
	"github.com/heartmarshall/newsroom-backend/internal/transport/rest"
)

// Database is what the HTTP stack needs from a connection pool.
// *pgxpool.Pool and pgxmock pools satisfy it.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// NewHandler wires repositories, services and transport into one
// http.Handler. The returned stop func releases background workers.
func NewHandler(cfg *config.Config, db Database, logger *slog.Logger) (http.Handler, func()) {
	// Repositories
	articles := articlerepo.New(db)
	votes := voterepo.New(db)
	users := userrepo.New(db)
	comments := commentrepo.New(db)
	audit := auditrepo.New(db)
	tx := postgres.NewTxManager(db)

	dirRepos := &userdir.Repos{Users: users, Votes: votes}
	directory := userdir.NewDirectory(dirRepos)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	mediaStore := media.NewStore(cfg.Newsroom.MediaDir)

	// Services
	actorSvc := actor.NewService(logger, users)
	articleSvc := article.NewService(logger, articles, directory, audit, tx,
		auth.NewShareTokens(cfg.Newsroom.ShareTokenBytes), mediaStore,
		article.Config{
			Edit:            policy.EditPolicy{ReviewOnDraftEdit: cfg.Newsroom.ReviewOnDraftEdit},
			DefaultPageSize: cfg.Newsroom.DefaultPageSize,
			MaxPageSize:     cfg.Newsroom.MaxPageSize,
		},
	)
	voteSvc := vote.NewService(logger, articles, votes, audit, tx)
	commentSvc := comment.NewService(logger, articles, comments, audit, tx,
		policy.CommentPolicy{PreModeration: cfg.Newsroom.CommentPreModeration},
	)
	userSvc := user.NewService(logger, users, audit, tx)

	// Transport
	var limits rest.Limits
	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limits.Writes = limiter.Limit("writes", cfg.RateLimit.WritesPerMinute)
		limits.Votes = limiter.Limit("votes", cfg.RateLimit.VotesPerMinute)
		stop = limiter.Stop
	}

	mux := rest.NewRouter(rest.Handlers{
		Articles: rest.NewArticleHandler(articleSvc, voteSvc, directory, logger),
		Comments: rest.NewCommentHandler(commentSvc, logger),
		Admin:    rest.NewAdminHandler(userSvc, logger),
		Health:   rest.NewHealthHandler(db, mediaStore, Version),
	}, limits)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt, actorSvc, logger),
		middleware.ShareToken,
		middleware.Logger(logger),
		userdir.Middleware(dirRepos),
	)

	return chain(mux), stop
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
