package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/vote"
)

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	ApplyVoteFunc func(ctx context.Context, articleID string, kind domain.VoteKind) (vote.Result, error)
	SummaryFunc   func(ctx context.Context, articleID string) (vote.Result, error)

	calls struct {
		ApplyVote []struct {
			Ctx       context.Context
			ArticleID string
			Kind      domain.VoteKind
		}
		Summary []struct {
			Ctx       context.Context
			ArticleID string
		}
	}
	lockApplyVote sync.RWMutex
	lockSummary   sync.RWMutex
}

func (mock *voteServiceMock) ApplyVote(ctx context.Context, articleID string, kind domain.VoteKind) (vote.Result, error) {
	if mock.ApplyVoteFunc == nil {
		panic("voteServiceMock.ApplyVoteFunc: method is nil but voteService.ApplyVote was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		Kind      domain.VoteKind
	}{Ctx: ctx, ArticleID: articleID, Kind: kind}
	mock.lockApplyVote.Lock()
	mock.calls.ApplyVote = append(mock.calls.ApplyVote, callInfo)
	mock.lockApplyVote.Unlock()
	return mock.ApplyVoteFunc(ctx, articleID, kind)
}

func (mock *voteServiceMock) ApplyVoteCalls() []struct {
	Ctx       context.Context
	ArticleID string
	Kind      domain.VoteKind
} {
	mock.lockApplyVote.RLock()
	calls := mock.calls.ApplyVote
	mock.lockApplyVote.RUnlock()
	return calls
}

func (mock *voteServiceMock) Summary(ctx context.Context, articleID string) (vote.Result, error) {
	if mock.SummaryFunc == nil {
		panic("voteServiceMock.SummaryFunc: method is nil but voteService.Summary was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, articleID)
}

func (mock *voteServiceMock) SummaryCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
