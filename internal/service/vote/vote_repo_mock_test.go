package vote

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	ChangeKindFunc func(ctx context.Context, articleID string, voterID string, from domain.VoteKind, to domain.VoteKind) error
	CountsFunc     func(ctx context.Context, articleID string) (domain.VoteCounts, error)
	DeleteFunc     func(ctx context.Context, articleID string, voterID string, kind domain.VoteKind) error
	GetFunc        func(ctx context.Context, articleID string, voterID string) (*domain.Vote, error)
	InsertFunc     func(ctx context.Context, v domain.Vote) error

	calls struct {
		ChangeKind []struct {
			Ctx       context.Context
			ArticleID string
			VoterID   string
			From      domain.VoteKind
			To        domain.VoteKind
		}
		Counts []struct {
			Ctx       context.Context
			ArticleID string
		}
		Delete []struct {
			Ctx       context.Context
			ArticleID string
			VoterID   string
			Kind      domain.VoteKind
		}
		Get []struct {
			Ctx       context.Context
			ArticleID string
			VoterID   string
		}
		Insert []struct {
			Ctx context.Context
			V   domain.Vote
		}
	}
	lockChangeKind sync.RWMutex
	lockCounts     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGet        sync.RWMutex
	lockInsert     sync.RWMutex
}

func (mock *voteRepoMock) ChangeKind(ctx context.Context, articleID string, voterID string, from domain.VoteKind, to domain.VoteKind) error {
	if mock.ChangeKindFunc == nil {
		panic("voteRepoMock.ChangeKindFunc: method is nil but voteRepo.ChangeKind was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		VoterID   string
		From      domain.VoteKind
		To        domain.VoteKind
	}{Ctx: ctx, ArticleID: articleID, VoterID: voterID, From: from, To: to}
	mock.lockChangeKind.Lock()
	mock.calls.ChangeKind = append(mock.calls.ChangeKind, callInfo)
	mock.lockChangeKind.Unlock()
	return mock.ChangeKindFunc(ctx, articleID, voterID, from, to)
}

func (mock *voteRepoMock) ChangeKindCalls() []struct {
	Ctx       context.Context
	ArticleID string
	VoterID   string
	From      domain.VoteKind
	To        domain.VoteKind
} {
	mock.lockChangeKind.RLock()
	calls := mock.calls.ChangeKind
	mock.lockChangeKind.RUnlock()
	return calls
}

func (mock *voteRepoMock) Counts(ctx context.Context, articleID string) (domain.VoteCounts, error) {
	if mock.CountsFunc == nil {
		panic("voteRepoMock.CountsFunc: method is nil but voteRepo.Counts was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx, articleID)
}

func (mock *voteRepoMock) CountsCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockCounts.RLock()
	calls := mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}

func (mock *voteRepoMock) Delete(ctx context.Context, articleID string, voterID string, kind domain.VoteKind) error {
	if mock.DeleteFunc == nil {
		panic("voteRepoMock.DeleteFunc: method is nil but voteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		VoterID   string
		Kind      domain.VoteKind
	}{Ctx: ctx, ArticleID: articleID, VoterID: voterID, Kind: kind}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, articleID, voterID, kind)
}

func (mock *voteRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	ArticleID string
	VoterID   string
	Kind      domain.VoteKind
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *voteRepoMock) Get(ctx context.Context, articleID string, voterID string) (*domain.Vote, error) {
	if mock.GetFunc == nil {
		panic("voteRepoMock.GetFunc: method is nil but voteRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		VoterID   string
	}{Ctx: ctx, ArticleID: articleID, VoterID: voterID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, articleID, voterID)
}

func (mock *voteRepoMock) GetCalls() []struct {
	Ctx       context.Context
	ArticleID string
	VoterID   string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *voteRepoMock) Insert(ctx context.Context, v domain.Vote) error {
	if mock.InsertFunc == nil {
		panic("voteRepoMock.InsertFunc: method is nil but voteRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   domain.Vote
	}{Ctx: ctx, V: v}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, v)
}

func (mock *voteRepoMock) InsertCalls() []struct {
	Ctx context.Context
	V   domain.Vote
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
