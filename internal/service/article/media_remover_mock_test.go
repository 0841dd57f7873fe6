package article

import (
	"context"
	"sync"
)

var _ mediaRemover = &mediaRemoverMock{}

type mediaRemoverMock struct {
	PurgeFunc func(ctx context.Context, articleID string) error

	calls struct {
		Purge []struct {
			Ctx       context.Context
			ArticleID string
		}
	}
	lockPurge sync.RWMutex
}

func (mock *mediaRemoverMock) Purge(ctx context.Context, articleID string) error {
	if mock.PurgeFunc == nil {
		panic("mediaRemoverMock.PurgeFunc: method is nil but mediaRemover.Purge was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockPurge.Lock()
	mock.calls.Purge = append(mock.calls.Purge, callInfo)
	mock.lockPurge.Unlock()
	return mock.PurgeFunc(ctx, articleID)
}

func (mock *mediaRemoverMock) PurgeCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockPurge.RLock()
	calls := mock.calls.Purge
	mock.lockPurge.RUnlock()
	return calls
}
