package vote

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (domain.Article, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *articleRepoMock) GetByID(ctx context.Context, id string) (domain.Article, error) {
	if mock.GetByIDFunc == nil {
		panic("articleRepoMock.GetByIDFunc: method is nil but articleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *articleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
