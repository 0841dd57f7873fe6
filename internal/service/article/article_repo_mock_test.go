package article

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	CreateFunc  func(ctx context.Context, a domain.Article) (domain.Article, error)
	DeleteFunc  func(ctx context.Context, id string, expectedVersion int64) error
	GetByIDFunc func(ctx context.Context, id string) (domain.Article, error)
	ListFunc    func(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error)
	UpdateFunc  func(ctx context.Context, id string, patch domain.ArticlePatch, expectedVersion int64) (domain.Article, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.Article
		}
		Delete []struct {
			Ctx             context.Context
			ID              string
			ExpectedVersion int64
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx context.Context
			F   domain.ArticleFilter
		}
		Update []struct {
			Ctx             context.Context
			ID              string
			Patch           domain.ArticlePatch
			ExpectedVersion int64
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *articleRepoMock) Create(ctx context.Context, a domain.Article) (domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleRepoMock.CreateFunc: method is nil but articleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Article
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *articleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Article
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleRepoMock) Delete(ctx context.Context, id string, expectedVersion int64) error {
	if mock.DeleteFunc == nil {
		panic("articleRepoMock.DeleteFunc: method is nil but articleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              string
		ExpectedVersion int64
	}{Ctx: ctx, ID: id, ExpectedVersion: expectedVersion}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, expectedVersion)
}

func (mock *articleRepoMock) DeleteCalls() []struct {
	Ctx             context.Context
	ID              string
	ExpectedVersion int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *articleRepoMock) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleRepoMock.ListFunc: method is nil but articleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ArticleFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *articleRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ArticleFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleRepoMock) Update(ctx context.Context, id string, patch domain.ArticlePatch, expectedVersion int64) (domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleRepoMock.UpdateFunc: method is nil but articleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              string
		Patch           domain.ArticlePatch
		ExpectedVersion int64
	}{Ctx: ctx, ID: id, Patch: patch, ExpectedVersion: expectedVersion}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch, expectedVersion)
}

func (mock *articleRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	ID              string
	Patch           domain.ArticlePatch
	ExpectedVersion int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
