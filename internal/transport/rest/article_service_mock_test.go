package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
	"github.com/heartmarshall/newsroom-backend/internal/service/article"
)

var _ articleService = &articleServiceMock{}

type articleServiceMock struct {
	ApplyTransitionFunc   func(ctx context.Context, articleID string, to domain.ArticleState) (article.TransitionResult, error)
	CreateFunc            func(ctx context.Context, input article.CreateInput) (domain.Article, error)
	DeleteFunc            func(ctx context.Context, articleID string) error
	EditFunc              func(ctx context.Context, input article.EditInput) (domain.Article, error)
	GetFunc               func(ctx context.Context, articleID string) (domain.Article, error)
	ListFunc              func(ctx context.Context, input article.ListInput) ([]domain.Article, error)
	RotateShareTokenFunc  func(ctx context.Context, articleID string) (domain.Article, error)
	SetCoWritersFunc      func(ctx context.Context, articleID string, ids []string) (domain.Article, error)
	SetSharingFunc        func(ctx context.Context, articleID string, shared bool, toTeam bool) (domain.Article, error)
	TransferOwnershipFunc func(ctx context.Context, articleID string, newOwnerID string) (domain.Article, error)

	calls struct {
		ApplyTransition []struct {
			Ctx       context.Context
			ArticleID string
			To        domain.ArticleState
		}
		Create []struct {
			Ctx   context.Context
			Input article.CreateInput
		}
		Delete []struct {
			Ctx       context.Context
			ArticleID string
		}
		Edit []struct {
			Ctx   context.Context
			Input article.EditInput
		}
		Get []struct {
			Ctx       context.Context
			ArticleID string
		}
		List []struct {
			Ctx   context.Context
			Input article.ListInput
		}
		RotateShareToken []struct {
			Ctx       context.Context
			ArticleID string
		}
		SetCoWriters []struct {
			Ctx       context.Context
			ArticleID string
			Ids       []string
		}
		SetSharing []struct {
			Ctx       context.Context
			ArticleID string
			Shared    bool
			ToTeam    bool
		}
		TransferOwnership []struct {
			Ctx        context.Context
			ArticleID  string
			NewOwnerID string
		}
	}
	lockApplyTransition   sync.RWMutex
	lockCreate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockEdit              sync.RWMutex
	lockGet               sync.RWMutex
	lockList              sync.RWMutex
	lockRotateShareToken  sync.RWMutex
	lockSetCoWriters      sync.RWMutex
	lockSetSharing        sync.RWMutex
	lockTransferOwnership sync.RWMutex
}

func (mock *articleServiceMock) ApplyTransition(ctx context.Context, articleID string, to domain.ArticleState) (article.TransitionResult, error) {
	if mock.ApplyTransitionFunc == nil {
		panic("articleServiceMock.ApplyTransitionFunc: method is nil but articleService.ApplyTransition was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		To        domain.ArticleState
	}{Ctx: ctx, ArticleID: articleID, To: to}
	mock.lockApplyTransition.Lock()
	mock.calls.ApplyTransition = append(mock.calls.ApplyTransition, callInfo)
	mock.lockApplyTransition.Unlock()
	return mock.ApplyTransitionFunc(ctx, articleID, to)
}

func (mock *articleServiceMock) ApplyTransitionCalls() []struct {
	Ctx       context.Context
	ArticleID string
	To        domain.ArticleState
} {
	mock.lockApplyTransition.RLock()
	calls := mock.calls.ApplyTransition
	mock.lockApplyTransition.RUnlock()
	return calls
}

func (mock *articleServiceMock) Create(ctx context.Context, input article.CreateInput) (domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleServiceMock.CreateFunc: method is nil but articleService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *articleServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input article.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Delete(ctx context.Context, articleID string) error {
	if mock.DeleteFunc == nil {
		panic("articleServiceMock.DeleteFunc: method is nil but articleService.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, articleID)
}

func (mock *articleServiceMock) DeleteCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *articleServiceMock) Edit(ctx context.Context, input article.EditInput) (domain.Article, error) {
	if mock.EditFunc == nil {
		panic("articleServiceMock.EditFunc: method is nil but articleService.Edit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.EditInput
	}{Ctx: ctx, Input: input}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, input)
}

func (mock *articleServiceMock) EditCalls() []struct {
	Ctx   context.Context
	Input article.EditInput
} {
	mock.lockEdit.RLock()
	calls := mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *articleServiceMock) Get(ctx context.Context, articleID string) (domain.Article, error) {
	if mock.GetFunc == nil {
		panic("articleServiceMock.GetFunc: method is nil but articleService.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, articleID)
}

func (mock *articleServiceMock) GetCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *articleServiceMock) List(ctx context.Context, input article.ListInput) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleServiceMock.ListFunc: method is nil but articleService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *articleServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input article.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleServiceMock) RotateShareToken(ctx context.Context, articleID string) (domain.Article, error) {
	if mock.RotateShareTokenFunc == nil {
		panic("articleServiceMock.RotateShareTokenFunc: method is nil but articleService.RotateShareToken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockRotateShareToken.Lock()
	mock.calls.RotateShareToken = append(mock.calls.RotateShareToken, callInfo)
	mock.lockRotateShareToken.Unlock()
	return mock.RotateShareTokenFunc(ctx, articleID)
}

func (mock *articleServiceMock) RotateShareTokenCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockRotateShareToken.RLock()
	calls := mock.calls.RotateShareToken
	mock.lockRotateShareToken.RUnlock()
	return calls
}

func (mock *articleServiceMock) SetCoWriters(ctx context.Context, articleID string, ids []string) (domain.Article, error) {
	if mock.SetCoWritersFunc == nil {
		panic("articleServiceMock.SetCoWritersFunc: method is nil but articleService.SetCoWriters was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		Ids       []string
	}{Ctx: ctx, ArticleID: articleID, Ids: ids}
	mock.lockSetCoWriters.Lock()
	mock.calls.SetCoWriters = append(mock.calls.SetCoWriters, callInfo)
	mock.lockSetCoWriters.Unlock()
	return mock.SetCoWritersFunc(ctx, articleID, ids)
}

func (mock *articleServiceMock) SetCoWritersCalls() []struct {
	Ctx       context.Context
	ArticleID string
	Ids       []string
} {
	mock.lockSetCoWriters.RLock()
	calls := mock.calls.SetCoWriters
	mock.lockSetCoWriters.RUnlock()
	return calls
}

func (mock *articleServiceMock) SetSharing(ctx context.Context, articleID string, shared bool, toTeam bool) (domain.Article, error) {
	if mock.SetSharingFunc == nil {
		panic("articleServiceMock.SetSharingFunc: method is nil but articleService.SetSharing was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		Shared    bool
		ToTeam    bool
	}{Ctx: ctx, ArticleID: articleID, Shared: shared, ToTeam: toTeam}
	mock.lockSetSharing.Lock()
	mock.calls.SetSharing = append(mock.calls.SetSharing, callInfo)
	mock.lockSetSharing.Unlock()
	return mock.SetSharingFunc(ctx, articleID, shared, toTeam)
}

func (mock *articleServiceMock) SetSharingCalls() []struct {
	Ctx       context.Context
	ArticleID string
	Shared    bool
	ToTeam    bool
} {
	mock.lockSetSharing.RLock()
	calls := mock.calls.SetSharing
	mock.lockSetSharing.RUnlock()
	return calls
}

func (mock *articleServiceMock) TransferOwnership(ctx context.Context, articleID string, newOwnerID string) (domain.Article, error) {
	if mock.TransferOwnershipFunc == nil {
		panic("articleServiceMock.TransferOwnershipFunc: method is nil but articleService.TransferOwnership was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ArticleID  string
		NewOwnerID string
	}{Ctx: ctx, ArticleID: articleID, NewOwnerID: newOwnerID}
	mock.lockTransferOwnership.Lock()
	mock.calls.TransferOwnership = append(mock.calls.TransferOwnership, callInfo)
	mock.lockTransferOwnership.Unlock()
	return mock.TransferOwnershipFunc(ctx, articleID, newOwnerID)
}

func (mock *articleServiceMock) TransferOwnershipCalls() []struct {
	Ctx        context.Context
	ArticleID  string
	NewOwnerID string
} {
	mock.lockTransferOwnership.RLock()
	calls := mock.calls.TransferOwnership
	mock.lockTransferOwnership.RUnlock()
	return calls
}
