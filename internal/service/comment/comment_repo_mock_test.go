package comment

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc          func(ctx context.Context, c domain.Comment) (domain.Comment, error)
	DeleteFunc          func(ctx context.Context, id string) error
	ExistsDuplicateFunc func(ctx context.Context, articleID string, authorID string, body string) (bool, error)
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Comment, error)
	ListByArticleFunc   func(ctx context.Context, articleID string) ([]domain.Comment, error)
	SetReviewFunc       func(ctx context.Context, id string, underReview bool) (domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Comment
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		ExistsDuplicate []struct {
			Ctx       context.Context
			ArticleID string
			AuthorID  string
			Body      string
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		ListByArticle []struct {
			Ctx       context.Context
			ArticleID string
		}
		SetReview []struct {
			Ctx         context.Context
			ID          string
			UnderReview bool
		}
	}
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockExistsDuplicate sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByArticle   sync.RWMutex
	lockSetReview       sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Comment
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *commentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *commentRepoMock) ExistsDuplicate(ctx context.Context, articleID string, authorID string, body string) (bool, error) {
	if mock.ExistsDuplicateFunc == nil {
		panic("commentRepoMock.ExistsDuplicateFunc: method is nil but commentRepo.ExistsDuplicate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		AuthorID  string
		Body      string
	}{Ctx: ctx, ArticleID: articleID, AuthorID: authorID, Body: body}
	mock.lockExistsDuplicate.Lock()
	mock.calls.ExistsDuplicate = append(mock.calls.ExistsDuplicate, callInfo)
	mock.lockExistsDuplicate.Unlock()
	return mock.ExistsDuplicateFunc(ctx, articleID, authorID, body)
}

func (mock *commentRepoMock) ExistsDuplicateCalls() []struct {
	Ctx       context.Context
	ArticleID string
	AuthorID  string
	Body      string
} {
	mock.lockExistsDuplicate.RLock()
	calls := mock.calls.ExistsDuplicate
	mock.lockExistsDuplicate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
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

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if mock.ListByArticleFunc == nil {
		panic("commentRepoMock.ListByArticleFunc: method is nil but commentRepo.ListByArticle was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockListByArticle.Lock()
	mock.calls.ListByArticle = append(mock.calls.ListByArticle, callInfo)
	mock.lockListByArticle.Unlock()
	return mock.ListByArticleFunc(ctx, articleID)
}

func (mock *commentRepoMock) ListByArticleCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockListByArticle.RLock()
	calls := mock.calls.ListByArticle
	mock.lockListByArticle.RUnlock()
	return calls
}

func (mock *commentRepoMock) SetReview(ctx context.Context, id string, underReview bool) (domain.Comment, error) {
	if mock.SetReviewFunc == nil {
		panic("commentRepoMock.SetReviewFunc: method is nil but commentRepo.SetReview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          string
		UnderReview bool
	}{Ctx: ctx, ID: id, UnderReview: underReview}
	mock.lockSetReview.Lock()
	mock.calls.SetReview = append(mock.calls.SetReview, callInfo)
	mock.lockSetReview.Unlock()
	return mock.SetReviewFunc(ctx, id, underReview)
}

func (mock *commentRepoMock) SetReviewCalls() []struct {
	Ctx         context.Context
	ID          string
	UnderReview bool
} {
	mock.lockSetReview.RLock()
	calls := mock.calls.SetReview
	mock.lockSetReview.RUnlock()
	return calls
}
