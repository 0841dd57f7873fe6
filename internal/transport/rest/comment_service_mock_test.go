package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	AddCommentFunc       func(ctx context.Context, articleID string, body string) (domain.Comment, error)
	DeleteCommentFunc    func(ctx context.Context, commentID string) error
	ListCommentsFunc     func(ctx context.Context, articleID string) ([]domain.Comment, error)
	SetCommentReviewFunc func(ctx context.Context, commentID string, underReview bool) (domain.Comment, error)

	calls struct {
		AddComment []struct {
			Ctx       context.Context
			ArticleID string
			Body      string
		}
		DeleteComment []struct {
			Ctx       context.Context
			CommentID string
		}
		ListComments []struct {
			Ctx       context.Context
			ArticleID string
		}
		SetCommentReview []struct {
			Ctx         context.Context
			CommentID   string
			UnderReview bool
		}
	}
	lockAddComment       sync.RWMutex
	lockDeleteComment    sync.RWMutex
	lockListComments     sync.RWMutex
	lockSetCommentReview sync.RWMutex
}

func (mock *commentServiceMock) AddComment(ctx context.Context, articleID string, body string) (domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("commentServiceMock.AddCommentFunc: method is nil but commentService.AddComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
		Body      string
	}{Ctx: ctx, ArticleID: articleID, Body: body}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, articleID, body)
}

func (mock *commentServiceMock) AddCommentCalls() []struct {
	Ctx       context.Context
	ArticleID string
	Body      string
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) DeleteComment(ctx context.Context, commentID string) error {
	if mock.DeleteCommentFunc == nil {
		panic("commentServiceMock.DeleteCommentFunc: method is nil but commentService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID string
	}{Ctx: ctx, CommentID: commentID}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, commentID)
}

func (mock *commentServiceMock) DeleteCommentCalls() []struct {
	Ctx       context.Context
	CommentID string
} {
	mock.lockDeleteComment.RLock()
	calls := mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if mock.ListCommentsFunc == nil {
		panic("commentServiceMock.ListCommentsFunc: method is nil but commentService.ListComments was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID string
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, articleID)
}

func (mock *commentServiceMock) ListCommentsCalls() []struct {
	Ctx       context.Context
	ArticleID string
} {
	mock.lockListComments.RLock()
	calls := mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

func (mock *commentServiceMock) SetCommentReview(ctx context.Context, commentID string, underReview bool) (domain.Comment, error) {
	if mock.SetCommentReviewFunc == nil {
		panic("commentServiceMock.SetCommentReviewFunc: method is nil but commentService.SetCommentReview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CommentID   string
		UnderReview bool
	}{Ctx: ctx, CommentID: commentID, UnderReview: underReview}
	mock.lockSetCommentReview.Lock()
	mock.calls.SetCommentReview = append(mock.calls.SetCommentReview, callInfo)
	mock.lockSetCommentReview.Unlock()
	return mock.SetCommentReviewFunc(ctx, commentID, underReview)
}

func (mock *commentServiceMock) SetCommentReviewCalls() []struct {
	Ctx         context.Context
	CommentID   string
	UnderReview bool
} {
	mock.lockSetCommentReview.RLock()
	calls := mock.calls.SetCommentReview
	mock.lockSetCommentReview.RUnlock()
	return calls
}
