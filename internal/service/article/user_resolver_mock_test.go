package article

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ userResolver = &userResolverMock{}

type userResolverMock struct {
	LookupUsersFunc func(ctx context.Context, ids []string) (map[string]*domain.User, error)

	calls struct {
		LookupUsers []struct {
			Ctx context.Context
			Ids []string
		}
	}
	lockLookupUsers sync.RWMutex
}

func (mock *userResolverMock) LookupUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	if mock.LookupUsersFunc == nil {
		panic("userResolverMock.LookupUsersFunc: method is nil but userResolver.LookupUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []string
	}{Ctx: ctx, Ids: ids}
	mock.lockLookupUsers.Lock()
	mock.calls.LookupUsers = append(mock.calls.LookupUsers, callInfo)
	mock.lockLookupUsers.Unlock()
	return mock.LookupUsersFunc(ctx, ids)
}

func (mock *userResolverMock) LookupUsersCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockLookupUsers.RLock()
	calls := mock.calls.LookupUsers
	mock.lockLookupUsers.RUnlock()
	return calls
}
