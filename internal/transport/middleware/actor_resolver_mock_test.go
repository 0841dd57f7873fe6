package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ actorResolver = &actorResolverMock{}

type actorResolverMock struct {
	ResolveFunc func(ctx context.Context, session *domain.Session) (domain.Actor, error)

	calls struct {
		Resolve []struct {
			Ctx     context.Context
			Session *domain.Session
		}
	}
	lockResolve sync.RWMutex
}

func (mock *actorResolverMock) Resolve(ctx context.Context, session *domain.Session) (domain.Actor, error) {
	if mock.ResolveFunc == nil {
		panic("actorResolverMock.ResolveFunc: method is nil but actorResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session *domain.Session
	}{Ctx: ctx, Session: session}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, session)
}

func (mock *actorResolverMock) ResolveCalls() []struct {
	Ctx     context.Context
	Session *domain.Session
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
