package article

import (
	"sync"
)

var _ tokenGenerator = &tokenGeneratorMock{}

type tokenGeneratorMock struct {
	NewShareTokenFunc func() (string, error)

	calls struct {
		NewShareToken []struct{}
	}
	lockNewShareToken sync.RWMutex
}

func (mock *tokenGeneratorMock) NewShareToken() (string, error) {
	if mock.NewShareTokenFunc == nil {
		panic("tokenGeneratorMock.NewShareTokenFunc: method is nil but tokenGenerator.NewShareToken was just called")
	}
	mock.lockNewShareToken.Lock()
	mock.calls.NewShareToken = append(mock.calls.NewShareToken, struct{}{})
	mock.lockNewShareToken.Unlock()
	return mock.NewShareTokenFunc()
}

func (mock *tokenGeneratorMock) NewShareTokenCalls() []struct{} {
	mock.lockNewShareToken.RLock()
	calls := mock.calls.NewShareToken
	mock.lockNewShareToken.RUnlock()
	return calls
}
