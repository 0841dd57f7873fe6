package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id string) (*domain.User, error)
	UpdateRolesFunc func(ctx context.Context, id string, roles domain.RoleSet, departments domain.LocationSet) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		UpdateRoles []struct {
			Ctx         context.Context
			ID          string
			Roles       domain.RoleSet
			Departments domain.LocationSet
		}
	}
	lockGetByID     sync.RWMutex
	lockUpdateRoles sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRoles(ctx context.Context, id string, roles domain.RoleSet, departments domain.LocationSet) (*domain.User, error) {
	if mock.UpdateRolesFunc == nil {
		panic("userRepoMock.UpdateRolesFunc: method is nil but userRepo.UpdateRoles was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          string
		Roles       domain.RoleSet
		Departments domain.LocationSet
	}{Ctx: ctx, ID: id, Roles: roles, Departments: departments}
	mock.lockUpdateRoles.Lock()
	mock.calls.UpdateRoles = append(mock.calls.UpdateRoles, callInfo)
	mock.lockUpdateRoles.Unlock()
	return mock.UpdateRolesFunc(ctx, id, roles, departments)
}

func (mock *userRepoMock) UpdateRolesCalls() []struct {
	Ctx         context.Context
	ID          string
	Roles       domain.RoleSet
	Departments domain.LocationSet
} {
	mock.lockUpdateRoles.RLock()
	calls := mock.calls.UpdateRoles
	mock.lockUpdateRoles.RUnlock()
	return calls
}
