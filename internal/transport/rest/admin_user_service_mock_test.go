package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/user"
)

var _ adminUserService = &adminUserServiceMock{}

type adminUserServiceMock struct {
	ListFunc       func(ctx context.Context, input user.ListInput) (*user.Page, error)
	SetStatusFunc  func(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	SetRoleFunc    func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	RestoreFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	HardDeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Input user.ListInput
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
		SetRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.UserRole
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Restore []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		HardDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockSetStatus  sync.RWMutex
	lockSetRole    sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockRestore    sync.RWMutex
	lockHardDelete sync.RWMutex
}

func (mock *adminUserServiceMock) List(ctx context.Context, input user.ListInput) (*user.Page, error) {
	if mock.ListFunc == nil {
		panic("adminUserServiceMock.ListFunc: method is nil but adminUserService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *adminUserServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input user.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *adminUserServiceMock) SetStatus(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	if mock.SetStatusFunc == nil {
		panic("adminUserServiceMock.SetStatusFunc: method is nil but adminUserService.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{Ctx: ctx, ID: id, Active: active}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, active)
}

func (mock *adminUserServiceMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *adminUserServiceMock) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("adminUserServiceMock.SetRoleFunc: method is nil but adminUserService.SetRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}{Ctx: ctx, ID: id, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, id, role)
}

func (mock *adminUserServiceMock) SetRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.UserRole
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

func (mock *adminUserServiceMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.SoftDeleteFunc == nil {
		panic("adminUserServiceMock.SoftDeleteFunc: method is nil but adminUserService.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *adminUserServiceMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *adminUserServiceMock) Restore(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.RestoreFunc == nil {
		panic("adminUserServiceMock.RestoreFunc: method is nil but adminUserService.Restore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, id)
}

func (mock *adminUserServiceMock) RestoreCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *adminUserServiceMock) HardDelete(ctx context.Context, id uuid.UUID) error {
	if mock.HardDeleteFunc == nil {
		panic("adminUserServiceMock.HardDeleteFunc: method is nil but adminUserService.HardDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockHardDelete.Lock()
	mock.calls.HardDelete = append(mock.calls.HardDelete, callInfo)
	mock.lockHardDelete.Unlock()
	return mock.HardDeleteFunc(ctx, id)
}

func (mock *adminUserServiceMock) HardDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockHardDelete.RLock()
	calls := mock.calls.HardDelete
	mock.lockHardDelete.RUnlock()
	return calls
}
