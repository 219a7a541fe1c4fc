package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	EmailTakenFunc        func(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	ListFunc              func(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error)
	DependentsFunc        func(ctx context.Context, id uuid.UUID) (domain.Dependents, error)
	UpdateProfileFunc     func(ctx context.Context, id uuid.UUID, firstName string, lastName string, email string) (*domain.User, error)
	UpdatePasswordFunc    func(ctx context.Context, id uuid.UUID, hash string) error
	UpdatePreferencesFunc func(ctx context.Context, id uuid.UUID, p domain.UserPreferences) (*domain.User, error)
	SetActiveFunc         func(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	UpdateRoleFunc        func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	SoftDeleteFunc        func(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) (*domain.User, error)
	RestoreFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	HardDeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		EmailTaken []struct {
			Ctx       context.Context
			Email     string
			ExcludeID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.UserFilter
		}
		Dependents []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProfile []struct {
			Ctx       context.Context
			ID        uuid.UUID
			FirstName string
			LastName  string
			Email     string
		}
		UpdatePassword []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Hash string
		}
		UpdatePreferences []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.UserPreferences
		}
		SetActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
		UpdateRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.UserRole
		}
		SoftDelete []struct {
			Ctx       context.Context
			ID        uuid.UUID
			DeletedBy uuid.UUID
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
	lockGetByID           sync.RWMutex
	lockEmailTaken        sync.RWMutex
	lockList              sync.RWMutex
	lockDependents        sync.RWMutex
	lockUpdateProfile     sync.RWMutex
	lockUpdatePassword    sync.RWMutex
	lockUpdatePreferences sync.RWMutex
	lockSetActive         sync.RWMutex
	lockUpdateRole        sync.RWMutex
	lockSoftDelete        sync.RWMutex
	lockRestore           sync.RWMutex
	lockHardDelete        sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	if mock.EmailTakenFunc == nil {
		panic("userRepoMock.EmailTakenFunc: method is nil but userRepo.EmailTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Email     string
		ExcludeID uuid.UUID
	}{Ctx: ctx, Email: email, ExcludeID: excludeID}
	mock.lockEmailTaken.Lock()
	mock.calls.EmailTaken = append(mock.calls.EmailTaken, callInfo)
	mock.lockEmailTaken.Unlock()
	return mock.EmailTakenFunc(ctx, email, excludeID)
}

func (mock *userRepoMock) EmailTakenCalls() []struct {
	Ctx       context.Context
	Email     string
	ExcludeID uuid.UUID
} {
	mock.lockEmailTaken.RLock()
	calls := mock.calls.EmailTaken
	mock.lockEmailTaken.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.UserFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.UserFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) Dependents(ctx context.Context, id uuid.UUID) (domain.Dependents, error) {
	if mock.DependentsFunc == nil {
		panic("userRepoMock.DependentsFunc: method is nil but userRepo.Dependents was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDependents.Lock()
	mock.calls.Dependents = append(mock.calls.Dependents, callInfo)
	mock.lockDependents.Unlock()
	return mock.DependentsFunc(ctx, id)
}

func (mock *userRepoMock) DependentsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDependents.RLock()
	calls := mock.calls.Dependents
	mock.lockDependents.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, firstName string, lastName string, email string) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		FirstName string
		LastName  string
		Email     string
	}{Ctx: ctx, ID: id, FirstName: firstName, LastName: lastName, Email: email}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, firstName, lastName, email)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Hash string
	}{Ctx: ctx, ID: id, Hash: hash}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Hash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.UserPreferences) (*domain.User, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("userRepoMock.UpdatePreferencesFunc: method is nil but userRepo.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.UserPreferences
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, id, p)
}

func (mock *userRepoMock) UpdatePreferencesCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.UserPreferences
} {
	mock.lockUpdatePreferences.RLock()
	calls := mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}

func (mock *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{Ctx: ctx, ID: id, Active: active}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}{Ctx: ctx, ID: id, Role: role}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.UserRole
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *userRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) (*domain.User, error) {
	if mock.SoftDeleteFunc == nil {
		panic("userRepoMock.SoftDeleteFunc: method is nil but userRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		DeletedBy uuid.UUID
	}{Ctx: ctx, ID: id, DeletedBy: deletedBy}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, deletedBy)
}

func (mock *userRepoMock) SoftDeleteCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	DeletedBy uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) Restore(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.RestoreFunc == nil {
		panic("userRepoMock.RestoreFunc: method is nil but userRepo.Restore was just called")
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

func (mock *userRepoMock) RestoreCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *userRepoMock) HardDelete(ctx context.Context, id uuid.UUID) error {
	if mock.HardDeleteFunc == nil {
		panic("userRepoMock.HardDeleteFunc: method is nil but userRepo.HardDelete was just called")
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

func (mock *userRepoMock) HardDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockHardDelete.RLock()
	calls := mock.calls.HardDelete
	mock.lockHardDelete.RUnlock()
	return calls
}
