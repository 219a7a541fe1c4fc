package recipe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	TitleExistsFunc func(ctx context.Context, ownerID uuid.UUID, title string, excludeID uuid.UUID) (bool, error)
	ListFunc        func(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error)
	CreateFunc      func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	UpdateFunc      func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	SoftDeleteFunc  func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	RestoreFunc     func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	HardDeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		TitleExists []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			Title     string
			ExcludeID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.RecipeFilter
		}
		Create []struct {
			Ctx context.Context
			Rec *domain.Recipe
		}
		Update []struct {
			Ctx context.Context
			Rec *domain.Recipe
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
	lockGetByID     sync.RWMutex
	lockTitleExists sync.RWMutex
	lockList        sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockSoftDelete  sync.RWMutex
	lockRestore     sync.RWMutex
	lockHardDelete  sync.RWMutex
}

func (mock *recipeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if mock.GetByIDFunc == nil {
		panic("recipeRepoMock.GetByIDFunc: method is nil but recipeRepo.GetByID was just called")
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

func (mock *recipeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recipeRepoMock) TitleExists(ctx context.Context, ownerID uuid.UUID, title string, excludeID uuid.UUID) (bool, error) {
	if mock.TitleExistsFunc == nil {
		panic("recipeRepoMock.TitleExistsFunc: method is nil but recipeRepo.TitleExists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		Title     string
		ExcludeID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Title: title, ExcludeID: excludeID}
	mock.lockTitleExists.Lock()
	mock.calls.TitleExists = append(mock.calls.TitleExists, callInfo)
	mock.lockTitleExists.Unlock()
	return mock.TitleExistsFunc(ctx, ownerID, title, excludeID)
}

func (mock *recipeRepoMock) TitleExistsCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	Title     string
	ExcludeID uuid.UUID
} {
	mock.lockTitleExists.RLock()
	calls := mock.calls.TitleExists
	mock.lockTitleExists.RUnlock()
	return calls
}

func (mock *recipeRepoMock) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error) {
	if mock.ListFunc == nil {
		panic("recipeRepoMock.ListFunc: method is nil but recipeRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.RecipeFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *recipeRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RecipeFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	if mock.CreateFunc == nil {
		panic("recipeRepoMock.CreateFunc: method is nil but recipeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recipe
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recipeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recipe
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	if mock.UpdateFunc == nil {
		panic("recipeRepoMock.UpdateFunc: method is nil but recipeRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recipe
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *recipeRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recipe
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recipeRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if mock.SoftDeleteFunc == nil {
		panic("recipeRepoMock.SoftDeleteFunc: method is nil but recipeRepo.SoftDelete was just called")
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

func (mock *recipeRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if mock.RestoreFunc == nil {
		panic("recipeRepoMock.RestoreFunc: method is nil but recipeRepo.Restore was just called")
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

func (mock *recipeRepoMock) RestoreCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *recipeRepoMock) HardDelete(ctx context.Context, id uuid.UUID) error {
	if mock.HardDeleteFunc == nil {
		panic("recipeRepoMock.HardDeleteFunc: method is nil but recipeRepo.HardDelete was just called")
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

func (mock *recipeRepoMock) HardDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockHardDelete.RLock()
	calls := mock.calls.HardDelete
	mock.lockHardDelete.RUnlock()
	return calls
}
