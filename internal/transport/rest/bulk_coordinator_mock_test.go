package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

var _ bulkCoordinator = &bulkCoordinatorMock{}

type bulkCoordinatorMock struct {
	ApplyFunc func(ctx context.Context, kind domain.TargetKind, op domain.Operation, ids []uuid.UUID) (*domain.BulkResult, error)

	calls struct {
		Apply []struct {
			Ctx  context.Context
			Kind domain.TargetKind
			Op   domain.Operation
			IDs  []uuid.UUID
		}
	}
	lockApply sync.RWMutex
}

func (mock *bulkCoordinatorMock) Apply(ctx context.Context, kind domain.TargetKind, op domain.Operation, ids []uuid.UUID) (*domain.BulkResult, error) {
	if mock.ApplyFunc == nil {
		panic("bulkCoordinatorMock.ApplyFunc: method is nil but bulkCoordinator.Apply was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.TargetKind
		Op   domain.Operation
		IDs  []uuid.UUID
	}{Ctx: ctx, Kind: kind, Op: op, IDs: ids}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, kind, op, ids)
}

func (mock *bulkCoordinatorMock) ApplyCalls() []struct {
	Ctx  context.Context
	Kind domain.TargetKind
	Op   domain.Operation
	IDs  []uuid.UUID
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}
