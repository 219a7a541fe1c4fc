package category

import (
	"context"
	"sync"

	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, ev audit.Event)

	calls struct {
		Record []struct {
			Ctx context.Context
			Ev  audit.Event
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, ev audit.Event) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  audit.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, ev)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	Ev  audit.Event
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
