package recipe

import (
	"context"
	"sync"

	"github.com/heartmarshall/recipebox-backend/internal/service/activity"
)

var _ activityRecorder = &activityRecorderMock{}

type activityRecorderMock struct {
	RecordFunc func(ctx context.Context, ev activity.Event)

	calls struct {
		Record []struct {
			Ctx context.Context
			Ev  activity.Event
		}
	}
	lockRecord sync.RWMutex
}

func (mock *activityRecorderMock) Record(ctx context.Context, ev activity.Event) {
	if mock.RecordFunc == nil {
		panic("activityRecorderMock.RecordFunc: method is nil but activityRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  activity.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, ev)
}

func (mock *activityRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	Ev  activity.Event
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
