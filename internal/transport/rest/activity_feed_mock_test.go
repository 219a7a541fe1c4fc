package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

var _ activityFeed = &activityFeedMock{}

type activityFeedMock struct {
	RecentFunc func(ctx context.Context, limit int) ([]domain.Activity, error)

	calls struct {
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockRecent sync.RWMutex
}

func (mock *activityFeedMock) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if mock.RecentFunc == nil {
		panic("activityFeedMock.RecentFunc: method is nil but activityFeed.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *activityFeedMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
