package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/analytics"
)

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	OverviewFunc           func(ctx context.Context) (*domain.Overview, error)
	UserTrendsFunc         func(ctx context.Context, days int) (*analytics.Trend, error)
	RecipeTrendsFunc       func(ctx context.Context, days int) (*analytics.Trend, error)
	CategoryUsageFunc      func(ctx context.Context, limit int) ([]domain.LabelCount, error)
	TagInsightsFunc        func(ctx context.Context, limit int) ([]domain.LabelCount, error)
	RatingDistributionFunc func(ctx context.Context) ([]domain.RatingBucket, error)
	RoleBreakdownFunc      func(ctx context.Context) ([]domain.LabelCount, error)

	calls struct {
		Overview []struct {
			Ctx context.Context
		}
		UserTrends []struct {
			Ctx  context.Context
			Days int
		}
		RecipeTrends []struct {
			Ctx  context.Context
			Days int
		}
		CategoryUsage []struct {
			Ctx   context.Context
			Limit int
		}
		TagInsights []struct {
			Ctx   context.Context
			Limit int
		}
		RatingDistribution []struct {
			Ctx context.Context
		}
		RoleBreakdown []struct {
			Ctx context.Context
		}
	}
	lockOverview           sync.RWMutex
	lockUserTrends         sync.RWMutex
	lockRecipeTrends       sync.RWMutex
	lockCategoryUsage      sync.RWMutex
	lockTagInsights        sync.RWMutex
	lockRatingDistribution sync.RWMutex
	lockRoleBreakdown      sync.RWMutex
}

func (mock *analyticsServiceMock) Overview(ctx context.Context) (*domain.Overview, error) {
	if mock.OverviewFunc == nil {
		panic("analyticsServiceMock.OverviewFunc: method is nil but analyticsService.Overview was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx)
}

func (mock *analyticsServiceMock) OverviewCalls() []struct {
	Ctx context.Context
} {
	mock.lockOverview.RLock()
	calls := mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) UserTrends(ctx context.Context, days int) (*analytics.Trend, error) {
	if mock.UserTrendsFunc == nil {
		panic("analyticsServiceMock.UserTrendsFunc: method is nil but analyticsService.UserTrends was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockUserTrends.Lock()
	mock.calls.UserTrends = append(mock.calls.UserTrends, callInfo)
	mock.lockUserTrends.Unlock()
	return mock.UserTrendsFunc(ctx, days)
}

func (mock *analyticsServiceMock) UserTrendsCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockUserTrends.RLock()
	calls := mock.calls.UserTrends
	mock.lockUserTrends.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) RecipeTrends(ctx context.Context, days int) (*analytics.Trend, error) {
	if mock.RecipeTrendsFunc == nil {
		panic("analyticsServiceMock.RecipeTrendsFunc: method is nil but analyticsService.RecipeTrends was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockRecipeTrends.Lock()
	mock.calls.RecipeTrends = append(mock.calls.RecipeTrends, callInfo)
	mock.lockRecipeTrends.Unlock()
	return mock.RecipeTrendsFunc(ctx, days)
}

func (mock *analyticsServiceMock) RecipeTrendsCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockRecipeTrends.RLock()
	calls := mock.calls.RecipeTrends
	mock.lockRecipeTrends.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) CategoryUsage(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	if mock.CategoryUsageFunc == nil {
		panic("analyticsServiceMock.CategoryUsageFunc: method is nil but analyticsService.CategoryUsage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockCategoryUsage.Lock()
	mock.calls.CategoryUsage = append(mock.calls.CategoryUsage, callInfo)
	mock.lockCategoryUsage.Unlock()
	return mock.CategoryUsageFunc(ctx, limit)
}

func (mock *analyticsServiceMock) CategoryUsageCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockCategoryUsage.RLock()
	calls := mock.calls.CategoryUsage
	mock.lockCategoryUsage.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) TagInsights(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	if mock.TagInsightsFunc == nil {
		panic("analyticsServiceMock.TagInsightsFunc: method is nil but analyticsService.TagInsights was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockTagInsights.Lock()
	mock.calls.TagInsights = append(mock.calls.TagInsights, callInfo)
	mock.lockTagInsights.Unlock()
	return mock.TagInsightsFunc(ctx, limit)
}

func (mock *analyticsServiceMock) TagInsightsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockTagInsights.RLock()
	calls := mock.calls.TagInsights
	mock.lockTagInsights.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) RatingDistribution(ctx context.Context) ([]domain.RatingBucket, error) {
	if mock.RatingDistributionFunc == nil {
		panic("analyticsServiceMock.RatingDistributionFunc: method is nil but analyticsService.RatingDistribution was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRatingDistribution.Lock()
	mock.calls.RatingDistribution = append(mock.calls.RatingDistribution, callInfo)
	mock.lockRatingDistribution.Unlock()
	return mock.RatingDistributionFunc(ctx)
}

func (mock *analyticsServiceMock) RatingDistributionCalls() []struct {
	Ctx context.Context
} {
	mock.lockRatingDistribution.RLock()
	calls := mock.calls.RatingDistribution
	mock.lockRatingDistribution.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) RoleBreakdown(ctx context.Context) ([]domain.LabelCount, error) {
	if mock.RoleBreakdownFunc == nil {
		panic("analyticsServiceMock.RoleBreakdownFunc: method is nil but analyticsService.RoleBreakdown was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRoleBreakdown.Lock()
	mock.calls.RoleBreakdown = append(mock.calls.RoleBreakdown, callInfo)
	mock.lockRoleBreakdown.Unlock()
	return mock.RoleBreakdownFunc(ctx)
}

func (mock *analyticsServiceMock) RoleBreakdownCalls() []struct {
	Ctx context.Context
} {
	mock.lockRoleBreakdown.RLock()
	calls := mock.calls.RoleBreakdown
	mock.lockRoleBreakdown.RUnlock()
	return calls
}
