package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	UserCountsFunc         func(ctx context.Context) (domain.UserCounts, error)
	RecipeCountsFunc       func(ctx context.Context) (domain.RecipeCounts, error)
	CategoryCountFunc      func(ctx context.Context) (int, error)
	WeeklyCountsFunc       func(ctx context.Context, now time.Time) (domain.WeeklyCounts, error)
	UserTrendFunc          func(ctx context.Context, days int) ([]domain.DailyCount, error)
	RecipeTrendFunc        func(ctx context.Context, days int) ([]domain.DailyCount, error)
	CategoryUsageFunc      func(ctx context.Context, limit int) ([]domain.LabelCount, error)
	TagInsightsFunc        func(ctx context.Context, limit int) ([]domain.LabelCount, error)
	RoleBreakdownFunc      func(ctx context.Context) ([]domain.LabelCount, error)
	RatingDistributionFunc func(ctx context.Context) ([]domain.RatingBucket, error)

	calls struct {
		UserCounts []struct {
			Ctx context.Context
		}
		RecipeCounts []struct {
			Ctx context.Context
		}
		CategoryCount []struct {
			Ctx context.Context
		}
		WeeklyCounts []struct {
			Ctx context.Context
			Now time.Time
		}
		UserTrend []struct {
			Ctx  context.Context
			Days int
		}
		RecipeTrend []struct {
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
		RoleBreakdown []struct {
			Ctx context.Context
		}
		RatingDistribution []struct {
			Ctx context.Context
		}
	}
	lockUserCounts         sync.RWMutex
	lockRecipeCounts       sync.RWMutex
	lockCategoryCount      sync.RWMutex
	lockWeeklyCounts       sync.RWMutex
	lockUserTrend          sync.RWMutex
	lockRecipeTrend        sync.RWMutex
	lockCategoryUsage      sync.RWMutex
	lockTagInsights        sync.RWMutex
	lockRoleBreakdown      sync.RWMutex
	lockRatingDistribution sync.RWMutex
}

func (mock *analyticsRepoMock) UserCounts(ctx context.Context) (domain.UserCounts, error) {
	if mock.UserCountsFunc == nil {
		panic("analyticsRepoMock.UserCountsFunc: method is nil but analyticsRepo.UserCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockUserCounts.Lock()
	mock.calls.UserCounts = append(mock.calls.UserCounts, callInfo)
	mock.lockUserCounts.Unlock()
	return mock.UserCountsFunc(ctx)
}

func (mock *analyticsRepoMock) UserCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockUserCounts.RLock()
	calls := mock.calls.UserCounts
	mock.lockUserCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) RecipeCounts(ctx context.Context) (domain.RecipeCounts, error) {
	if mock.RecipeCountsFunc == nil {
		panic("analyticsRepoMock.RecipeCountsFunc: method is nil but analyticsRepo.RecipeCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRecipeCounts.Lock()
	mock.calls.RecipeCounts = append(mock.calls.RecipeCounts, callInfo)
	mock.lockRecipeCounts.Unlock()
	return mock.RecipeCountsFunc(ctx)
}

func (mock *analyticsRepoMock) RecipeCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockRecipeCounts.RLock()
	calls := mock.calls.RecipeCounts
	mock.lockRecipeCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) CategoryCount(ctx context.Context) (int, error) {
	if mock.CategoryCountFunc == nil {
		panic("analyticsRepoMock.CategoryCountFunc: method is nil but analyticsRepo.CategoryCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCategoryCount.Lock()
	mock.calls.CategoryCount = append(mock.calls.CategoryCount, callInfo)
	mock.lockCategoryCount.Unlock()
	return mock.CategoryCountFunc(ctx)
}

func (mock *analyticsRepoMock) CategoryCountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCategoryCount.RLock()
	calls := mock.calls.CategoryCount
	mock.lockCategoryCount.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) WeeklyCounts(ctx context.Context, now time.Time) (domain.WeeklyCounts, error) {
	if mock.WeeklyCountsFunc == nil {
		panic("analyticsRepoMock.WeeklyCountsFunc: method is nil but analyticsRepo.WeeklyCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockWeeklyCounts.Lock()
	mock.calls.WeeklyCounts = append(mock.calls.WeeklyCounts, callInfo)
	mock.lockWeeklyCounts.Unlock()
	return mock.WeeklyCountsFunc(ctx, now)
}

func (mock *analyticsRepoMock) WeeklyCountsCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockWeeklyCounts.RLock()
	calls := mock.calls.WeeklyCounts
	mock.lockWeeklyCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) UserTrend(ctx context.Context, days int) ([]domain.DailyCount, error) {
	if mock.UserTrendFunc == nil {
		panic("analyticsRepoMock.UserTrendFunc: method is nil but analyticsRepo.UserTrend was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockUserTrend.Lock()
	mock.calls.UserTrend = append(mock.calls.UserTrend, callInfo)
	mock.lockUserTrend.Unlock()
	return mock.UserTrendFunc(ctx, days)
}

func (mock *analyticsRepoMock) UserTrendCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockUserTrend.RLock()
	calls := mock.calls.UserTrend
	mock.lockUserTrend.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) RecipeTrend(ctx context.Context, days int) ([]domain.DailyCount, error) {
	if mock.RecipeTrendFunc == nil {
		panic("analyticsRepoMock.RecipeTrendFunc: method is nil but analyticsRepo.RecipeTrend was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockRecipeTrend.Lock()
	mock.calls.RecipeTrend = append(mock.calls.RecipeTrend, callInfo)
	mock.lockRecipeTrend.Unlock()
	return mock.RecipeTrendFunc(ctx, days)
}

func (mock *analyticsRepoMock) RecipeTrendCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockRecipeTrend.RLock()
	calls := mock.calls.RecipeTrend
	mock.lockRecipeTrend.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) CategoryUsage(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	if mock.CategoryUsageFunc == nil {
		panic("analyticsRepoMock.CategoryUsageFunc: method is nil but analyticsRepo.CategoryUsage was just called")
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

func (mock *analyticsRepoMock) CategoryUsageCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockCategoryUsage.RLock()
	calls := mock.calls.CategoryUsage
	mock.lockCategoryUsage.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) TagInsights(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	if mock.TagInsightsFunc == nil {
		panic("analyticsRepoMock.TagInsightsFunc: method is nil but analyticsRepo.TagInsights was just called")
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

func (mock *analyticsRepoMock) TagInsightsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockTagInsights.RLock()
	calls := mock.calls.TagInsights
	mock.lockTagInsights.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) RoleBreakdown(ctx context.Context) ([]domain.LabelCount, error) {
	if mock.RoleBreakdownFunc == nil {
		panic("analyticsRepoMock.RoleBreakdownFunc: method is nil but analyticsRepo.RoleBreakdown was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRoleBreakdown.Lock()
	mock.calls.RoleBreakdown = append(mock.calls.RoleBreakdown, callInfo)
	mock.lockRoleBreakdown.Unlock()
	return mock.RoleBreakdownFunc(ctx)
}

func (mock *analyticsRepoMock) RoleBreakdownCalls() []struct {
	Ctx context.Context
} {
	mock.lockRoleBreakdown.RLock()
	calls := mock.calls.RoleBreakdown
	mock.lockRoleBreakdown.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) RatingDistribution(ctx context.Context) ([]domain.RatingBucket, error) {
	if mock.RatingDistributionFunc == nil {
		panic("analyticsRepoMock.RatingDistributionFunc: method is nil but analyticsRepo.RatingDistribution was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRatingDistribution.Lock()
	mock.calls.RatingDistribution = append(mock.calls.RatingDistribution, callInfo)
	mock.lockRatingDistribution.Unlock()
	return mock.RatingDistributionFunc(ctx)
}

func (mock *analyticsRepoMock) RatingDistributionCalls() []struct {
	Ctx context.Context
} {
	mock.lockRatingDistribution.RLock()
	calls := mock.calls.RatingDistribution
	mock.lockRatingDistribution.RUnlock()
	return calls
}
