package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/user"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc        func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc     func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	ChangePasswordFunc    func(ctx context.Context, input user.ChangePasswordInput) error
	UpdatePreferencesFunc func(ctx context.Context, input user.PreferencesInput) (*domain.User, error)
	PublicInfoFunc        func(ctx context.Context, id uuid.UUID) (*user.PublicProfile, error)
	MealPlanFunc          func(ctx context.Context) (*domain.MealPlan, error)
	SaveMealPlanFunc      func(ctx context.Context, input user.MealPlanInput) (*domain.MealPlan, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		ChangePassword []struct {
			Ctx   context.Context
			Input user.ChangePasswordInput
		}
		UpdatePreferences []struct {
			Ctx   context.Context
			Input user.PreferencesInput
		}
		PublicInfo []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MealPlan []struct {
			Ctx context.Context
		}
		SaveMealPlan []struct {
			Ctx   context.Context
			Input user.MealPlanInput
		}
	}
	lockGetProfile        sync.RWMutex
	lockUpdateProfile     sync.RWMutex
	lockChangePassword    sync.RWMutex
	lockUpdatePreferences sync.RWMutex
	lockPublicInfo        sync.RWMutex
	lockMealPlan          sync.RWMutex
	lockSaveMealPlan      sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) ChangePassword(ctx context.Context, input user.ChangePasswordInput) error {
	if mock.ChangePasswordFunc == nil {
		panic("profileServiceMock.ChangePasswordFunc: method is nil but profileService.ChangePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ChangePasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockChangePassword.Lock()
	mock.calls.ChangePassword = append(mock.calls.ChangePassword, callInfo)
	mock.lockChangePassword.Unlock()
	return mock.ChangePasswordFunc(ctx, input)
}

func (mock *profileServiceMock) ChangePasswordCalls() []struct {
	Ctx   context.Context
	Input user.ChangePasswordInput
} {
	mock.lockChangePassword.RLock()
	calls := mock.calls.ChangePassword
	mock.lockChangePassword.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdatePreferences(ctx context.Context, input user.PreferencesInput) (*domain.User, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("profileServiceMock.UpdatePreferencesFunc: method is nil but profileService.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.PreferencesInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, input)
}

func (mock *profileServiceMock) UpdatePreferencesCalls() []struct {
	Ctx   context.Context
	Input user.PreferencesInput
} {
	mock.lockUpdatePreferences.RLock()
	calls := mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}

func (mock *profileServiceMock) PublicInfo(ctx context.Context, id uuid.UUID) (*user.PublicProfile, error) {
	if mock.PublicInfoFunc == nil {
		panic("profileServiceMock.PublicInfoFunc: method is nil but profileService.PublicInfo was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockPublicInfo.Lock()
	mock.calls.PublicInfo = append(mock.calls.PublicInfo, callInfo)
	mock.lockPublicInfo.Unlock()
	return mock.PublicInfoFunc(ctx, id)
}

func (mock *profileServiceMock) PublicInfoCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockPublicInfo.RLock()
	calls := mock.calls.PublicInfo
	mock.lockPublicInfo.RUnlock()
	return calls
}

func (mock *profileServiceMock) MealPlan(ctx context.Context) (*domain.MealPlan, error) {
	if mock.MealPlanFunc == nil {
		panic("profileServiceMock.MealPlanFunc: method is nil but profileService.MealPlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMealPlan.Lock()
	mock.calls.MealPlan = append(mock.calls.MealPlan, callInfo)
	mock.lockMealPlan.Unlock()
	return mock.MealPlanFunc(ctx)
}

func (mock *profileServiceMock) MealPlanCalls() []struct {
	Ctx context.Context
} {
	mock.lockMealPlan.RLock()
	calls := mock.calls.MealPlan
	mock.lockMealPlan.RUnlock()
	return calls
}

func (mock *profileServiceMock) SaveMealPlan(ctx context.Context, input user.MealPlanInput) (*domain.MealPlan, error) {
	if mock.SaveMealPlanFunc == nil {
		panic("profileServiceMock.SaveMealPlanFunc: method is nil but profileService.SaveMealPlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.MealPlanInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveMealPlan.Lock()
	mock.calls.SaveMealPlan = append(mock.calls.SaveMealPlan, callInfo)
	mock.lockSaveMealPlan.Unlock()
	return mock.SaveMealPlanFunc(ctx, input)
}

func (mock *profileServiceMock) SaveMealPlanCalls() []struct {
	Ctx   context.Context
	Input user.MealPlanInput
} {
	mock.lockSaveMealPlan.RLock()
	calls := mock.calls.SaveMealPlan
	mock.lockSaveMealPlan.RUnlock()
	return calls
}
