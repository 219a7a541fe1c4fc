package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/pkg/ctxutil"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out recipe_service_mock_test.go -pkg rest . recipeService
//go:generate moq -out profile_service_mock_test.go -pkg rest . profileService
//go:generate moq -out admin_recipe_service_mock_test.go -pkg rest . adminRecipeService
//go:generate moq -out admin_user_service_mock_test.go -pkg rest . adminUserService
//go:generate moq -out bulk_coordinator_mock_test.go -pkg rest . bulkCoordinator
//go:generate moq -out category_service_mock_test.go -pkg rest . categoryService
//go:generate moq -out analytics_service_mock_test.go -pkg rest . analyticsService
//go:generate moq -out activity_feed_mock_test.go -pkg rest . activityFeed

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func asUser(ctx context.Context, id uuid.UUID) context.Context {
	ctx = ctxutil.WithUserID(ctx, id)
	return ctxutil.WithUserRole(ctx, "user")
}

func asAdmin(ctx context.Context, id uuid.UUID) context.Context {
	ctx = ctxutil.WithUserID(ctx, id)
	return ctxutil.WithUserRole(ctx, "admin")
}

// newRequest builds a request with an optional JSON body and {id} path value.
func newRequest(t *testing.T, method, target string, body any, id uuid.UUID) *http.Request {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if id != uuid.Nil {
		req.SetPathValue("id", id.String())
	}
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}
