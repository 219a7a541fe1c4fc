package middleware

import (
	"net/http"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/pkg/ctxutil"
)

// RequireAuth rejects anonymous requests with 401. It must run after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, string(domain.ReasonUnauthorized), "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
// Services check the role again; this keeps admin routes closed even for
// handlers that only read.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, string(domain.ReasonNotAllowed), "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}
