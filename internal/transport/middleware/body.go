package middleware

import "net/http"

// MaxBodyBytes caps the request body at n bytes. Reading past the cap fails
// with *http.MaxBytesError, which handlers answer with 413.
func MaxBodyBytes(n int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
