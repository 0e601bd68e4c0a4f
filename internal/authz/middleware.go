package authz

import "net/http"

// RequireAdmin ensures an authenticated admin identity is present on the
// request context. The token middleware populates it; this guards against
// routes wired outside that chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := AdminIDFromRequest(r); !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
