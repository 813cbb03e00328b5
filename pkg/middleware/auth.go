package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/chris/gateway-dashboard/pkg/models"
)

// SessionReader exposes the signed-in user.
type SessionReader interface {
	Current() (*models.User, bool)
}

type userKey struct{}

// UserFromContext returns the user stored by RequireSession.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey{}).(*models.User)
	return u, ok
}

// RequireSession rejects anonymous requests with 401 and stores the signed-in user in the request context.
func RequireSession(s SessionReader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, ok := s.Current()
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
		}
		return http.HandlerFunc(fn)
	}
}

// RequireRole allows only the listed roles through. It must run after RequireSession.
func RequireRole(allowed ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(allowed, user.Role) {
				http.Error(w, "You don't have permission to access this resource", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
