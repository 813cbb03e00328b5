package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

type staticSession struct {
	user *models.User
}

func (s staticSession) Current() (*models.User, bool) {
	return s.user, s.user != nil
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequireSession(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		h := RequireSession(staticSession{})(http.HandlerFunc(okHandler))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/wallet/balance", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Signed In", func(t *testing.T) {
		user := &models.User{ID: "1", Role: models.RoleUser}
		var seen *models.User
		h := RequireSession(staticSession{user: user})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = UserFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/wallet/balance", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, user, seen)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"Anonymous", nil, http.StatusUnauthorized},
		{"User Forbidden", &models.User{Role: models.RoleUser}, http.StatusForbidden},
		{"Admin Allowed", &models.User{Role: models.RoleAdmin}, http.StatusOK},
		{"Super Admin Allowed", &models.User{Role: models.RoleSuperAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := RequireSession(staticSession{user: tt.user})
			h := guard(RequireRole(models.RoleAdmin, models.RoleSuperAdmin)(http.HandlerFunc(okHandler)))
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

			assert.Equal(t, tt.want, rr.Code)
		})
	}

	t.Run("Without Session Middleware", func(t *testing.T) {
		h := RequireRole(models.RoleSuperAdmin)(http.HandlerFunc(okHandler))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/system-stats", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
