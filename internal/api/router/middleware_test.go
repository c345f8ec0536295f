package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/craftnet/craftnet-be/internal/api/domain"
)

func identityTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdentityMiddleware())

	group := r.Group("/protected")
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64(domain.ContextKeyUserID),
			"role":    c.GetString(domain.ContextKeyUserRole),
		})
	})
	return r
}

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		role     string
		wantBody string
	}{
		{
			name:     "valid identity headers",
			userID:   "42",
			role:     domain.RoleCustomer,
			wantBody: `"user_id":42`,
		},
		{
			name:     "missing headers leave identity unset",
			wantBody: `"user_id":0`,
		},
		{
			name:     "non-numeric user id is ignored",
			userID:   "abc",
			role:     domain.RoleCustomer,
			wantBody: `"user_id":0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := identityTestRouter()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.role != "" {
				req.Header.Set("X-User-Role", tt.role)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		allowed    []string
		wantStatus int
	}{
		{
			name:       "matching role passes",
			userID:     "42",
			role:       domain.RoleCustomer,
			allowed:    []string{domain.RoleCustomer},
			wantStatus: http.StatusOK,
		},
		{
			name:       "any of several roles passes",
			userID:     "42",
			role:       domain.RoleMaster,
			allowed:    []string{domain.RoleCustomer, domain.RoleMaster},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong role is forbidden",
			userID:     "42",
			role:       domain.RoleMaster,
			allowed:    []string{domain.RoleCustomer},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing identity is unauthorized",
			allowed:    []string{domain.RoleCustomer},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := identityTestRouter(tt.allowed...)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
				req.Header.Set("X-User-Role", tt.role)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
