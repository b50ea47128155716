package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/router/consts"
	"github.com/jansampark/fieldwatch/router/extension"
	"github.com/jansampark/fieldwatch/service/rbac"
	"github.com/jansampark/fieldwatch/service/rbac/permission"
	"github.com/jansampark/fieldwatch/service/rbac/role"
)

func TestAccessControlMiddlewareGenerator(t *testing.T) {
	t.Parallel()
	requires := AccessControlMiddlewareGenerator(rbac.New())

	serve := func(user *model.User, p ...permission.Permission) int {
		e := echo.New()
		e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
		e.GET("/", func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		}, func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				if user != nil {
					c.Set(consts.KeyUser, user)
				}
				return next(c)
			}
		}, requires(p...))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Code
	}

	tests := []struct {
		name string
		role string
		perm permission.Permission
		want int
	}{
		{"field worker reports", role.BoothBoy, permission.UpdateMyLocation, http.StatusNoContent},
		{"candidate reports", role.Candidate, permission.UpdateMyLocation, http.StatusNoContent},
		{"field worker streams", role.BoothBoy, permission.ConnectLocationStream, http.StatusForbidden},
		{"admin streams", role.Admin, permission.ConnectLocationStream, http.StatusNoContent},
		{"admin cleanup", role.Admin, permission.RunCleanup, http.StatusForbidden},
		{"super admin cleanup", role.SuperAdmin, permission.RunCleanup, http.StatusNoContent},
		{"unknown role", "guest", permission.UpdateMyLocation, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, serve(&model.User{ID: 1, Role: tt.role, IsActive: true}, tt.perm))
		})
	}

	t.Run("no user", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusUnauthorized, serve(nil, permission.UpdateMyLocation))
	})
}
