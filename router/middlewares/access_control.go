package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/router/consts"
	"github.com/jansampark/fieldwatch/service/rbac"
	"github.com/jansampark/fieldwatch/service/rbac/permission"
)

// AccessControlMiddlewareGenerator アクセスコントロールミドルウェアのジェネレーターを返します
func AccessControlMiddlewareGenerator(r rbac.RBAC) func(p ...permission.Permission) echo.MiddlewareFunc {
	return func(p ...permission.Permission) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				// ユーザー権限検証
				user, ok := c.Get(consts.KeyUser).(*model.User)
				if !ok || user == nil {
					return echo.NewHTTPError(http.StatusUnauthorized)
				}
				for _, v := range p {
					if !r.IsGranted(user.GetRole(), v) {
						// NG
						return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("you are not permitted to request to '%s'", c.Request().URL.Path))
					}
				}

				return next(c) // OK
			}
		}
	}
}
