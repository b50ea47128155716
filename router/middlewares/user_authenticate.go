package middlewares

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/router/consts"
	"github.com/jansampark/fieldwatch/router/extension/ctxkey"
	"github.com/jansampark/fieldwatch/router/extension/herror"
	"github.com/jansampark/fieldwatch/utils/jwt"
)

const authScheme = "Bearer"

// UserAuthenticate リクエスト認証ミドルウェア
//
// Authorizationヘッダーのベアラートークン、なければtokenクエリパラメータを検証します。
// ブラウザのWebSocket APIはヘッダーを付与できないため、クエリパラメータも受け付けます。
func UserAuthenticate(repo repository.UserRepository, signer *jwt.Signer) echo.MiddlewareFunc {
	var sfUser singleflight.Group

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if ah := c.Request().Header.Get(echo.HeaderAuthorization); len(ah) > 0 {
				// Authorizationスキーム検証
				l := len(authScheme)
				if !(len(ah) > l+1 && ah[:l] == authScheme) {
					return herror.Unauthorized("invalid authorization scheme")
				}
				token = ah[l+1:]
			} else {
				token = c.QueryParam(consts.QueryToken)
			}
			if len(token) == 0 {
				return herror.Unauthorized("You are not logged in")
			}

			name, err := signer.Verify(token)
			if err != nil {
				return herror.Unauthorized("invalid token")
			}

			// ユーザー取得
			uI, err, _ := sfUser.Do(name, func() (interface{}, error) {
				return repo.GetUserByName(context.WithoutCancel(c.Request().Context()), name)
			})
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return herror.Unauthorized("invalid token")
				}
				return herror.InternalServerError(err)
			}
			user := uI.(*model.User)

			// ユーザーアカウント状態を確認
			if !user.IsActive {
				return herror.Forbidden("this account is currently suspended")
			}

			c.Set(consts.KeyUser, user)
			c.Set(consts.KeyUserID, user.GetID())
			ctx := context.WithValue(c.Request().Context(), ctxkey.UserID, user.GetID())
			ctx = context.WithValue(ctx, ctxkey.User, user) // WSストリーマーで使う
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

