package middlewares

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jansampark/fieldwatch/router/consts"
	"github.com/jansampark/fieldwatch/router/extension/herror"
)

// ParamRetriever パスパラメータ取得ミドルウェア
type ParamRetriever struct{}

// NewParamRetriever ParamRetrieverを生成します
func NewParamRetriever() *ParamRetriever {
	return &ParamRetriever{}
}

// UserID リクエストURLの`userID`パラメータを検証します
//
// ユーザーの存在確認は行いません。存在しないユーザーは配下にいないユーザーと同様に扱われます。
func (pr *ParamRetriever) UserID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.ParseInt(c.Param(consts.ParamUserID), 10, 64)
			if err != nil || id <= 0 {
				return herror.BadRequest("invalid userID")
			}
			c.Set(consts.KeyParamUserID, id)
			return next(c)
		}
	}
}
