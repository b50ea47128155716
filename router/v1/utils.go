package v1

import (
	"errors"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/router/consts"
	"github.com/jansampark/fieldwatch/router/extension/herror"
)

// bindAndValidate 構造体iにFormDataまたはJsonをデシリアライズします
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	if err := vd.Validate(i); err != nil {
		var ie vd.InternalError
		if errors.As(err, &ie) {
			return herror.InternalServerError(ie.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}

// getRequestUser リクエストしてきたユーザーの情報を取得
func getRequestUser(c echo.Context) *model.User {
	return c.Get(consts.KeyUser).(*model.User)
}

// getParamUserID URLの:userIDを取得
func getParamUserID(c echo.Context) int64 {
	return c.Get(consts.KeyParamUserID).(int64)
}
