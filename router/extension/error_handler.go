package extension

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/router/extension/herror"
)

// ErrorHandler カスタムエラーハンドラ
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(e error, c echo.Context) {
		var (
			code int
			body interface{}
		)

		var (
			herr *echo.HTTPError
			ierr *herror.InternalError
		)
		switch {
		case e == nil:
			return
		case errors.As(e, &herr):
			if herr.Internal != nil {
				if inner, ok := herr.Internal.(*echo.HTTPError); ok {
					herr = inner
				}
			}
			switch m := herr.Message.(type) {
			case string:
				body = echo.Map{"message": m}
			case error:
				body = echo.Map{"message": m.Error()}
			default:
				body = echo.Map{"message": http.StatusText(herr.Code)}
			}
			code = herr.Code
		case errors.As(e, &ierr):
			logger.Error(ierr.Error(), append(ierr.Fields, zap.String("requestId", GetRequestID(c)))...)
			code = http.StatusInternalServerError
			body = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		default:
			logger.Error(e.Error(), zap.String("requestId", GetRequestID(c)))
			code = http.StatusInternalServerError
			body = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				e = c.NoContent(code)
			} else {
				e = writeJSON(c, code, body, jsoniter.ConfigFastest)
			}
			if e != nil {
				logger.Warn("failed to send error response", zap.Error(e), zap.String("requestId", GetRequestID(c)))
			}
		}
	}
}
