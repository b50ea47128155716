package herror

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
)

func NotFound(err ...interface{}) error {
	return HTTPError(http.StatusNotFound, err)
}

func BadRequest(err ...interface{}) error {
	return HTTPError(http.StatusBadRequest, err)
}

func Forbidden(err ...interface{}) error {
	return HTTPError(http.StatusForbidden, err)
}

func Unauthorized(err ...interface{}) error {
	return HTTPError(http.StatusUnauthorized, err)
}

func ServiceUnavailable(err ...interface{}) error {
	return HTTPError(http.StatusServiceUnavailable, err)
}

func HTTPError(code int, err interface{}) error {
	switch v := err.(type) {
	case []interface{}:
		if len(v) > 0 {
			return HTTPError(code, v[0])
		}
		return HTTPError(code, nil)
	case string:
		return echo.NewHTTPError(code, v)
	case vd.Errors:
		return echo.NewHTTPError(code, v.Error())
	case error:
		return echo.NewHTTPError(code, v.Error()).SetInternal(v)
	case nil:
		return echo.NewHTTPError(code)
	default:
		return echo.NewHTTPError(code, v)
	}
}
