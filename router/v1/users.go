package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetMe GET /users/me
func (h *Handlers) GetMe(c echo.Context) error {
	return c.JSON(http.StatusOK, getRequestUser(c))
}
