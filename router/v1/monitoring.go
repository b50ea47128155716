package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/router/extension/herror"
)

// PostCleanup POST /monitoring/cleanup
func (h *Handlers) PostCleanup(c echo.Context) error {
	result, err := h.Sweeper.RunOnce(c.Request().Context())
	if err != nil {
		return herror.InternalServerError(err)
	}
	h.Logger.Info("manual cleanup executed",
		zap.Int64("userId", getRequestUser(c).GetID()),
		zap.Int64("deletedRows", result.DeletedRows))
	return c.JSON(http.StatusOK, result)
}

// GetSystemHealth GET /monitoring/system-health
func (h *Handlers) GetSystemHealth(c echo.Context) error {
	status := "healthy"
	if h.WS.IsClosed() {
		status = "stopping"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":         status,
		"timestamp":      time.Now().UTC(),
		"connections":    h.WS.Registry().Len(),
		"trackedUsers":   h.Presence.Len(),
		"reportingUsers": h.OnlineCounter.Get(),
	})
}
