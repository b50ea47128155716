package v1

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/router/extension/herror"
	"github.com/jansampark/fieldwatch/service/location"
	"github.com/jansampark/fieldwatch/utils/validator"
)

// PostMyLocationRequest POST /location リクエストボディ
type PostMyLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
}

func (r PostMyLocationRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Latitude, validator.LatitudeRuleRequired...),
		vd.Field(&r.Longitude, validator.LongitudeRuleRequired...),
		vd.Field(&r.Accuracy, validator.AccuracyRule...),
	)
}

// PostMyLocation POST /location
func (h *Handlers) PostMyLocation(c echo.Context) error {
	var req PostMyLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.LocationManager.UpdateLocation(c.Request().Context(), getRequestUser(c), *req.Latitude, *req.Longitude, null.FloatFromPtr(req.Accuracy))
	if err != nil {
		if errors.Is(err, location.ErrInvalidLocation) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSubordinateLocations GET /locations
func (h *Handlers) GetSubordinateLocations(c echo.Context) error {
	res, err := h.LocationManager.GetSubordinateLocations(c.Request().Context(), getRequestUser(c))
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// GetLocationHistoryRequest GET /locations/:userID/history クエリパラメータ
type GetLocationHistoryRequest struct {
	Hours int `query:"hours"`
}

func (r GetLocationHistoryRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Hours, vd.Required, vd.Min(location.MinHistoryHours), vd.Max(location.MaxHistoryHours)),
	)
}

type locationHistoryResponse struct {
	UserID     int64                 `json:"userId"`
	Hours      int                   `json:"hours"`
	Locations  []*model.UserLocation `json:"locations"`
	TotalCount int                   `json:"totalCount"`
}

// GetLocationHistory GET /locations/:userID/history
func (h *Handlers) GetLocationHistory(c echo.Context) error {
	userID := getParamUserID(c)

	req := GetLocationHistoryRequest{Hours: location.DefaultHistoryHours}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	locations, err := h.LocationManager.GetHistory(c.Request().Context(), getRequestUser(c), userID, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrForbidden):
			return herror.Forbidden("access denied to this user's location")
		case errors.Is(err, location.ErrInvalidHours):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}

	return c.JSON(http.StatusOK, &locationHistoryResponse{
		UserID:     userID,
		Hours:      req.Hours,
		Locations:  locations,
		TotalCount: len(locations),
	})
}
