package v1

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/router/middlewares"
	"github.com/jansampark/fieldwatch/service/counter"
	"github.com/jansampark/fieldwatch/service/location"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/rbac"
	"github.com/jansampark/fieldwatch/service/rbac/permission"
	"github.com/jansampark/fieldwatch/service/sweeper"
	"github.com/jansampark/fieldwatch/service/ws"
	"github.com/jansampark/fieldwatch/utils/jwt"
)

type Handlers struct {
	RBAC            rbac.RBAC
	Repo            repository.Repository
	Signer          *jwt.Signer
	LocationManager location.Manager
	Presence        *presence.Store
	OnlineCounter   *counter.OnlineCounter
	WS              *ws.Streamer
	Sweeper         *sweeper.Sweeper
	Logger          *zap.Logger
	Config
}

type Config struct {
	Version  string
	Revision string
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	// middleware preparation
	requires := middlewares.AccessControlMiddlewareGenerator(h.RBAC)
	retrieve := middlewares.NewParamRetriever()

	api := e.Group("/v1")
	{
		api.GET("/version", h.GetVersion)
		api.GET("/monitoring/system-health", h.GetSystemHealth)

		apiAuth := api.Group("", middlewares.UserAuthenticate(h.Repo, h.Signer))
		{
			apiAuth.GET("/users/me", h.GetMe)
			apiAuth.POST("/location", h.PostMyLocation, requires(permission.UpdateMyLocation))
			apiLocations := apiAuth.Group("/locations")
			{
				apiLocations.GET("", h.GetSubordinateLocations, requires(permission.GetSubordinateLocations))
				apiLocations.GET("/:userID/history", h.GetLocationHistory, requires(permission.GetLocationHistory), retrieve.UserID())
			}
			apiAuth.GET("/ws/locations", echo.WrapHandler(h.WS), requires(permission.ConnectLocationStream))
			apiAuth.POST("/monitoring/cleanup", h.PostCleanup, requires(permission.RunCleanup))
		}
	}
}
