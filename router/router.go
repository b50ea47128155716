package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/router/consts"
	"github.com/jansampark/fieldwatch/router/extension"
	"github.com/jansampark/fieldwatch/router/middlewares"
	v1 "github.com/jansampark/fieldwatch/router/v1"
	"github.com/jansampark/fieldwatch/service"
	"github.com/jansampark/fieldwatch/utils/jwt"
)

type Router struct {
	e  *echo.Echo
	v1 *v1.Handlers
}

func Setup(repo repository.Repository, ss *service.Services, signer *jwt.Signer, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(repo, ss, signer, logger.Named("router"), config)

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	r.v1.Setup(api)

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)
	e.Binder = &extension.Binder{}

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	e.Use(extension.Wrap())
	e.Use(middlewares.RequestCounter())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  config.AllowOrigins,
		ExposeHeaders: []string{consts.HeaderVersion, echo.HeaderXRequestID},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:        3600,
	}))
	e.Use(echoprometheus.NewMiddleware("echo"))

	return e
}
