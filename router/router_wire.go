//go:build wireinject
// +build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/repository"
	v1 "github.com/jansampark/fieldwatch/router/v1"
	"github.com/jansampark/fieldwatch/service"
	"github.com/jansampark/fieldwatch/utils/jwt"
)

func newRouter(repo repository.Repository, ss *service.Services, signer *jwt.Signer, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		service.ProviderSet,
		newEcho,
		provideV1Config,
		wire.Struct(new(v1.Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
