//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/benbjohnson/clock"
	"github.com/google/wire"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/router"
	"github.com/jansampark/fieldwatch/service"
	"github.com/jansampark/fieldwatch/service/counter"
	"github.com/jansampark/fieldwatch/service/location"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/rbac"
	"github.com/jansampark/fieldwatch/service/sweeper"
	"github.com/jansampark/fieldwatch/service/ws"
)

func newServer(hub *hub.Hub, repo repository.Repository, logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		clock.New,
		counter.NewLocationCounter,
		counter.NewObserverCounter,
		counter.NewOnlineCounter,
		location.NewManager,
		presence.NewStore,
		rbac.New,
		rbac.NewResolver,
		sweeper.NewSweeper,
		ws.NewRegistry,
		ws.NewStreamer,
		router.Setup,
		provideUserRepository,
		provideLocationRepository,
		provideOnlineThreshold,
		provideStreamerConfig,
		provideSweeperConfig,
		provideRouterConfig,
		provideSigner,
		wire.Bind(new(location.Broadcaster), new(*ws.Streamer)),
		wire.Bind(new(sweeper.StatusBroadcaster), new(*ws.Streamer)),
		wire.Struct(new(service.Services), "*"),
		wire.Struct(new(Server), "*"),
	)
	return nil, nil
}
