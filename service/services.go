package service

import (
	"github.com/jansampark/fieldwatch/service/counter"
	"github.com/jansampark/fieldwatch/service/location"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/rbac"
	"github.com/jansampark/fieldwatch/service/sweeper"
	"github.com/jansampark/fieldwatch/service/ws"
)

type Services struct {
	LocationCounter *counter.LocationCounter
	LocationManager location.Manager
	ObserverCounter *counter.ObserverCounter
	OnlineCounter   *counter.OnlineCounter
	Presence        *presence.Store
	RBAC            rbac.RBAC
	Resolver        *rbac.Resolver
	Sweeper         *sweeper.Sweeper
	WS              *ws.Streamer
}
