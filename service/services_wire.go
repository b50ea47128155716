//go:build wireinject
// +build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(wire.FieldsOf(new(*Services),
	"LocationCounter",
	"LocationManager",
	"ObserverCounter",
	"OnlineCounter",
	"Presence",
	"RBAC",
	"Resolver",
	"Sweeper",
	"WS",
))
