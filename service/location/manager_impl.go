package location

import (
	"context"
	"fmt"
	"math"

	"github.com/benbjohnson/clock"
	"github.com/guregu/null"
	"github.com/leandro-lugaresi/hub"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/event"
	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/rbac"
)

type managerImpl struct {
	users     repository.UserRepository
	locations repository.LocationRepository
	store     *presence.Store
	resolver  *rbac.Resolver
	bc        Broadcaster
	hub       *hub.Hub
	clock     clock.Clock
	logger    *zap.Logger
}

// NewManager 位置情報マネージャーを生成します
//
// ユーザーが無効化されると、そのユーザーの最新位置と接続は破棄されます
func NewManager(users repository.UserRepository, locations repository.LocationRepository, store *presence.Store, resolver *rbac.Resolver, bc Broadcaster, hub *hub.Hub, c clock.Clock, logger *zap.Logger) Manager {
	m := &managerImpl{
		users:     users,
		locations: locations,
		store:     store,
		resolver:  resolver,
		bc:        bc,
		hub:       hub,
		clock:     c,
		logger:    logger.Named("location_manager"),
	}
	sub := hub.Subscribe(10, event.UserDeactivated)
	go func() {
		for msg := range sub.Receiver {
			m.RemoveUser(msg.Fields["user_id"].(int64))
		}
	}()
	return m
}

func validateLocation(lat, lon float64, accuracy null.Float) error {
	switch {
	case math.IsNaN(lat) || lat < -90 || lat > 90:
		return fmt.Errorf("%w: latitude %v", ErrInvalidLocation, lat)
	case math.IsNaN(lon) || lon < -180 || lon > 180:
		return fmt.Errorf("%w: longitude %v", ErrInvalidLocation, lon)
	case accuracy.Valid && (math.IsNaN(accuracy.Float64) || accuracy.Float64 < 0):
		return fmt.Errorf("%w: accuracy %v", ErrInvalidLocation, accuracy.Float64)
	}
	return nil
}

func (m *managerImpl) UpdateLocation(ctx context.Context, user *model.User, lat, lon float64, accuracy null.Float) (presence.Entry, error) {
	if err := validateLocation(lat, lon, accuracy); err != nil {
		return presence.Entry{}, err
	}
	userID := user.GetID()

	entry, cameOnline := m.store.Report(userID, lat, lon, accuracy)

	if err := m.locations.CreateUserLocation(ctx, entry.LocationSample); err != nil {
		m.logger.Error("failed to append location history", zap.Error(err), zap.Int64("userId", userID))
	}

	m.bc.BroadcastLocation(userID, entry)

	if cameOnline {
		m.hub.Publish(hub.Message{
			Name: event.UserOnline,
			Fields: hub.Fields{
				"user_id":  userID,
				"datetime": entry.ObservedAt,
			},
		})
	}
	m.hub.Publish(hub.Message{
		Name: event.UserLocationUpdated,
		Fields: hub.Fields{
			"user_id": userID,
			"sample":  entry.LocationSample,
		},
	})
	return entry, nil
}

func (m *managerImpl) GetSubordinateLocations(ctx context.Context, supervisor *model.User) ([]*SubordinateLocation, error) {
	subordinates := m.resolver.SubordinatesOf(ctx, supervisor)
	if subordinates.Len() == 0 {
		return []*SubordinateLocation{}, nil
	}

	// 最新位置を持つ配下ユーザーのみ
	entries := lo.PickBy(m.store.GetAll(), func(id int64, _ presence.Entry) bool {
		return subordinates.Contains(id)
	})
	if len(entries) == 0 {
		return []*SubordinateLocation{}, nil
	}

	users, err := m.users.GetUsersByIDs(ctx, lo.Keys(entries))
	if err != nil {
		return nil, fmt.Errorf("failed to get subordinates: %w", err)
	}

	return lo.FilterMap(users, func(u *model.User, _ int) (*SubordinateLocation, bool) {
		e, ok := entries[u.ID]
		if !ok {
			return nil, false
		}
		return &SubordinateLocation{
			UserID:   u.ID,
			Username: u.Name,
			FullName: u.FullName,
			Role:     u.Role,
			Location: &e,
			IsOnline: e.IsOnline,
			LastSeen: null.TimeFrom(e.ObservedAt),
		}, true
	}), nil
}

func (m *managerImpl) GetHistory(ctx context.Context, supervisor *model.User, userID int64, hours int) ([]*model.UserLocation, error) {
	if hours < MinHistoryHours || hours > MaxHistoryHours {
		return nil, ErrInvalidHours
	}
	if !m.resolver.CanObserve(ctx, supervisor, userID) {
		return nil, ErrForbidden
	}

	locations, err := m.locations.GetUserLocationHistory(ctx, userID, HistorySince(m.clock.Now(), hours))
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	return locations, nil
}

func (m *managerImpl) RemoveUser(userID int64) {
	if m.store.Remove(userID) {
		m.bc.BroadcastUserStatus(userID, false)
		m.hub.Publish(hub.Message{
			Name: event.UserOffline,
			Fields: hub.Fields{
				"user_id":  userID,
				"datetime": m.clock.Now(),
			},
		})
	}
	if m.bc.DisconnectUser(userID) {
		m.logger.Info("disconnected a deactivated supervisor", zap.Int64("userId", userID))
	}
}
