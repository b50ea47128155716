package ws

import (
	"errors"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gofrs/uuid"
	"github.com/gorilla/websocket"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/event"
	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/router/extension/ctxkey"
	"github.com/jansampark/fieldwatch/service/presence"
	"github.com/jansampark/fieldwatch/service/rbac"
	"github.com/jansampark/fieldwatch/utils/set"
)

var (
	// ErrAlreadyClosed 既に閉じられています
	ErrAlreadyClosed = errors.New("already closed")
	// ErrSendTimeout 送信タイムアウト内に送信キューに積めませんでした
	ErrSendTimeout = errors.New("send timeout")
	// ErrStreamerClosed ストリーマーは停止しています
	ErrStreamerClosed = errors.New("streamer closed")
)

// Config ストリーマー設定
type Config struct {
	// SendTimeout 1メッセージを送信キューに積むまでのタイムアウト
	SendTimeout time.Duration
}

// Streamer 位置情報WebSocketストリーマー
type Streamer struct {
	hub      *hub.Hub
	registry *Registry
	store    *presence.Store
	resolver *rbac.Resolver
	clock    clock.Clock
	logger   *zap.Logger
	config   Config
	closed   bool
	mu       sync.RWMutex
}

// NewStreamer WebSocketストリーマーを生成します
func NewStreamer(hub *hub.Hub, registry *Registry, store *presence.Store, resolver *rbac.Resolver, c clock.Clock, logger *zap.Logger, config Config) *Streamer {
	if config.SendTimeout <= 0 {
		config.SendTimeout = DefaultSendTimeout
	}
	return &Streamer{
		hub:      hub,
		registry: registry,
		store:    store,
		resolver: resolver,
		clock:    c,
		logger:   logger.Named("ws"),
		config:   config,
	}
}

// Registry 接続登録簿を返します
func (s *Streamer) Registry() *Registry {
	return s.registry
}

// BroadcastLocation 指定したユーザーを配下に持つ全監視者に最新位置を送信します
//
// 送信に失敗したチャネルは登録を解除し、残りの送信は継続します。送信に成功した数を返します
func (s *Streamer) BroadcastLocation(userID int64, entry presence.Entry) int {
	return s.broadcast(userID, makeMessage(LocationUpdated, entry).toJSON(), LocationUpdated)
}

// BroadcastUserStatus 指定したユーザーを配下に持つ全監視者にオンライン状態を送信します
func (s *Streamer) BroadcastUserStatus(userID int64, online bool) int {
	body := &userStatusBody{
		UserID:   userID,
		IsOnline: online,
		Datetime: s.clock.Now(),
	}
	return s.broadcast(userID, makeMessage(UserStatus, body).toJSON(), UserStatus)
}

func (s *Streamer) broadcast(userID int64, data []byte, t string) int {
	sent := 0
	for _, ch := range s.registry.FindObservers(userID) {
		if err := ch.Send(data); err != nil {
			s.logger.Warn("failed to push a message, dropping the channel",
				zap.Error(err),
				zap.String("type", t),
				zap.Int64("userId", userID),
				zap.Int64("supervisorId", ch.UserID()),
				zap.String("key", ch.Key()))
			s.registry.Unregister(ch.UserID(), ch)
			ch.Close()
			continue
		}
		sent++
	}
	return sent
}

// SendSnapshot 配下ユーザーの現在位置の一覧をチャネルに送信します
func (s *Streamer) SendSnapshot(ch Channel, subordinates set.Set[int64]) error {
	all := s.store.GetAll()
	locations := make([]presence.Entry, 0, min(len(all), subordinates.Len()))
	for id, e := range all {
		if subordinates.Contains(id) {
			locations = append(locations, e)
		}
	}
	slices.SortFunc(locations, func(a, b presence.Entry) int {
		switch {
		case a.UserID < b.UserID:
			return -1
		case a.UserID > b.UserID:
			return 1
		default:
			return 0
		}
	})
	return ch.Send(makeMessage(InitialLocations, &initialLocationsBody{Locations: locations}).toJSON())
}

// Connect チャネルを監視者として登録し、スナップショットを送信します
//
// 配下ユーザー集合は接続時に一度だけ解決され、接続中は更新されません
func (s *Streamer) Connect(user *model.User, ch Channel, subordinates set.Set[int64]) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStreamerClosed
	}

	var snapshotErr error
	s.registry.Register(user.GetID(), ch, subordinates, func() {
		snapshotErr = s.SendSnapshot(ch, subordinates)
	})
	if snapshotErr != nil {
		s.registry.Unregister(user.GetID(), ch)
		return snapshotErr
	}
	return nil
}

// Disconnect チャネルの登録を解除します
func (s *Streamer) Disconnect(ch Channel) {
	s.registry.Unregister(ch.UserID(), ch)
}

// DisconnectUser 指定した監視者の接続を切断します
func (s *Streamer) DisconnectUser(supervisorID int64) bool {
	ch, ok := s.registry.Get(supervisorID)
	if !ok {
		return false
	}
	s.registry.Unregister(supervisorID, ch)
	if sess, ok := ch.(*session); ok {
		sess.closeWith(websocket.ClosePolicyViolation, "account deactivated")
	} else {
		ch.Close()
	}
	return true
}

// ServeHTTP http.Handlerインターフェイスの実装
func (s *Streamer) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	if s.closed {
		http.Error(rw, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		s.mu.RUnlock()
		return
	}
	s.mu.RUnlock()

	user, ok := r.Context().Value(ctxkey.User).(*model.User)
	if !ok || user == nil {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	subordinates := s.resolver.SubordinatesOf(r.Context(), user)

	conn, err := upgrader.Upgrade(rw, r, rw.Header())
	if err != nil {
		return
	}

	session := newSession(
		uuid.Must(uuid.NewV4()).String(),
		user.GetID(),
		r,
		conn,
		s.clock,
		s.config.SendTimeout,
		s.logger.With(zap.Int64("supervisorId", user.GetID())),
	)

	go session.writeLoop()
	if err := s.Connect(user, session, subordinates); err != nil {
		if errors.Is(err, ErrStreamerClosed) {
			session.closeWith(websocket.CloseServiceRestart, "Server is stopping...")
		} else {
			s.logger.Error("failed to send initial locations", zap.Error(err), zap.Int64("supervisorId", user.GetID()))
			session.closeWith(websocket.CloseInternalServerErr, "failed to send initial locations")
		}
		return
	}
	s.hub.Publish(hub.Message{
		Name: event.WSConnected,
		Fields: hub.Fields{
			"user_id": user.GetID(),
			"req":     r,
		},
	})

	session.readLoop()

	s.Disconnect(session)
	s.hub.Publish(hub.Message{
		Name: event.WSDisconnected,
		Fields: hub.Fields{
			"user_id": user.GetID(),
			"req":     r,
		},
	})
	session.Close()
}

// IsClosed ストリーマーが停止しているかどうか
func (s *Streamer) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Close ストリーマーを停止します
func (s *Streamer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrAlreadyClosed
	}
	s.closed = true

	for _, ch := range s.registry.Clear() {
		if sess, ok := ch.(*session); ok {
			sess.closeWith(websocket.CloseServiceRestart, "Server is stopping...")
		} else {
			ch.Close()
		}
	}
	return nil
}
