package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/event"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/service/presence"
)

const (
	// DefaultInterval 定期実行間隔のデフォルト値
	DefaultInterval = 1 * time.Hour
	// DefaultBackoff 失敗後の再実行までの待機時間のデフォルト値
	DefaultBackoff = 5 * time.Minute
)

// ErrAlreadyStarted 既に起動しています
var ErrAlreadyStarted = errors.New("sweeper already started")

// StatusBroadcaster オンライン状態の配信先
type StatusBroadcaster interface {
	BroadcastUserStatus(userID int64, online bool) int
}

// Config 掃除設定
type Config struct {
	// Interval 成功時の実行間隔
	Interval time.Duration
	// Backoff 失敗時の再実行までの待機時間
	Backoff time.Duration
	// Retention 位置情報を保持する時間
	Retention time.Duration
}

// Result 1回の掃除の結果
type Result struct {
	DeletedRows  int64         `json:"deletedRows"`
	EvictedUsers []int64       `json:"evictedUsers"`
	StartedAt    time.Time     `json:"startedAt"`
	Duration     time.Duration `json:"duration"`
}

// Sweeper 古い位置情報を定期的に削除します
type Sweeper struct {
	locations repository.LocationRepository
	store     *presence.Store
	bc        StatusBroadcaster
	hub       *hub.Hub
	clock     clock.Clock
	logger    *zap.Logger
	config    Config

	runMu  sync.Mutex
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper Sweeperを生成します
func NewSweeper(locations repository.LocationRepository, store *presence.Store, bc StatusBroadcaster, hub *hub.Hub, c clock.Clock, logger *zap.Logger, config Config) *Sweeper {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Backoff <= 0 {
		config.Backoff = DefaultBackoff
	}
	if config.Retention <= 0 {
		config.Retention = presence.DefaultRetention
	}
	return &Sweeper{
		locations: locations,
		store:     store,
		bc:        bc,
		hub:       hub,
		clock:     c,
		logger:    logger.Named("sweeper"),
		config:    config,
	}
}

// Start 定期実行を開始します
//
// ctxがキャンセルされるかShutdownが呼ばれるまで、直ちに1回実行した後Intervalごとに実行します
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)
	s.logger.Info("sweeper started", zap.Duration("interval", s.config.Interval), zap.Duration("retention", s.config.Retention))
	return nil
}

// Shutdown 定期実行を停止し、実行中の掃除の終了を待ちます
func (s *Sweeper) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		s.logger.Info("sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		wait := s.config.Interval
		if _, err := s.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("sweep failed", zap.Error(err), zap.Duration("retryIn", s.config.Backoff))
			wait = s.config.Backoff
		}

		t := s.clock.Timer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// RunOnce 掃除を1回実行します
//
// 履歴の削除に失敗した場合も最新位置の削除は行われ、エラーが返ります
func (s *Sweeper) RunOnce(ctx context.Context) (*Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	start := s.clock.Now()
	result := &Result{StartedAt: start}

	deleted, deleteErr := s.locations.DeleteUserLocationsBefore(ctx, start.Add(-s.config.Retention))
	if deleteErr == nil {
		result.DeletedRows = deleted
	}

	result.EvictedUsers = s.store.EvictStale(s.config.Retention)
	for _, id := range result.EvictedUsers {
		s.bc.BroadcastUserStatus(id, false)
		s.hub.Publish(hub.Message{
			Name: event.UserOffline,
			Fields: hub.Fields{
				"user_id":  id,
				"datetime": start,
			},
		})
	}
	result.Duration = s.clock.Since(start)

	if deleteErr != nil {
		return result, fmt.Errorf("failed to delete old locations: %w", deleteErr)
	}

	s.hub.Publish(hub.Message{
		Name: event.UserLocationsSwept,
		Fields: hub.Fields{
			"deleted_rows":  result.DeletedRows,
			"evicted_users": result.EvictedUsers,
		},
	})
	s.logger.Info("sweep completed",
		zap.Int64("deletedRows", result.DeletedRows),
		zap.Int("evictedUsers", len(result.EvictedUsers)),
		zap.Duration("duration", result.Duration))
	return result, nil
}
