package presence

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/guregu/null"

	"github.com/jansampark/fieldwatch/model"
)

const (
	// DefaultOnlineThreshold 最終報告からオンラインとみなされる時間のデフォルト値
	DefaultOnlineThreshold = 2 * time.Minute
	// DefaultRetention ストアに最新位置を保持する時間のデフォルト値
	DefaultRetention = 24 * time.Hour
)

// Entry ユーザーの最新の位置情報
type Entry struct {
	model.LocationSample
	// IsOnline 読み出し時点でオンラインかどうか
	IsOnline bool `json:"isOnline"`
}

// Store ユーザーごとの最新位置情報ストア
//
// 全ての操作は単一のミューテックスで直列化される
type Store struct {
	clock           clock.Clock
	onlineThreshold time.Duration

	mu      sync.Mutex
	entries map[int64]model.LocationSample
}

// NewStore Storeを生成します
func NewStore(c clock.Clock, onlineThreshold time.Duration) *Store {
	if onlineThreshold <= 0 {
		onlineThreshold = DefaultOnlineThreshold
	}
	return &Store{
		clock:           c,
		onlineThreshold: onlineThreshold,
		entries:         make(map[int64]model.LocationSample),
	}
}

// OnlineThreshold オンライン判定の閾値を返します
func (s *Store) OnlineThreshold() time.Duration {
	return s.onlineThreshold
}

// Update ユーザーの最新位置を上書きします
//
// 観測時刻はストアへの到着時刻で、後から到着した報告が常に優先される
func (s *Store) Update(userID int64, lat, lon float64, accuracy null.Float) Entry {
	e, _ := s.Report(userID, lat, lon, accuracy)
	return e
}

// Report ユーザーの最新位置を上書きし、この報告でオフラインからオンラインになったかどうかを返します
//
// 直前のエントリが存在しないか、オフラインだった場合にcameOnlineがtrueになる
func (s *Store) Report(userID int64, lat, lon float64, accuracy null.Float) (entry Entry, cameOnline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	prev, existed := s.entries[userID]
	cameOnline = !existed || !s.entry(prev, now).IsOnline

	sample := model.LocationSample{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		Accuracy:   accuracy,
		ObservedAt: now,
	}
	s.entries[userID] = sample
	return s.entry(sample, now), cameOnline
}

// Get ユーザーの最新位置を取得します
func (s *Store) Get(userID int64) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample, ok := s.entries[userID]
	if !ok {
		return Entry{}, false
	}
	return s.entry(sample, s.clock.Now()), true
}

// GetAll 全ユーザーの最新位置のスナップショットを取得します
func (s *Store) GetAll() map[int64]Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	result := make(map[int64]Entry, len(s.entries))
	for id, sample := range s.entries {
		result[id] = s.entry(sample, now)
	}
	return result
}

// EvictStale 最終報告からmaxAgeより長く経過したエントリを削除し、削除したユーザーIDを返します
func (s *Store) EvictStale(maxAge time.Duration) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	evicted := make([]int64, 0)
	for id, sample := range s.entries {
		if now.Sub(sample.ObservedAt) > maxAge {
			delete(s.entries, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// Remove ユーザーのエントリを削除します
func (s *Store) Remove(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[userID]
	delete(s.entries, userID)
	return ok
}

// Len エントリ数を返します
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) entry(sample model.LocationSample, now time.Time) Entry {
	return Entry{
		LocationSample: sample,
		IsOnline:       now.Sub(sample.ObservedAt) < s.onlineThreshold,
	}
}
