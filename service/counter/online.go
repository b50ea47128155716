package counter

import (
	"sync"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jansampark/fieldwatch/event"
)

var (
	onlineTransitionsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fieldwatch",
		Name:      "subject_online_transitions_total",
	})
	offlineTransitionsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fieldwatch",
		Name:      "subject_offline_transitions_total",
	})
	reportingSubjectsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fieldwatch",
		Name:      "reporting_subjects",
	})
)

// OnlineCounter 報告中のユーザーカウンター
//
// オンラインになってから、退去または無効化でオフラインになるまでの間を報告中とみなす
type OnlineCounter struct {
	onlineSince map[int64]time.Time
	mu          sync.Mutex
}

// NewOnlineCounter 報告中のユーザーカウンターを生成します
func NewOnlineCounter(hub *hub.Hub) *OnlineCounter {
	oc := &OnlineCounter{
		onlineSince: map[int64]time.Time{},
	}
	sub := hub.Subscribe(32, event.UserOnline, event.UserOffline)
	go func() {
		for e := range sub.Receiver {
			userID := e.Fields["user_id"].(int64)
			datetime, _ := e.Fields["datetime"].(time.Time)
			switch e.Topic() {
			case event.UserOnline:
				oc.online(userID, datetime)
			case event.UserOffline:
				oc.offline(userID)
			}
		}
	}()
	return oc
}

func (oc *OnlineCounter) online(userID int64, datetime time.Time) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	onlineTransitionsCounter.Inc()
	if _, ok := oc.onlineSince[userID]; !ok {
		oc.onlineSince[userID] = datetime
		reportingSubjectsGauge.Inc()
	}
}

func (oc *OnlineCounter) offline(userID int64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	offlineTransitionsCounter.Inc()
	if _, ok := oc.onlineSince[userID]; ok {
		delete(oc.onlineSince, userID)
		reportingSubjectsGauge.Dec()
	}
}

// OnlineSince 指定したユーザーが報告を始めた時刻を返します
func (oc *OnlineCounter) OnlineSince(userID int64) (time.Time, bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	t, ok := oc.onlineSince[userID]
	return t, ok
}

// Get 報告中のユーザー数を返します
func (oc *OnlineCounter) Get() int {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return len(oc.onlineSince)
}
