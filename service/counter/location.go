package counter

import (
	"sync/atomic"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jansampark/fieldwatch/event"
	"github.com/jansampark/fieldwatch/service/presence"
)

var (
	locationUpdatesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fieldwatch",
		Name:      "location_updates_total",
	})
	sweptRowsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fieldwatch",
		Name:      "swept_location_rows_total",
	})
	trackedSubjectsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fieldwatch",
		Name:      "tracked_subjects",
	})
)

// LocationCounter 位置情報更新数カウンター
type LocationCounter struct {
	store   *presence.Store
	updates atomic.Int64
}

// NewLocationCounter 位置情報更新数カウンターを生成します
func NewLocationCounter(hub *hub.Hub, store *presence.Store) *LocationCounter {
	lc := &LocationCounter{store: store}
	sub := hub.Subscribe(32, event.UserLocationUpdated, event.UserLocationsSwept)
	go func() {
		for e := range sub.Receiver {
			switch e.Topic() {
			case event.UserLocationUpdated:
				lc.updates.Add(1)
				locationUpdatesCounter.Inc()
			case event.UserLocationsSwept:
				sweptRowsCounter.Add(float64(e.Fields["deleted_rows"].(int64)))
			}
			trackedSubjectsGauge.Set(float64(lc.store.Len()))
		}
	}()
	return lc
}

// Get 起動してからの位置情報更新数を返します
func (lc *LocationCounter) Get() int64 {
	return lc.updates.Load()
}
