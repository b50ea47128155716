package counter

import (
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jansampark/fieldwatch/event"
)

var connectedObserversGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "fieldwatch",
	Name:      "connected_observers",
})

// ObserverCounter 位置情報ストリームに接続中の監視者数カウンター
type ObserverCounter struct {
	counters map[int64]int
	mu       sync.Mutex
}

// NewObserverCounter 監視者数カウンターを生成します
func NewObserverCounter(hub *hub.Hub) *ObserverCounter {
	oc := &ObserverCounter{
		counters: map[int64]int{},
	}
	sub := hub.Subscribe(8, event.WSConnected, event.WSDisconnected)
	go func() {
		for e := range sub.Receiver {
			switch e.Topic() {
			case event.WSConnected:
				oc.inc(e.Fields["user_id"].(int64))
			case event.WSDisconnected:
				oc.dec(e.Fields["user_id"].(int64))
			}
		}
	}()
	return oc
}

func (oc *ObserverCounter) inc(userID int64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.counters[userID]++
	if oc.counters[userID] == 1 {
		connectedObserversGauge.Inc()
	}
}

func (oc *ObserverCounter) dec(userID int64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	c, ok := oc.counters[userID]
	if !ok {
		return
	}
	if c <= 1 {
		delete(oc.counters, userID)
		connectedObserversGauge.Dec()
		return
	}
	oc.counters[userID] = c - 1
}

// Get 接続中の監視者数を返します
func (oc *ObserverCounter) Get() int {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return len(oc.counters)
}
