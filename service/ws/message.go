package ws

import (
	"time"

	"github.com/jansampark/fieldwatch/service/presence"
)

const (
	// LocationUpdated 配下ユーザーの位置情報が更新された
	LocationUpdated = "LOCATION_UPDATED"
	// InitialLocations 接続直後の配下ユーザーの位置情報一覧
	InitialLocations = "INITIAL_LOCATIONS"
	// UserStatus 配下ユーザーのオンライン状態が変化した
	UserStatus = "USER_STATUS"
)

type rawMessage struct {
	t    int
	data []byte
}

type message struct {
	Type string `json:"type"`
	Body any    `json:"body"`
}

func makeMessage(t string, b any) (m *message) {
	return &message{
		Type: t,
		Body: b,
	}
}

func (m *message) toJSON() (b []byte) {
	b, _ = json.Marshal(m)
	return
}

type initialLocationsBody struct {
	Locations []presence.Entry `json:"locations"`
}

type userStatusBody struct {
	UserID   int64     `json:"userId"`
	IsOnline bool      `json:"isOnline"`
	Datetime time.Time `json:"datetime"`
}
