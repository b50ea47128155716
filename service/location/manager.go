package location

import (
	"context"
	"errors"
	"time"

	"github.com/guregu/null"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/service/presence"
)

const (
	// MinHistoryHours 履歴取得の最小遡り時間
	MinHistoryHours = 1
	// MaxHistoryHours 履歴取得の最大遡り時間
	MaxHistoryHours = 168
	// DefaultHistoryHours 履歴取得のデフォルト遡り時間
	DefaultHistoryHours = 24
)

var (
	// ErrForbidden 指定したユーザーは配下にいません
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidHours 遡り時間が範囲外です
	ErrInvalidHours = errors.New("hours must be between 1 and 168")
	// ErrInvalidLocation 緯度経度または精度が範囲外です
	ErrInvalidLocation = errors.New("invalid location")
)

// Broadcaster 位置情報の配信先
type Broadcaster interface {
	// BroadcastLocation 指定したユーザーを配下に持つ監視者に最新位置を送信します
	BroadcastLocation(userID int64, entry presence.Entry) int
	// BroadcastUserStatus 指定したユーザーを配下に持つ監視者にオンライン状態を送信します
	BroadcastUserStatus(userID int64, online bool) int
	// DisconnectUser 指定した監視者の接続を切断します
	DisconnectUser(supervisorID int64) bool
}

// SubordinateLocation 配下ユーザーの情報と最新位置
type SubordinateLocation struct {
	UserID   int64           `json:"userId"`
	Username string          `json:"username"`
	FullName string          `json:"fullName"`
	Role     string          `json:"role"`
	Location *presence.Entry `json:"location"`
	IsOnline bool            `json:"isOnline"`
	LastSeen null.Time       `json:"lastSeen"`
}

// Manager 位置情報マネージャー
type Manager interface {
	// UpdateLocation ユーザーの位置情報を更新し、配下に持つ監視者に配信します
	//
	// 履歴への追記に失敗してもログに出力するのみで、最新位置の更新と配信は行われます。
	// 値が範囲外の場合はErrInvalidLocationを返します。
	UpdateLocation(ctx context.Context, user *model.User, lat, lon float64, accuracy null.Float) (presence.Entry, error)
	// GetSubordinateLocations 監視者の配下ユーザーのうち、最新位置を持つユーザーの情報と最新位置を取得します
	GetSubordinateLocations(ctx context.Context, supervisor *model.User) ([]*SubordinateLocation, error)
	// GetHistory 配下ユーザーの位置情報履歴を新しい順に取得します
	//
	// 配下にいない場合はErrForbiddenを、hoursが範囲外の場合はErrInvalidHoursを返します
	GetHistory(ctx context.Context, supervisor *model.User, userID int64, hours int) ([]*model.UserLocation, error)
	// RemoveUser ユーザーの最新位置を破棄し、監視者としての接続も切断します
	RemoveUser(userID int64)
}

// HistorySince hours時間前の時刻を返します
func HistorySince(now time.Time, hours int) time.Time {
	return now.Add(-time.Duration(hours) * time.Hour)
}
