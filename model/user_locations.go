package model

import (
	"time"

	"github.com/guregu/null"
)

// UserLocation ユーザー位置情報の履歴レコード
//
// 一度挿入されたレコードは更新されない
type UserLocation struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64      `gorm:"not null;index:idx_user_locations_user_id_created_at,priority:1" json:"userId"`
	Latitude  float64    `gorm:"not null" json:"latitude"`
	Longitude float64    `gorm:"not null" json:"longitude"`
	Accuracy  null.Float `json:"accuracy"`
	CreatedAt time.Time  `gorm:"precision:6;not null;index:idx_user_locations_user_id_created_at,priority:2;index" json:"createdAt"`
}

// TableName UserLocation構造体のテーブル名
func (*UserLocation) TableName() string {
	return "user_locations"
}

// Sample 位置サンプルに変換します
func (l *UserLocation) Sample() LocationSample {
	return LocationSample{
		UserID:     l.UserID,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		Accuracy:   l.Accuracy,
		ObservedAt: l.CreatedAt,
	}
}

// LocationSample 1回の位置報告
//
// Accuracyが無効値の場合は「不明」を表し、0とは区別される
type LocationSample struct {
	UserID     int64      `json:"userId"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   null.Float `json:"accuracy"`
	ObservedAt time.Time  `json:"observedAt"`
}
