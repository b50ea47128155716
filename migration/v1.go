package migration

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/guregu/null"
	"gorm.io/gorm"
)

// v1 位置情報履歴テーブル追加
// 既存のユーザーテーブルに対して位置情報履歴を後付けする
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			return db.AutoMigrate(&v1UserLocation{})
		},
		Rollback: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&v1UserLocation{})
		},
	}
}

type v1UserLocation struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	UserID    int64      `gorm:"not null;index:idx_user_locations_user_id_created_at,priority:1"`
	Latitude  float64    `gorm:"not null"`
	Longitude float64    `gorm:"not null"`
	Accuracy  null.Float
	CreatedAt time.Time `gorm:"precision:6;not null;index:idx_user_locations_user_id_created_at,priority:2;index"`
}

func (*v1UserLocation) TableName() string {
	return "user_locations"
}
