package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/jansampark/fieldwatch/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // 位置情報履歴テーブル追加
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のスキーマの全テーブルのモデル構造体を記述すること
func AllTables() []interface{} {
	return []interface{}{
		&model.UserLocation{},
		&model.User{},
	}
}
