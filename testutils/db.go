package testutils

import (
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jansampark/fieldwatch/migration"
	"github.com/jansampark/fieldwatch/utils/gormzap"
)

// OpenTestDB テスト用のインメモリデータベースを生成し、マイグレーションを実行します
func OpenTestDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.Must(uuid.NewV4()).String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormzap.New(zap.NewNop()),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if _, err := migration.Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// NewTestDB テスト用のインメモリデータベースを生成します
//
// テスト終了時に自動で閉じられます
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenTestDB()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
