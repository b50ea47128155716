package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jansampark/fieldwatch/migration"
	"github.com/jansampark/fieldwatch/repository"
)

var _ repository.Repository = (*Repository)(nil)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	hub    *hub.Hub
	logger *zap.Logger
	*userRepository
	*locationRepository
}

// NewGormRepository リポジトリ実装を初期化して生成します
//
// doMigrationがtrueの場合、スキーマのマイグレーションを行い、
// 初期化(新規作成)されたかどうかを返します
func NewGormRepository(db *gorm.DB, hub *hub.Hub, logger *zap.Logger, doMigration bool) (repo repository.Repository, init bool, err error) {
	if doMigration {
		if init, err = migration.Migrate(db); err != nil {
			return nil, false, err
		}
	}
	repo = &Repository{
		db:                 db,
		hub:                hub,
		logger:             logger.Named("repository"),
		userRepository:     makeUserRepository(db, hub),
		locationRepository: makeLocationRepository(db),
	}
	return repo, init, nil
}
