package gormutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type item struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func TestRecordExists(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open("file:gormutil_test?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&item{}))
	require.NoError(t, db.Create(&[]item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}).Error)

	exists, err := RecordExists(db, &item{ID: 1})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = RecordExists(db, &item{ID: 3})
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = RecordExists(db, map[string]any{"name": "b"}, "items")
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := Count(db.Model(&item{}))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
