package model

import (
	"testing"
	"time"

	"github.com/guregu/null"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

func TestUserLocation_TableName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "user_locations", (&UserLocation{}).TableName())
}

func TestUserLocation_Sample(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	l := &UserLocation{
		ID:        10,
		UserID:    42,
		Latitude:  28.61,
		Longitude: 77.20,
		Accuracy:  null.FloatFrom(5),
		CreatedAt: now,
	}
	s := l.Sample()
	assert.EqualValues(t, 42, s.UserID)
	assert.Equal(t, 28.61, s.Latitude)
	assert.Equal(t, 77.20, s.Longitude)
	assert.True(t, s.Accuracy.Valid)
	assert.Equal(t, 5.0, s.Accuracy.Float64)
	assert.Equal(t, now, s.ObservedAt)
}

func TestLocationSample_AccuracyUnknown(t *testing.T) {
	t.Parallel()

	b, err := jsoniter.ConfigFastest.Marshal(LocationSample{UserID: 1})
	if assert.NoError(t, err) {
		assert.Contains(t, string(b), `"accuracy":null`)
	}
}
