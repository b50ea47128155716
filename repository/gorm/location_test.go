package gorm

import (
	"math"
	"testing"
	"time"

	"github.com/guregu/null"

	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/service/rbac/role"
)

func mustAppendLocation(t *testing.T, repo repository.Repository, userID int64, lat float64, at time.Time) {
	t.Helper()
	err := repo.CreateUserLocation(t.Context(), model.LocationSample{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  139.0,
		ObservedAt: at,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocationRepository_CreateUserLocation(t *testing.T) {
	t.Parallel()

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)

		err := repo.CreateUserLocation(t.Context(), model.LocationSample{Latitude: 1, Longitude: 1, ObservedAt: time.Now()})
		assert.ErrorIs(err, repository.ErrNilID)
	})

	t.Run("invalid args", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)
		u := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
		now := time.Now()

		cases := []model.LocationSample{
			{UserID: u.ID, Latitude: 91, Longitude: 0, ObservedAt: now},
			{UserID: u.ID, Latitude: math.NaN(), Longitude: 0, ObservedAt: now},
			{UserID: u.ID, Latitude: 0, Longitude: -181, ObservedAt: now},
			{UserID: u.ID, Latitude: 0, Longitude: 0, Accuracy: null.FloatFrom(-1), ObservedAt: now},
			{UserID: u.ID, Latitude: 0, Longitude: 0},
		}
		for _, c := range cases {
			assert.True(repository.IsArgError(repo.CreateUserLocation(t.Context(), c)), c)
		}

		var count int64
		getDB(repo).Model(&model.UserLocation{}).Count(&count)
		assert.Zero(count)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, assert, require := setup(t)
		u := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
		at := time.Date(2026, 4, 1, 9, 30, 0, 123456000, time.UTC)

		require.NoError(repo.CreateUserLocation(t.Context(), model.LocationSample{
			UserID:     u.ID,
			Latitude:   35.681236,
			Longitude:  139.767125,
			Accuracy:   null.FloatFrom(8.5),
			ObservedAt: at,
		}))
		require.NoError(repo.CreateUserLocation(t.Context(), model.LocationSample{
			UserID:     u.ID,
			Latitude:   35.0,
			Longitude:  139.0,
			ObservedAt: at.Add(time.Second),
		}))

		var locations []*model.UserLocation
		require.NoError(getDB(repo).Order("id").Find(&locations).Error)
		if assert.Len(locations, 2) {
			assert.Equal(u.ID, locations[0].UserID)
			assert.Equal(35.681236, locations[0].Latitude)
			assert.Equal(139.767125, locations[0].Longitude)
			assert.Equal(null.FloatFrom(8.5), locations[0].Accuracy)
			assert.True(at.Equal(locations[0].CreatedAt))
			assert.False(locations[1].Accuracy.Valid)
		}
	})
}

func TestLocationRepository_GetUserLocationHistory(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)
	u := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
	other := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	mustAppendLocation(t, repo, u.ID, 10, now.Add(-25*time.Hour))
	mustAppendLocation(t, repo, u.ID, 11, now.Add(-2*time.Hour))
	mustAppendLocation(t, repo, u.ID, 12, now.Add(-1*time.Hour))
	mustAppendLocation(t, repo, u.ID, 13, now)
	mustAppendLocation(t, repo, other.ID, 20, now)

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		locations, err := repo.GetUserLocationHistory(t.Context(), 0, now.Add(-24*time.Hour))
		assert.NoError(err)
		assert.Empty(locations)
	})

	t.Run("within window, newest first", func(t *testing.T) {
		t.Parallel()
		locations, err := repo.GetUserLocationHistory(t.Context(), u.ID, now.Add(-24*time.Hour))
		require.NoError(err)
		if assert.Len(locations, 3) {
			assert.Equal(13.0, locations[0].Latitude)
			assert.Equal(12.0, locations[1].Latitude)
			assert.Equal(11.0, locations[2].Latitude)
			assert.Equal(time.UTC, locations[0].CreatedAt.Location())
		}
	})

	t.Run("inclusive lower bound", func(t *testing.T) {
		t.Parallel()
		locations, err := repo.GetUserLocationHistory(t.Context(), u.ID, now.Add(-1*time.Hour))
		require.NoError(err)
		assert.Len(locations, 2)
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()
		locations, err := repo.GetUserLocationHistory(t.Context(), u.ID+other.ID+100, now.Add(-24*time.Hour))
		require.NoError(err)
		assert.NotNil(locations)
		assert.Empty(locations)
	})
}

func TestLocationRepository_DeleteUserLocationsBefore(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)
	u := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	mustAppendLocation(t, repo, u.ID, 1, now.Add(-48*time.Hour))
	mustAppendLocation(t, repo, u.ID, 2, now.Add(-25*time.Hour))
	mustAppendLocation(t, repo, u.ID, 3, now.Add(-24*time.Hour))
	mustAppendLocation(t, repo, u.ID, 4, now)

	n, err := repo.DeleteUserLocationsBefore(t.Context(), now.Add(-24*time.Hour))
	require.NoError(err)
	assert.EqualValues(2, n)

	locations, err := repo.GetUserLocationHistory(t.Context(), u.ID, now.Add(-72*time.Hour))
	require.NoError(err)
	if assert.Len(locations, 2) {
		assert.Equal(4.0, locations[0].Latitude)
		assert.Equal(3.0, locations[1].Latitude)
	}

	n, err = repo.DeleteUserLocationsBefore(t.Context(), now.Add(-24*time.Hour))
	require.NoError(err)
	assert.Zero(n)
}
