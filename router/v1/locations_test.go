package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/jansampark/fieldwatch/service/rbac/role"
)

func TestHandlers_PostMyLocation(t *testing.T) {
	t.Parallel()
	path := "/api/v1/location"
	repo, server := Setup(t)
	admin := CreateUser(t, repo, rand, role.Admin, nil)
	worker := CreateUser(t, repo, rand, role.BoothBoy, admin)
	token := T(t, worker)

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithJSON(echo.Map{"latitude": 35.0, "longitude": 139.0}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, bearer("invalid")).
			WithJSON(echo.Map{"latitude": 35.0, "longitude": 139.0}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("invalid scheme", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, "Basic "+token).
			WithJSON(echo.Map{"latitude": 35.0, "longitude": 139.0}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		cases := []echo.Map{
			{"longitude": 139.0},
			{"latitude": 35.0},
			{"latitude": 91.0, "longitude": 139.0},
			{"latitude": -90.5, "longitude": 139.0},
			{"latitude": 35.0, "longitude": 180.1},
			{"latitude": 35.0, "longitude": 139.0, "accuracy": -1.0},
			{"latitude": "north", "longitude": 139.0},
		}
		for i, body := range cases {
			t.Run(fmt.Sprint(i), func(t *testing.T) {
				t.Parallel()
				e := R(t, server)
				e.POST(path).
					WithHeader(echo.HeaderAuthorization, bearer(token)).
					WithJSON(body).
					Expect().
					Status(http.StatusBadRequest)
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand, role.BoothBoy, admin)
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, user))).
			WithJSON(echo.Map{"latitude": 35.681236, "longitude": 139.767125, "accuracy": 12.5}).
			Expect().
			Status(http.StatusNoContent)

		entry, ok := env.store.Get(user.ID)
		if assert.True(t, ok) {
			assert.Equal(t, 35.681236, entry.Latitude)
			assert.Equal(t, 139.767125, entry.Longitude)
			assert.True(t, entry.Accuracy.Valid)
			assert.Equal(t, 12.5, entry.Accuracy.Float64)
			assert.True(t, entry.IsOnline)
		}

		history, err := repo.GetUserLocationHistory(t.Context(), user.ID, entry.ObservedAt.Add(-1))
		if assert.NoError(t, err) && assert.Len(t, history, 1) {
			assert.Equal(t, 35.681236, history[0].Latitude)
		}
	})

	t.Run("success without accuracy", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand, role.Candidate, admin)
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, user))).
			WithJSON(echo.Map{"latitude": 0.0, "longitude": 0.0}).
			Expect().
			Status(http.StatusNoContent)

		entry, ok := env.store.Get(user.ID)
		if assert.True(t, ok) {
			assert.False(t, entry.Accuracy.Valid)
		}
	})

	t.Run("deactivated user", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand, role.BoothBoy, admin)
		assert.NoError(t, repo.DeactivateUser(t.Context(), user.ID))
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, user))).
			WithJSON(echo.Map{"latitude": 35.0, "longitude": 139.0}).
			Expect().
			Status(http.StatusForbidden)
	})
}

func TestHandlers_GetSubordinateLocations(t *testing.T) {
	t.Parallel()
	path := "/api/v1/locations"
	repo, server := Setup(t)
	admin := CreateUser(t, repo, rand, role.Admin, nil)
	reporting := CreateUser(t, repo, rand, role.BoothBoy, admin)
	silent := CreateUser(t, repo, rand, role.Candidate, admin)
	other := CreateUser(t, repo, rand, role.BoothBoy, nil)

	R(t, server).POST("/api/v1/location").
		WithHeader(echo.HeaderAuthorization, bearer(T(t, reporting))).
		WithJSON(echo.Map{"latitude": 35.0, "longitude": 139.0}).
		Expect().
		Status(http.StatusNoContent)
	R(t, server).POST("/api/v1/location").
		WithHeader(echo.HeaderAuthorization, bearer(T(t, other))).
		WithJSON(echo.Map{"latitude": 34.0, "longitude": 135.0}).
		Expect().
		Status(http.StatusNoContent)

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("forbidden for field roles", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, reporting))).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("admin sees reporting created users only", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		arr := e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array()
		arr.Length().IsEqual(1)

		first := arr.Value(0).Object()
		first.Value("userId").Number().IsEqual(reporting.ID)
		first.Value("username").String().IsEqual(reporting.Name)
		first.Value("isOnline").Boolean().IsTrue()
		first.Value("location").Object().Value("latitude").Number().IsEqual(35.0)
		first.Value("lastSeen").String().NotEmpty()
	})

	t.Run("subordinates without a report are omitted", func(t *testing.T) {
		t.Parallel()
		quiet := CreateUser(t, repo, rand, role.Admin, nil)
		CreateUser(t, repo, rand, role.BoothBoy, quiet)
		CreateUser(t, repo, rand, role.Candidate, quiet)
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, quiet))).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array().
			IsEmpty()
	})

	t.Run("admin without subordinates", func(t *testing.T) {
		t.Parallel()
		lonely := CreateUser(t, repo, rand, role.Admin, nil)
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, lonely))).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array().
			IsEmpty()
	})

	t.Run("super admin sees every reporting user", func(t *testing.T) {
		t.Parallel()
		sa := CreateUser(t, repo, rand, role.SuperAdmin, nil)
		e := R(t, server)
		arr := e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, sa))).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array()

		ids := map[int64]bool{}
		for _, v := range arr.Iter() {
			ids[int64(v.Object().Value("userId").Number().Raw())] = true
		}
		assert.True(t, ids[reporting.ID])
		assert.False(t, ids[silent.ID])
		assert.True(t, ids[other.ID])
		assert.False(t, ids[sa.ID])
	})
}

func TestHandlers_GetLocationHistory(t *testing.T) {
	t.Parallel()
	repo, server := Setup(t)
	admin := CreateUser(t, repo, rand, role.Admin, nil)
	worker := CreateUser(t, repo, rand, role.BoothBoy, admin)
	stranger := CreateUser(t, repo, rand, role.BoothBoy, nil)
	path := fmt.Sprintf("/api/v1/locations/%d/history", worker.ID)

	for i := range 3 {
		R(t, server).POST("/api/v1/location").
			WithHeader(echo.HeaderAuthorization, bearer(T(t, worker))).
			WithJSON(echo.Map{"latitude": 35.0 + float64(i), "longitude": 139.0}).
			Expect().
			Status(http.StatusNoContent)
	}

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("forbidden for field roles", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, worker))).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("not a subordinate", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(fmt.Sprintf("/api/v1/locations/%d/history", stranger.ID)).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET("/api/v1/locations/999999999/history").
			WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("invalid userID", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET("/api/v1/locations/abc/history").
			WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("invalid hours", func(t *testing.T) {
		t.Parallel()
		for _, hours := range []string{"0", "169", "-1", "abc"} {
			e := R(t, server)
			e.GET(path).
				WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
				WithQuery("hours", hours).
				Expect().
				Status(http.StatusBadRequest)
		}
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		obj := e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()
		obj.Value("userId").Number().IsEqual(worker.ID)
		obj.Value("hours").Number().IsEqual(24)
		obj.Value("totalCount").Number().IsEqual(3)
		locations := obj.Value("locations").Array()
		locations.Length().IsEqual(3)
		// 新しい順
		locations.Value(0).Object().Value("latitude").Number().IsEqual(37.0)
		locations.Value(2).Object().Value("latitude").Number().IsEqual(35.0)
	})

	t.Run("success with hours", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, bearer(T(t, admin))).
			WithQuery("hours", 168).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object().
			Value("hours").Number().IsEqual(168)
	})
}
