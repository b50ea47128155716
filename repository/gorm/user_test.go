package gorm

import (
	"testing"

	"github.com/jansampark/fieldwatch/event"
	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/service/rbac/role"
)

func TestUserRepository_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, assert, require := setup(t)
		sub := repo.(*Repository).hub.Subscribe(1, event.UserCreated)

		u, err := repo.CreateUser(t.Context(), repository.CreateUserArgs{
			Name:     "alice",
			FullName: "Alice",
			Role:     role.Admin,
		})
		require.NoError(err)
		assert.NotZero(u.ID)
		assert.Equal("alice", u.Name)
		assert.Equal(role.Admin, u.Role)
		assert.True(u.IsActive)
		assert.False(u.CreatedBy.Valid)

		msg := <-sub.Receiver
		assert.Equal(u.ID, msg.Fields["user_id"])
	})

	t.Run("duplicated name", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)
		mustMakeUser(t, repo, "bob", role.Admin, 0)

		_, err := repo.CreateUser(t.Context(), repository.CreateUserArgs{Name: "bob", Role: role.BoothBoy})
		assert.ErrorIs(err, repository.ErrAlreadyExists)
	})

	t.Run("invalid args", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)

		_, err := repo.CreateUser(t.Context(), repository.CreateUserArgs{Name: "", Role: role.Admin})
		assert.True(repository.IsArgError(err))
		_, err = repo.CreateUser(t.Context(), repository.CreateUserArgs{Name: "carol"})
		assert.True(repository.IsArgError(err))
	})
}

func TestUserRepository_GetUser(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)
	u := mustMakeSuperAdmin(t, repo)

	_, err := repo.GetUser(t.Context(), 0)
	assert.ErrorIs(err, repository.ErrNotFound)
	_, err = repo.GetUser(t.Context(), u.ID+1000)
	assert.ErrorIs(err, repository.ErrNotFound)

	got, err := repo.GetUser(t.Context(), u.ID)
	require.NoError(err)
	assert.Equal(u.Name, got.Name)
	assert.Equal(role.SuperAdmin, got.Role)
}

func TestUserRepository_GetUserByName(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)
	u := mustMakeUser(t, repo, "dave", role.BoothBoy, 0)

	_, err := repo.GetUserByName(t.Context(), "")
	assert.ErrorIs(err, repository.ErrNotFound)
	_, err = repo.GetUserByName(t.Context(), "nobody")
	assert.ErrorIs(err, repository.ErrNotFound)

	got, err := repo.GetUserByName(t.Context(), "dave")
	require.NoError(err)
	assert.Equal(u.ID, got.ID)
}

func TestUserRepository_GetUsersByIDs(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)
	u1 := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
	u2 := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
	u3 := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
	require.NoError(repo.DeactivateUser(t.Context(), u3.ID))

	users, err := repo.GetUsersByIDs(t.Context(), nil)
	require.NoError(err)
	assert.Empty(users)

	users, err = repo.GetUsersByIDs(t.Context(), []int64{u1.ID, u2.ID, u3.ID, u3.ID + 1000})
	require.NoError(err)
	if assert.Len(users, 2) {
		assert.Equal(u1.ID, users[0].ID)
		assert.Equal(u2.ID, users[1].ID)
	}
}

func TestUserRepository_GetActiveUserIDs(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)
	admin := mustMakeUser(t, repo, rand, role.Admin, 0)
	other := mustMakeUser(t, repo, rand, role.Admin, 0)
	w1 := mustMakeUser(t, repo, rand, role.BoothBoy, admin.ID)
	w2 := mustMakeUser(t, repo, rand, role.Candidate, admin.ID)
	w3 := mustMakeUser(t, repo, rand, role.BoothBoy, other.ID)
	w4 := mustMakeUser(t, repo, rand, role.BoothBoy, admin.ID)
	require.NoError(repo.DeactivateUser(t.Context(), w4.ID))

	ids, err := repo.GetActiveUserIDs(t.Context())
	require.NoError(err)
	assert.ElementsMatch([]int64{admin.ID, other.ID, w1.ID, w2.ID, w3.ID}, ids)

	ids, err = repo.GetActiveUserIDsCreatedBy(t.Context(), admin.ID)
	require.NoError(err)
	assert.ElementsMatch([]int64{w1.ID, w2.ID}, ids)

	ids, err = repo.GetActiveUserIDsCreatedBy(t.Context(), w1.ID)
	require.NoError(err)
	assert.Empty(ids)
}

func TestUserRepository_DeactivateUser(t *testing.T) {
	t.Parallel()

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)
		assert.ErrorIs(repo.DeactivateUser(t.Context(), 0), repository.ErrNilID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		repo, assert, _ := setup(t)
		assert.ErrorIs(repo.DeactivateUser(t.Context(), 9999), repository.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, assert, require := setup(t)
		u := mustMakeUser(t, repo, rand, role.BoothBoy, 0)
		sub := repo.(*Repository).hub.Subscribe(1, event.UserDeactivated)

		// キャッシュに載せる
		_, err := repo.GetUser(t.Context(), u.ID)
		require.NoError(err)

		require.NoError(repo.DeactivateUser(t.Context(), u.ID))
		got, err := repo.GetUser(t.Context(), u.ID)
		require.NoError(err)
		assert.False(got.IsActive)

		var stored model.User
		require.NoError(getDB(repo).First(&stored, u.ID).Error)
		assert.False(stored.IsActive)

		msg := <-sub.Receiver
		assert.Equal(u.ID, msg.Fields["user_id"])
	})
}

