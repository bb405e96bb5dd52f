package user_test

import (
	"errors"
	"testing"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create active customer in a franchise area", func(t *testing.T) {
		areaID := kernel.NewUUID()

		u, err := user.NewUser("Asha Rao", "asha@example.com", "+919800000001", user.RoleCustomer, &areaID)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.NoError(t, u.ID().Validate())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.True(t, u.IsActive())
		require.NotNil(t, u.FranchiseAreaID())
		assert.True(t, u.FranchiseAreaID().IsEqual(areaID))
	})

	t.Run("should create global agent without a franchise area", func(t *testing.T) {
		u, err := user.NewUser("Vikram Singh", "vikram@example.com", "", user.RoleServiceAgent, nil)

		require.NoError(t, err)
		assert.True(t, u.IsGlobalAgent())
	})

	t.Run("should fail without a name", func(t *testing.T) {
		_, err := user.NewUser("", "a@example.com", "", user.RoleCustomer, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := user.NewUser("A", "a@example.com", "", user.RoleUnknown, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestUser_CanServeArea(t *testing.T) {
	areaID := kernel.NewUUID()
	otherAreaID := kernel.NewUUID()

	t.Run("area agent serves only its own area", func(t *testing.T) {
		u, err := user.NewUser("Agent", "agent@example.com", "", user.RoleServiceAgent, &areaID)
		require.NoError(t, err)

		assert.True(t, u.CanServeArea(areaID))
		assert.False(t, u.CanServeArea(otherAreaID))
	})

	t.Run("global agent serves any area", func(t *testing.T) {
		u, err := user.NewUser("Global", "global@example.com", "", user.RoleServiceAgent, nil)
		require.NoError(t, err)

		assert.True(t, u.CanServeArea(areaID))
		assert.True(t, u.CanServeArea(otherAreaID))
	})

	t.Run("inactive agent serves nothing", func(t *testing.T) {
		u, err := user.NewUser("Agent", "agent@example.com", "", user.RoleServiceAgent, &areaID)
		require.NoError(t, err)
		u.Deactivate()

		assert.False(t, u.CanServeArea(areaID))
	})

	t.Run("non-agent roles never serve", func(t *testing.T) {
		u, err := user.NewUser("Owner", "owner@example.com", "", user.RoleFranchiseOwner, &areaID)
		require.NoError(t, err)

		assert.False(t, u.CanServeArea(areaID))
	})
}

func TestUser_Actor(t *testing.T) {
	t.Run("should expose the authorization view", func(t *testing.T) {
		areaID := kernel.NewUUID()
		u, err := user.NewUser("Owner", "owner@example.com", "", user.RoleFranchiseOwner, &areaID)
		require.NoError(t, err)

		actor := u.Actor()

		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID.IsEqual(u.ID()))
		assert.Equal(t, user.RoleFranchiseOwner, actor.Role)
		assert.False(t, actor.IsAdmin())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should round-trip every valid role", func(t *testing.T) {
		for _, r := range []user.Role{user.RoleAdmin, user.RoleFranchiseOwner, user.RoleServiceAgent, user.RoleCustomer} {
			parsed, err := user.RoleFromString(r.String())

			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := user.RoleFromString("SUPERVISOR")

		require.Error(t, err)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create validated actor", func(t *testing.T) {
		a, err := user.NewActor(kernel.NewUUID(), user.RoleAdmin, nil)

		require.NoError(t, err)
		assert.True(t, a.IsAdmin())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := user.NewActor(kernel.UUID{}, user.RoleAdmin, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore a stored user", func(t *testing.T) {
		id := kernel.NewUUID()
		created := time.Now().Add(-time.Hour)

		u, err := user.RestoreUser(id, "Asha Rao", "asha@example.com", "", user.RoleCustomer, nil, true, created)

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.True(t, u.CreatedAt().Equal(created))
	})

	t.Run("should fail on invalid stored role", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.NewUUID(), "A", "a@example.com", "", user.RoleUnknown, nil, true, time.Now())

		require.Error(t, err)
	})
}
