package http

import (
	"net/http/httptest"
	"testing"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestContext(t *testing.T, headers map[string]string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(echo.GET, "/api/v1/orders", nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestActorFromRequest_ParsesIdentityHeaders(t *testing.T) {
	userID := kernel.NewUUID()
	areaID := kernel.NewUUID()

	actor, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserID:        userID.String(),
		headerUserRole:      "FRANCHISE_OWNER",
		headerFranchiseArea: areaID.String(),
	}))

	require.NoError(t, err)
	assert.True(t, actor.ID.IsEqual(userID))
	assert.Equal(t, user.RoleFranchiseOwner, actor.Role)
	require.NotNil(t, actor.FranchiseAreaID)
	assert.True(t, actor.FranchiseAreaID.IsEqual(areaID))
}

func TestActorFromRequest_AreaHeaderIsOptional(t *testing.T) {
	actor, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserID:   kernel.NewUUID().String(),
		headerUserRole: "ADMIN",
	}))

	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, actor.Role)
	assert.Nil(t, actor.FranchiseAreaID)
}

func TestActorFromRequest_MissingUserID(t *testing.T) {
	_, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserRole: "CUSTOMER",
	}))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestActorFromRequest_MalformedUserID(t *testing.T) {
	_, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserID:   "not-a-uuid",
		headerUserRole: "CUSTOMER",
	}))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestActorFromRequest_MissingRole(t *testing.T) {
	_, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserID: kernel.NewUUID().String(),
	}))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestActorFromRequest_UnknownRole(t *testing.T) {
	_, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserID:   kernel.NewUUID().String(),
		headerUserRole: "SUPERVISOR",
	}))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestActorFromRequest_MalformedAreaID(t *testing.T) {
	_, err := actorFromRequest(requestContext(t, map[string]string{
		headerUserID:        kernel.NewUUID().String(),
		headerUserRole:      "FRANCHISE_OWNER",
		headerFranchiseArea: "area-7",
	}))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
