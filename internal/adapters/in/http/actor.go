package http

import (
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication. Auth itself
// happens upstream; these carry the already-resolved caller.
const (
	headerUserID        = "X-User-Id"
	headerUserRole      = "X-User-Role"
	headerFranchiseArea = "X-Franchise-Area-Id"
)

// actorFromRequest reads the authenticated caller from the identity headers.
func actorFromRequest(ctx echo.Context) (user.Actor, error) {
	rawID := ctx.Request().Header.Get(headerUserID)
	if rawID == "" {
		return user.Actor{}, errs.NewValueIsRequiredError(headerUserID + " header")
	}
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return user.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerUserID+" header", err)
	}

	rawRole := ctx.Request().Header.Get(headerUserRole)
	if rawRole == "" {
		return user.Actor{}, errs.NewValueIsRequiredError(headerUserRole + " header")
	}
	role, err := user.RoleFromString(rawRole)
	if err != nil {
		return user.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerUserRole+" header", err)
	}

	var areaID *kernel.UUID
	if rawArea := ctx.Request().Header.Get(headerFranchiseArea); rawArea != "" {
		parsed, areaErr := kernel.UUIDFromString(rawArea)
		if areaErr != nil {
			return user.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerFranchiseArea+" header", areaErr)
		}
		areaID = &parsed
	}

	return user.NewActor(id, role, areaID)
}
