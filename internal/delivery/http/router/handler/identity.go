// Package handler contains the echo handlers for the HTTP delivery.
package handler

import (
	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// currentUser resolves the caller's user record from the identity the proxy
// asserted. Routes using it sit behind the Require identity middleware, so a
// missing identity here is a programming error surfaced as 401.
func currentUser(c echo.Context, userUC usecase.UserUsecase) (*entity.User, error) {
	externalID := deliverycontext.GetExternalID(c.Request().Context())
	if externalID == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}

	profile, err := userUC.GetProfile(c.Request().Context(), externalID)
	if err != nil {
		return nil, err
	}

	return profile.User, nil
}
