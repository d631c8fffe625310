package middleware

import (
	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// IdentityMiddleware extracts the caller identity asserted by the fronting
// auth proxy. The proxy strips any client-supplied X-External-Id header, so
// its presence here is trusted.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Extract copies the identity header into the request context when present.
// Anonymous requests pass through untouched.
func (m *IdentityMiddleware) Extract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		externalID := c.Request().Header.Get(deliverycontext.HeaderXExternalID)
		if externalID != "" {
			ctx := deliverycontext.WithExternalID(c.Request().Context(), externalID)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// Require rejects requests that carry no identity.
func (m *IdentityMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetExternalID(c.Request().Context()) == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "missing or invalid external identity")
		}

		return next(c)
	}
}
