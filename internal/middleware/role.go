package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// RequireRole returns a middleware that enforces that the authenticated
// caller holds one of the specified roles.  The role is not trusted from
// the token: it is looked up in the user store by the token's email on
// every privileged call, so a role revoked by an admin takes effect
// immediately.  Callers with a missing user record or a role outside the
// allowed set receive 403 Forbidden.  It assumes JWTAuth ran first.
func RequireRole(store repository.UserStore, roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := CallerEmail(c)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			u, err := store.GetByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "role lookup failed"})
			}
			if !allowed[u.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireSelf returns a middleware for self-service endpoints: the email
// in the named path parameter must equal the token's email, otherwise
// the request is rejected with 403.  It assumes JWTAuth ran first.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := CallerEmail(c)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			if !equalEmail(c.Param(param), email) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
