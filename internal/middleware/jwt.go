package middleware // contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// emailKey is the context key under which the verified token email is
// stored for downstream middleware and handlers.
const emailKey = "email"

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's email claim into the request context.
// The provided secret must match the one used when issuing tokens.
// Handlers behind this middleware can read the caller's identity via
// CallerEmail.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret.  The callback supplies the
			// signing key and rejects any other signing method.  Expiry is
			// checked by the library as part of Valid.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			email := claimString(claims, "email")
			if email == "" {
				email = claimString(claims, "sub")
			}
			if email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			c.Set(emailKey, strings.ToLower(email))
			return next(c)
		}
	}
}

// CallerEmail returns the verified email of the authenticated caller, or
// an empty string when the request did not pass JWTAuth.
func CallerEmail(c echo.Context) string {
	if v, ok := c.Get(emailKey).(string); ok {
		return v
	}
	return ""
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
