package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

// UserContextKey is where Auth stores the authenticated *domain.User.
const UserContextKey = "current_user"

// Auth extracts the bearer token, authenticates it through the identity
// service, and injects the resolved user into the request context. A missing
// or malformed Authorization header gets the same generic message as a failed
// verification so the response never reveals which check rejected it.
func Auth(identity ports.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			user, err := identity.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				// Mapped centrally: ErrInvalidToken → 401, ErrEmailDomainNotAllowed → 403.
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
