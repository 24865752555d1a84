package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentit/campus-rentals-api/internal/api/middleware"
	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. Its absence
// means the route was registered without the middleware — fail closed.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return user, nil
}
