package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for the authenticated user.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles GET /me. The Auth middleware has already verified the token and
// materialized the account, so this is a pure read of the request context —
// but it is the call that provisions first-time users as a side effect of
// authentication.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
