package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type UserHandler struct {
	logger      *zap.Logger
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(logger *zap.Logger, userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{logger: logger, userUseCase: userUseCase}
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), user.Actor(), user.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Get handles GET /api/v1/users/:id. Self or admin.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), user.Actor(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PATCH /api/v1/users/me.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var params dto.UpdateProfileParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	profile, err := h.userUseCase.UpdateProfile(c.Request().Context(), user.Actor(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Withdraw handles DELETE /api/v1/users/me. The account is deactivated,
// not erased.
func (h *UserHandler) Withdraw(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	if err := h.userUseCase.Withdraw(c.Request().Context(), user.Actor()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/v1/users. Admin only.
func (h *UserHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	users, err := h.userUseCase.ListUsers(c.Request().Context(), user.Actor(), pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, users)
}
