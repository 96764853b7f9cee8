package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
)

type LikeHandler struct {
	logger      *zap.Logger
	likeUseCase *usecase.LikeUseCase
}

func NewLikeHandler(logger *zap.Logger, likeUseCase *usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{logger: logger, likeUseCase: likeUseCase}
}

// Like handles POST /api/v1/likes/:target_type/:id.
func (h *LikeHandler) Like(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	status, err := h.likeUseCase.Like(c.Request().Context(), user.Actor(), c.Param("target_type"), targetID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, status)
}

// Unlike handles DELETE /api/v1/likes/:target_type/:id.
func (h *LikeHandler) Unlike(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	status, err := h.likeUseCase.Unlike(c.Request().Context(), user.Actor(), c.Param("target_type"), targetID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, status)
}

// Status handles GET /api/v1/likes/:target_type/:id.
func (h *LikeHandler) Status(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	status, err := h.likeUseCase.Status(c.Request().Context(), user.Actor(), c.Param("target_type"), targetID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, status)
}
