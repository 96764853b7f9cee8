package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type AuthHandler struct {
	logger      *zap.Logger
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(logger *zap.Logger, authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{logger: logger, authUseCase: authUseCase}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var params dto.RegisterParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	user, err := h.authUseCase.Register(c.Request().Context(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var params dto.LoginParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	tokens, user, err := h.authUseCase.Login(c.Request().Context(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tokens": tokens,
		"user":   user,
	})
}
