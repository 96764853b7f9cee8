// Package http holds the Echo handlers of the public API. Handlers bind
// and validate DTOs, extract the caller from the auth middleware, call use
// cases and translate the error taxonomy to status codes.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
)

// respondError maps the error taxonomy to HTTP: validation 422, not-found
// 404, duplicate 409, credentials 401, forbidden 403, database 503,
// anything unknown 500.
func respondError(c echo.Context, logger *zap.Logger, err error) error {
	var validationErr *errs.ValidationError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": validationErr.Message,
			"field": validationErr.Field,
			"code":  validationErr.Rule,
		})
	case errs.IsNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": err.Error(),
			"code":  "NOT_FOUND",
		})
	case errs.IsDuplicate(err):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": err.Error(),
			"code":  "DUPLICATE",
		})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Invalid email or password",
			"code":  "INVALID_CREDENTIALS",
		})
	case errors.Is(err, usecase.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "You do not have access to this resource",
			"code":  "FORBIDDEN",
		})
	case errs.IsRetryable(err):
		logger.Error("Database unavailable", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "Service temporarily unavailable",
			"code":  "DATABASE_UNAVAILABLE",
		})
	case errors.As(err, &httpErr):
		return err
	default:
		logger.Error("Unhandled error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Internal server error",
			"code":  "INTERNAL",
		})
	}
}

// NewErrorHandler returns the central echo.HTTPErrorHandler. Handlers
// mostly respond through respondError already; this catches errors that
// reach Echo raw, such as binding and validation failures.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, echo.Map{
				"error": fmt.Sprintf("%v", httpErr.Message),
			})
			return
		}
		_ = respondError(c, logger, err)
	}
}

// parseID reads a UUID path parameter; a malformed value is a 400.
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// bindParams binds and validates a request body.
func bindParams(c echo.Context, params interface{}) error {
	if err := c.Bind(params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(params)
}
