package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type FeedbackHandler struct {
	logger          *zap.Logger
	feedbackUseCase *usecase.FeedbackUseCase
}

func NewFeedbackHandler(logger *zap.Logger, feedbackUseCase *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{logger: logger, feedbackUseCase: feedbackUseCase}
}

// Create handles POST /api/v1/summaries/:id/feedback.
func (h *FeedbackHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	summaryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.CreateFeedbackParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	feedback, err := h.feedbackUseCase.Create(c.Request().Context(), user.Actor(), summaryID, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, feedback)
}

// GetBySummary handles GET /api/v1/summaries/:id/feedback.
func (h *FeedbackHandler) GetBySummary(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	summaryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUseCase.GetBySummary(c.Request().Context(), user.Actor(), summaryID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, feedback)
}

// Delete handles DELETE /api/v1/feedback/:id.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.feedbackUseCase.Delete(c.Request().Context(), user.Actor(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListByUser handles GET /api/v1/users/:id/feedback. Self or admin.
func (h *FeedbackHandler) ListByUser(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	feedbacks, err := h.feedbackUseCase.ListByUser(c.Request().Context(), user.Actor(), userID, pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, feedbacks)
}

// ListByCurriculum handles GET /api/v1/curriculums/:id/feedback.
func (h *FeedbackHandler) ListByCurriculum(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	curriculumID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	feedbacks, err := h.feedbackUseCase.ListByCurriculum(c.Request().Context(), user.Actor(), curriculumID, pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, feedbacks)
}

// RecordPromptLog handles POST /api/v1/summaries/:id/prompt-logs.
func (h *FeedbackHandler) RecordPromptLog(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	summaryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.CreatePromptLogParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	log, err := h.feedbackUseCase.RecordPromptLog(c.Request().Context(), user.Actor(), summaryID, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, log)
}

// ListPromptLogs handles GET /api/v1/summaries/:id/prompt-logs.
func (h *FeedbackHandler) ListPromptLogs(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	summaryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	logs, err := h.feedbackUseCase.ListPromptLogs(c.Request().Context(), user.Actor(), summaryID, pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, logs)
}
