package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type SummaryHandler struct {
	logger         *zap.Logger
	summaryUseCase *usecase.SummaryUseCase
}

func NewSummaryHandler(logger *zap.Logger, summaryUseCase *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{logger: logger, summaryUseCase: summaryUseCase}
}

// Create handles POST /api/v1/curriculums/:id/summaries.
func (h *SummaryHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	curriculumID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.CreateSummaryParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	summary, err := h.summaryUseCase.Create(c.Request().Context(), user.Actor(), curriculumID, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, summary)
}

// Get handles GET /api/v1/summaries/:id.
func (h *SummaryHandler) Get(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.summaryUseCase.Get(c.Request().Context(), user.Actor(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Update handles PATCH /api/v1/summaries/:id.
func (h *SummaryHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.UpdateSummaryParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	summary, err := h.summaryUseCase.Update(c.Request().Context(), user.Actor(), id, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Delete handles DELETE /api/v1/summaries/:id.
func (h *SummaryHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.summaryUseCase.Delete(c.Request().Context(), user.Actor(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListByCurriculum handles GET /api/v1/curriculums/:id/summaries.
func (h *SummaryHandler) ListByCurriculum(c echo.Context) error {
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

	summaries, err := h.summaryUseCase.ListByCurriculum(c.Request().Context(), user.Actor(), curriculumID, pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, summaries)
}

// ListByUser handles GET /api/v1/users/:id/summaries. Self or admin.
func (h *SummaryHandler) ListByUser(c echo.Context) error {
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

	summaries, err := h.summaryUseCase.ListByUser(c.Request().Context(), user.Actor(), userID, pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, summaries)
}
