package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type CurriculumHandler struct {
	logger            *zap.Logger
	curriculumUseCase *usecase.CurriculumUseCase
}

func NewCurriculumHandler(logger *zap.Logger, curriculumUseCase *usecase.CurriculumUseCase) *CurriculumHandler {
	return &CurriculumHandler{logger: logger, curriculumUseCase: curriculumUseCase}
}

// Create handles POST /api/v1/curriculums.
func (h *CurriculumHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var params dto.CreateCurriculumParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	curriculum, err := h.curriculumUseCase.Create(c.Request().Context(), user.Actor(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, curriculum)
}

// Get handles GET /api/v1/curriculums/:id.
func (h *CurriculumHandler) Get(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	curriculum, err := h.curriculumUseCase.Get(c.Request().Context(), user.Actor(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// ListMine handles GET /api/v1/curriculums.
func (h *CurriculumHandler) ListMine(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	curricula, err := h.curriculumUseCase.ListMine(c.Request().Context(), user.Actor(), pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curricula)
}

// ListPublic handles GET /api/v1/curriculums/public.
func (h *CurriculumHandler) ListPublic(c echo.Context) error {
	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	curricula, err := h.curriculumUseCase.ListPublic(c.Request().Context(), pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curricula)
}

// Update handles PATCH /api/v1/curriculums/:id.
func (h *CurriculumHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.UpdateCurriculumParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	curriculum, err := h.curriculumUseCase.Update(c.Request().Context(), user.Actor(), id, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// ToggleVisibility handles POST /api/v1/curriculums/:id/visibility.
func (h *CurriculumHandler) ToggleVisibility(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	curriculum, err := h.curriculumUseCase.ToggleVisibility(c.Request().Context(), user.Actor(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// Delete handles DELETE /api/v1/curriculums/:id.
func (h *CurriculumHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.curriculumUseCase.Delete(c.Request().Context(), user.Actor(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddWeek handles POST /api/v1/curriculums/:id/weeks.
func (h *CurriculumHandler) AddWeek(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.WeekTopicParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	curriculum, err := h.curriculumUseCase.AddWeek(c.Request().Context(), user.Actor(), id, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, curriculum)
}

// UpdateWeek handles PUT /api/v1/curriculums/:id/weeks/:week_number.
func (h *CurriculumHandler) UpdateWeek(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	weekNumber, err := parseWeekNumber(c)
	if err != nil {
		return err
	}

	var body struct {
		Topic string `json:"topic" validate:"required,max=255"`
	}
	if err := bindParams(c, &body); err != nil {
		return err
	}

	params := dto.WeekTopicParams{WeekNumber: weekNumber, Topic: body.Topic}
	curriculum, err := h.curriculumUseCase.UpdateWeek(c.Request().Context(), user.Actor(), id, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// RemoveWeek handles DELETE /api/v1/curriculums/:id/weeks/:week_number.
func (h *CurriculumHandler) RemoveWeek(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	weekNumber, err := parseWeekNumber(c)
	if err != nil {
		return err
	}

	curriculum, err := h.curriculumUseCase.RemoveWeek(c.Request().Context(), user.Actor(), id, weekNumber)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

func parseWeekNumber(c echo.Context) (int, error) {
	weekNumber, err := strconv.Atoi(c.Param("week_number"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid week_number")
	}
	return weekNumber, nil
}
