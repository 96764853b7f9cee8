package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type CategoryHandler struct {
	logger          *zap.Logger
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(logger *zap.Logger, categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{logger: logger, categoryUseCase: categoryUseCase}
}

// Create handles POST /api/v1/categories. Admin only.
func (h *CategoryHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var params dto.CreateCategoryParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request().Context(), user.Actor(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Update handles PATCH /api/v1/categories/:id. Admin only.
func (h *CategoryHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.UpdateCategoryParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request().Context(), user.Actor(), id, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/v1/categories/:id. Admin only.
func (h *CategoryHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUseCase.DeleteCategory(c.Request().Context(), user.Actor(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /api/v1/categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUseCase.GetCategory(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, category)
}

// ListActive handles GET /api/v1/categories, the public catalog.
func (h *CategoryHandler) ListActive(c echo.Context) error {
	categories, err := h.categoryUseCase.ListActive(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// ListAll handles GET /api/v1/categories/all. Admin only.
func (h *CategoryHandler) ListAll(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	categories, err := h.categoryUseCase.ListAll(c.Request().Context(), user.Actor(), pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, categories)
}
