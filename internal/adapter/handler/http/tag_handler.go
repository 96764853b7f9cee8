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

type TagHandler struct {
	logger     *zap.Logger
	tagUseCase *usecase.TagUseCase
}

func NewTagHandler(logger *zap.Logger, tagUseCase *usecase.TagUseCase) *TagHandler {
	return &TagHandler{logger: logger, tagUseCase: tagUseCase}
}

// Create handles POST /api/v1/tags. Creating an existing name returns the
// existing tag with 200 instead of 201.
func (h *TagHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var params dto.CreateTagParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	tag, err := h.tagUseCase.CreateTag(c.Request().Context(), user.Actor(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, tag)
}

// Resolve handles POST /api/v1/tags/resolve, the batch find-or-create used
// when attaching tags to content.
func (h *TagHandler) Resolve(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var params dto.ResolveTagsParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	tags, err := h.tagUseCase.ResolveTags(c.Request().Context(), user.Actor(), params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tags)
}

// Release handles POST /api/v1/tags/:id/release, the detach counterpart of
// Resolve.
func (h *TagHandler) Release(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tag, err := h.tagUseCase.ReleaseTag(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tag)
}

// Get handles GET /api/v1/tags/:id.
func (h *TagHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tag, err := h.tagUseCase.GetTag(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tag)
}

// List handles GET /api/v1/tags.
func (h *TagHandler) List(c echo.Context) error {
	var pageParams dto.PageParams
	if err := c.Bind(&pageParams); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pagination query")
	}

	tags, err := h.tagUseCase.ListTags(c.Request().Context(), pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tags)
}

// Popular handles GET /api/v1/tags/popular.
func (h *TagHandler) Popular(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	tags, err := h.tagUseCase.PopularTags(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tags)
}

// Delete handles DELETE /api/v1/tags/:id. Admin only.
func (h *TagHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.tagUseCase.DeleteTag(c.Request().Context(), user.Actor(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
