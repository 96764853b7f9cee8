package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

type CommentHandler struct {
	logger         *zap.Logger
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(logger *zap.Logger, commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{logger: logger, commentUseCase: commentUseCase}
}

// Create handles POST /api/v1/summaries/:id/comments.
func (h *CommentHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	summaryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.CreateCommentParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	comment, err := h.commentUseCase.Create(c.Request().Context(), user.Actor(), summaryID, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// Update handles PUT /api/v1/comments/:id.
func (h *CommentHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var params dto.UpdateCommentParams
	if err := bindParams(c, &params); err != nil {
		return err
	}

	comment, err := h.commentUseCase.Update(c.Request().Context(), user.Actor(), id, params)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /api/v1/comments/:id.
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentUseCase.Delete(c.Request().Context(), user.Actor(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBySummary handles GET /api/v1/summaries/:id/comments.
func (h *CommentHandler) ListBySummary(c echo.Context) error {
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

	comments, err := h.commentUseCase.ListBySummary(c.Request().Context(), user.Actor(), summaryID, pageParams)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, comments)
}
