package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/usecase/dto"
)

// CommentUseCase handles comments on summaries.
type CommentUseCase struct {
	logger            *zap.Logger
	commentRepository repository.CommentRepository
	summaryRepository repository.SummaryRepository
}

// NewCommentUseCase creates the comment use case.
func NewCommentUseCase(
	logger *zap.Logger,
	commentRepo repository.CommentRepository,
	summaryRepo repository.SummaryRepository,
) *CommentUseCase {
	return &CommentUseCase{
		logger:            logger,
		commentRepository: commentRepo,
		summaryRepository: summaryRepo,
	}
}

// Create posts a comment on a summary the caller may read.
func (uc *CommentUseCase) Create(ctx context.Context, actor Actor, summaryID uuid.UUID, params dto.CreateCommentParams) (*dto.CommentResponse, error) {
	if err := uc.requireReadableSummary(ctx, actor, summaryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment, err := entity.NewComment(uuid.New(), actor.ID, summaryID, params.Content, now, now)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepository.Save(ctx, comment); err != nil {
		return nil, err
	}

	uc.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("summary_id", summaryID.String()))
	return dto.NewCommentResponse(comment), nil
}

// Update edits a comment. Author only; admins moderate by deleting, not
// rewriting.
func (uc *CommentUseCase) Update(ctx context.Context, actor Actor, id uuid.UUID, params dto.UpdateCommentParams) (*dto.CommentResponse, error) {
	comment, err := uc.commentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errs.NewEntityNotFoundError("comment", id.String())
	}
	if comment.UserID != actor.ID {
		return nil, ErrForbidden
	}

	if err := comment.Edit(params.Content); err != nil {
		return nil, err
	}
	if err := uc.commentRepository.Update(ctx, comment); err != nil {
		return nil, err
	}
	return dto.NewCommentResponse(comment), nil
}

// Delete removes a comment. Author or admin.
func (uc *CommentUseCase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	comment, err := uc.commentRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return errs.NewEntityNotFoundError("comment", id.String())
	}
	if !actor.Owns(comment.UserID) {
		return ErrForbidden
	}

	if err := uc.commentRepository.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Comment deleted", zap.String("comment_id", id.String()))
	return nil
}

// ListBySummary pages a summary's comments in thread order.
func (uc *CommentUseCase) ListBySummary(ctx context.Context, actor Actor, summaryID uuid.UUID, pageParams dto.PageParams) (*dto.CommentListResponse, error) {
	if err := uc.requireReadableSummary(ctx, actor, summaryID); err != nil {
		return nil, err
	}

	page, itemsPerPage := pageParams.Normalized()
	total, comments, err := uc.commentRepository.FindBySummary(ctx, summaryID, page, itemsPerPage)
	if err != nil {
		return nil, err
	}
	return dto.NewCommentListResponse(total, page, itemsPerPage, comments), nil
}

func (uc *CommentUseCase) requireReadableSummary(ctx context.Context, actor Actor, summaryID uuid.UUID) error {
	summary, err := uc.summaryRepository.FindByID(ctx, summaryID)
	if err != nil {
		return err
	}
	if summary == nil {
		return errs.NewEntityNotFoundError("summary", summaryID.String())
	}
	if !summary.IsPublic && !actor.Owns(summary.UserID) {
		return errs.NewEntityNotFoundError("summary", summaryID.String())
	}
	return nil
}
