package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kikiru328/LLearn-sub001/internal/adapter/mapper"
	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
	"github.com/kikiru328/LLearn-sub001/internal/domain/errs"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/domain/vo"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTagRepository creates the GORM-backed tag repository.
func NewTagRepository(db *gorm.DB, logger *zap.Logger) repository.TagRepository {
	return &TagRepositoryImpl{db: db, logger: logger}
}

// Save inserts a new tag. A taken name becomes DuplicateEntityError.
func (r *TagRepositoryImpl) Save(ctx context.Context, tag *entity.Tag) error {
	tagModel := mapper.TagToModel(tag)

	if err := r.db.WithContext(ctx).Create(tagModel).Error; err != nil {
		r.logger.Error("Failed to save tag",
			zap.String("name", tag.Name.Value()),
			zap.Error(err))
		return translateSaveError(err, "tag", "name", tag.Name.Value(), "tag.save")
	}
	return nil
}

// FindByID returns (nil, nil) when no tag has the id.
func (r *TagRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagModel model.TagModel

	if err := r.db.WithContext(ctx).First(&tagModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("tag.find_by_id", err)
	}

	tag, err := mapper.TagFromModel(&tagModel)
	if err != nil {
		return nil, errs.NewDatabaseError("tag.find_by_id", err)
	}
	return tag, nil
}

// FindByName looks a tag up by canonical name, (nil, nil) when absent.
func (r *TagRepositoryImpl) FindByName(ctx context.Context, name vo.TagName) (*entity.Tag, error) {
	var tagModel model.TagModel

	err := r.db.WithContext(ctx).Where("name = ?", name.Value()).First(&tagModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("tag.find_by_name", err)
	}

	tag, err := mapper.TagFromModel(&tagModel)
	if err != nil {
		return nil, errs.NewDatabaseError("tag.find_by_name", err)
	}
	return tag, nil
}

// Update rewrites the mutable columns. A missing id becomes
// EntityNotFoundError.
func (r *TagRepositoryImpl) Update(ctx context.Context, tag *entity.Tag) error {
	tagModel := mapper.TagToModel(tag)

	result := r.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id = ?", tagModel.ID).
		Select("name", "usage_count", "updated_at").
		Updates(tagModel)

	if result.Error != nil {
		r.logger.Error("Failed to update tag",
			zap.String("tag_id", tag.ID.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("tag.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("tag", tag.ID.String())
	}
	return nil
}

// Delete removes the row. A missing id becomes EntityNotFoundError.
func (r *TagRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TagModel{}, "id = ?", id)

	if result.Error != nil {
		r.logger.Error("Failed to delete tag",
			zap.String("tag_id", id.String()),
			zap.Error(result.Error))
		return errs.NewDatabaseError("tag.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("tag", id.String())
	}
	return nil
}

// ExistsByName reports whether any tag has the canonical name.
func (r *TagRepositoryImpl) ExistsByName(ctx context.Context, name vo.TagName) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("name = ?", name.Value()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("tag.exists_by_name", err)
	}
	return count > 0, nil
}

// FindAll lists tags alphabetically with the shared pagination contract.
func (r *TagRepositoryImpl) FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.Tag, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.TagModel{}).Count(&total).Error; err != nil {
		return 0, nil, errs.NewDatabaseError("tag.find_all", err)
	}

	var models []model.TagModel
	err := paginate(r.db.WithContext(ctx).Order("name ASC"), page, itemsPerPage).
		Find(&models).Error
	if err != nil {
		return 0, nil, errs.NewDatabaseError("tag.find_all", err)
	}

	tags, err := mapper.TagsFromModels(models)
	if err != nil {
		return 0, nil, errs.NewDatabaseError("tag.find_all", err)
	}
	return total, tags, nil
}

// FindPopular lists the most used tags at or above the popular threshold,
// most used first.
func (r *TagRepositoryImpl) FindPopular(ctx context.Context, limit int) ([]*entity.Tag, error) {
	var models []model.TagModel

	err := r.db.WithContext(ctx).
		Where("usage_count >= ?", entity.PopularTagThreshold).
		Order("usage_count DESC, name ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errs.NewDatabaseError("tag.find_popular", err)
	}

	tags, err := mapper.TagsFromModels(models)
	if err != nil {
		return nil, errs.NewDatabaseError("tag.find_popular", err)
	}
	return tags, nil
}

// FindOrCreateByNames resolves names to tags, inserting the missing ones
// with ON CONFLICT DO NOTHING so concurrent callers never create two rows
// for the same name. The re-select after the insert picks up rows created
// by whichever caller won; the result preserves input order.
func (r *TagRepositoryImpl) FindOrCreateByNames(ctx context.Context, names []vo.TagName, createdBy uuid.UUID) ([]*entity.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	values := make([]string, len(names))
	now := time.Now().UTC()
	candidates := make([]model.TagModel, len(names))
	for i, name := range names {
		values[i] = name.Value()
		candidates[i] = model.TagModel{
			ID:         uuid.New(),
			Name:       name.Value(),
			UsageCount: 0,
			CreatedBy:  createdBy,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	var rows []model.TagModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&candidates).Error
		if err != nil {
			return err
		}
		return tx.Where("name IN ?", values).Find(&rows).Error
	})
	if err != nil {
		r.logger.Error("Failed to find or create tags",
			zap.Strings("names", values),
			zap.Error(err))
		return nil, errs.NewDatabaseError("tag.find_or_create_by_names", err)
	}

	byName := make(map[string]*model.TagModel, len(rows))
	for i := range rows {
		byName[rows[i].Name] = &rows[i]
	}

	tags := make([]*entity.Tag, 0, len(names))
	for _, name := range names {
		row, ok := byName[name.Value()]
		if !ok {
			return nil, errs.NewDatabaseError("tag.find_or_create_by_names",
				errors.New("tag row missing after upsert: "+name.Value()))
		}
		tag, err := mapper.TagFromModel(row)
		if err != nil {
			return nil, errs.NewDatabaseError("tag.find_or_create_by_names", err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
