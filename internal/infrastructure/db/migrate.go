package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db/model"
)

// Seeded administrator account. The password hash is bcrypt, cost 12.
const (
	AdminEmail        = "admin@example.com"
	adminNickname     = "administrator"
	adminPasswordHash = "$2b$12$LJ3m4k6lKR.DuQxXAcYDgOBh9JJPDnr10GsBSUnfmiOn1hoVzAT7u"
)

// Migrate runs database migrations. Production schemas are applied by the
// external migration tool from migrations/; AutoMigrate keeps dev
// environments in sync with the models.
func Migrate(gormDB *gorm.DB, logger *zap.Logger) error {
	logger.Info("데이터베이스 마이그레이션 시작")

	if err := createCustomTypes(gormDB); err != nil {
		logger.Error("커스텀 타입 생성 실패", zap.Error(err))
		return err
	}

	err := gormDB.AutoMigrate(
		&model.UserModel{},
		&model.CurriculumModel{},
		&model.WeekTopicModel{},
		&model.SummaryModel{},
		&model.FeedbackModel{},
		&model.CommentModel{},
		&model.LikeModel{},
		&model.PromptLogModel{},
		&model.TagModel{},
		&model.CategoryModel{},
	)
	if err != nil {
		logger.Error("마이그레이션 실패", zap.Error(err))
		return err
	}

	if err := seedAdminUser(gormDB, logger); err != nil {
		logger.Error("관리자 계정 시드 실패", zap.Error(err))
		return err
	}

	logger.Info("데이터베이스 마이그레이션 완료")
	return nil
}

func createCustomTypes(gormDB *gorm.DB) error {
	return gormDB.Exec(`
		DO $$ BEGIN
			CREATE TYPE user_role AS ENUM ('USER', 'ADMIN');
		EXCEPTION
			WHEN duplicate_object THEN null;
		END $$;
	`).Error
}

func seedAdminUser(gormDB *gorm.DB, logger *zap.Logger) error {
	var existing model.UserModel
	err := gormDB.Where("email = ?", AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	admin := model.UserModel{
		ID:           uuid.New(),
		Email:        AdminEmail,
		Nickname:     adminNickname,
		PasswordHash: adminPasswordHash,
		Role:         "ADMIN",
		IsActive:     true,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("관리자 계정 시드 완료", zap.String("email", AdminEmail))
	return nil
}
