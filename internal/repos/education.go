package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

type EducationRepo interface {
	DeleteByID(ctx context.Context, tx *gorm.DB, id string) error
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type educationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEducationRepo(db *gorm.DB, baseLog *logger.Logger) EducationRepo {
	repoLog := baseLog.With("repo", "EducationRepo")
	return &educationRepo{db: db, log: repoLog}
}

func (r *educationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Education{})
	if res.Error != nil {
		return wrapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *educationRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Education{}).
		Count(&count).Error; err != nil {
		return 0, wrapStoreError(err)
	}
	return count, nil
}
