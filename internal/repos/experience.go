package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

type ExperienceRepo interface {
	DeleteByID(ctx context.Context, tx *gorm.DB, id string) error
}

type experienceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperienceRepo(db *gorm.DB, baseLog *logger.Logger) ExperienceRepo {
	repoLog := baseLog.With("repo", "ExperienceRepo")
	return &experienceRepo{db: db, log: repoLog}
}

func (r *experienceRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.IndustryExperience{})
	if res.Error != nil {
		return wrapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
