package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

type PublicationRepo interface {
	DeleteByID(ctx context.Context, tx *gorm.DB, id string) error
}

type publicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPublicationRepo(db *gorm.DB, baseLog *logger.Logger) PublicationRepo {
	repoLog := baseLog.With("repo", "PublicationRepo")
	return &publicationRepo{db: db, log: repoLog}
}

func (r *publicationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Publication{})
	if res.Error != nil {
		return wrapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
