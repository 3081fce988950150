package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/repos"
)

// AdminService is the mutation surface over the relational store. Deletes
// remove exactly one row; any cascade lives in the store's own constraint
// layer. Errors come back as repos.ErrNotFound or *repos.StoreError.
type AdminService interface {
	DeleteEducation(ctx context.Context, id string) error
	DeleteExperience(ctx context.Context, id string) error
	DeletePublication(ctx context.Context, id string) error
	CheckDatabase(ctx context.Context) (int64, error)
}

type adminService struct {
	db              *gorm.DB
	log             *logger.Logger
	educationRepo   repos.EducationRepo
	experienceRepo  repos.ExperienceRepo
	publicationRepo repos.PublicationRepo
}

func NewAdminService(
	db *gorm.DB,
	log *logger.Logger,
	educationRepo repos.EducationRepo,
	experienceRepo repos.ExperienceRepo,
	publicationRepo repos.PublicationRepo,
) AdminService {
	serviceLog := log.With("service", "AdminService")
	return &adminService{
		db:              db,
		log:             serviceLog,
		educationRepo:   educationRepo,
		experienceRepo:  experienceRepo,
		publicationRepo: publicationRepo,
	}
}

func (s *adminService) DeleteEducation(ctx context.Context, id string) error {
	return s.educationRepo.DeleteByID(ctx, nil, id)
}

func (s *adminService) DeleteExperience(ctx context.Context, id string) error {
	return s.experienceRepo.DeleteByID(ctx, nil, id)
}

func (s *adminService) DeletePublication(ctx context.Context, id string) error {
	return s.publicationRepo.DeleteByID(ctx, nil, id)
}

// CheckDatabase exercises the shared connection and reports the education
// row count for the diagnostic endpoint.
func (s *adminService) CheckDatabase(ctx context.Context) (int64, error) {
	return s.educationRepo.CountAll(ctx, nil)
}
