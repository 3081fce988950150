package services

import (
	"github.com/yungbote/portfolio-backend/internal/dataset"
	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

// ContentService serves every static read from the in-memory dataset
// snapshot. The relational store never backs a read here: education,
// experience, and publication rows in the store are a separately keyed
// collection that only the admin delete surface touches.
type ContentService interface {
	Profile() types.ProfileInfo
	Timeline() []types.TimelineEvent
	Academia() types.Academia
	Experiences() types.Experiences
	Tracking() types.TrackingStats
}

type contentService struct {
	log      *logger.Logger
	snapshot *dataset.Snapshot
}

func NewContentService(log *logger.Logger, snapshot *dataset.Snapshot) ContentService {
	serviceLog := log.With("service", "ContentService")
	return &contentService{log: serviceLog, snapshot: snapshot}
}

func (s *contentService) Profile() types.ProfileInfo {
	return s.snapshot.Profile()
}

func (s *contentService) Timeline() []types.TimelineEvent {
	return s.snapshot.Timeline()
}

func (s *contentService) Academia() types.Academia {
	return s.snapshot.Academia()
}

func (s *contentService) Experiences() types.Experiences {
	return s.snapshot.Experiences()
}

func (s *contentService) Tracking() types.TrackingStats {
	return s.snapshot.Tracking()
}
