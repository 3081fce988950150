package services

import (
	"context"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

// PostFetcher is the contract the external content provider's client must
// satisfy. devto.Client is the production implementation.
type PostFetcher interface {
	FetchPosts(ctx context.Context) ([]types.BlogPost, error)
}

type BlogService interface {
	ListPosts(ctx context.Context) ([]types.BlogPost, error)
}

type blogService struct {
	log     *logger.Logger
	fetcher PostFetcher
}

func NewBlogService(log *logger.Logger, fetcher PostFetcher) BlogService {
	serviceLog := log.With("service", "BlogService")
	return &blogService{log: serviceLog, fetcher: fetcher}
}

// ListPosts fetches live on every call. No cache, no retry; a failed fetch
// is reported immediately and retrying is the caller's concern.
func (s *blogService) ListPosts(ctx context.Context) ([]types.BlogPost, error) {
	posts, err := s.fetcher.FetchPosts(ctx)
	if err != nil {
		s.log.Error("Blog fetch failed", "error", err)
		return nil, err
	}
	return posts, nil
}
