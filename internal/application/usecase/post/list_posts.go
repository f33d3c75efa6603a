package post

import (
	"context"

	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

// FeedCache holds the first page of the feed, invalidated on every post
// mutation. A cache failure falls through to the repository.
type FeedCache interface {
	Get(ctx context.Context, limit, offset int) ([]*post.Post, bool)
	Set(ctx context.Context, limit, offset int, posts []*post.Post)
	Invalidate(ctx context.Context)
}

type ListPostsUseCase struct {
	postRepo  post.Repository
	feedCache FeedCache
	logger    logger.Logger
}

func NewListPostsUseCase(pRepo post.Repository, cache FeedCache, log logger.Logger) *ListPostsUseCase {
	return &ListPostsUseCase{
		postRepo:  pRepo,
		feedCache: cache,
		logger:    log,
	}
}

type ListPostsInput struct {
	Page  int
	Limit int
}

// ListPostsOutput echoes the normalized page and limit so callers can
// see the window they actually got.
type ListPostsOutput struct {
	Posts []*post.Post
	Page  int
	Limit int
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, input ListPostsInput) (*ListPostsOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}
	offset := (input.Page - 1) * input.Limit

	if posts, ok := uc.feedCache.Get(ctx, input.Limit, offset); ok {
		return &ListPostsOutput{Posts: posts, Page: input.Page, Limit: input.Limit}, nil
	}

	posts, err := uc.postRepo.List(ctx, input.Limit, offset)
	if err != nil {
		return nil, err
	}

	uc.feedCache.Set(ctx, input.Limit, offset, posts)
	uc.logger.Debug("feed served from repository", zap.Int("count", len(posts)))

	return &ListPostsOutput{Posts: posts, Page: input.Page, Limit: input.Limit}, nil
}
