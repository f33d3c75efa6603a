package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/adapters/event"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type LikePostUseCase struct {
	postRepo  post.Repository
	publisher EventPublisher
	feedCache FeedCache
	logger    logger.Logger
}

func NewLikePostUseCase(pRepo post.Repository, publisher EventPublisher, cache FeedCache, log logger.Logger) *LikePostUseCase {
	return &LikePostUseCase{
		postRepo:  pRepo,
		publisher: publisher,
		feedCache: cache,
		logger:    log,
	}
}

type LikePostInput struct {
	PostID       uuid.UUID
	ActingUserID uuid.UUID
}

type LikePostOutput struct {
	Post *post.Post
}

func (uc *LikePostUseCase) Execute(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		return nil, err
	}

	if err := p.Like(input.ActingUserID); err != nil {
		if errors.Is(err, post.ErrAlreadyLiked) {
			return nil, apperror.NewConflict("like", "post already liked by this user")
		}
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeLiked,
			PostID:    p.ID,
			AuthorID:  p.AuthorID,
			ActorID:   input.ActingUserID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'liked' event", err, zap.String("post_id", p.ID.String()))
		}
	}()

	return &LikePostOutput{Post: p}, nil
}
