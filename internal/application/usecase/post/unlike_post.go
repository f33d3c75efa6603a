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

type UnlikePostUseCase struct {
	postRepo  post.Repository
	publisher EventPublisher
	feedCache FeedCache
	logger    logger.Logger
}

func NewUnlikePostUseCase(pRepo post.Repository, publisher EventPublisher, cache FeedCache, log logger.Logger) *UnlikePostUseCase {
	return &UnlikePostUseCase{
		postRepo:  pRepo,
		publisher: publisher,
		feedCache: cache,
		logger:    log,
	}
}

type UnlikePostInput struct {
	PostID       uuid.UUID
	ActingUserID uuid.UUID
}

type UnlikePostOutput struct {
	Post *post.Post
}

func (uc *UnlikePostUseCase) Execute(ctx context.Context, input UnlikePostInput) (*UnlikePostOutput, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		return nil, err
	}

	if err := p.Unlike(input.ActingUserID); err != nil {
		if errors.Is(err, post.ErrNotLiked) {
			return nil, apperror.NewConflict("like", "post has not been liked by this user")
		}
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeUnliked,
			PostID:    p.ID,
			AuthorID:  p.AuthorID,
			ActorID:   input.ActingUserID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'unliked' event", err, zap.String("post_id", p.ID.String()))
		}
	}()

	return &UnlikePostOutput{Post: p}, nil
}
