package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/adapters/event"
	"github.com/savconnect/savconnect-api/internal/domain/identity"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo  post.Repository
	publisher EventPublisher
	feedCache FeedCache
	logger    logger.Logger
}

func NewDeletePostUseCase(pRepo post.Repository, publisher EventPublisher, cache FeedCache, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:  pRepo,
		publisher: publisher,
		feedCache: cache,
		logger:    log,
	}
}

type DeletePostInput struct {
	PostID       uuid.UUID
	ActingUserID uuid.UUID
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("post", input.PostID.String())
		}
		return err
	}

	if err := identity.Authorize(input.ActingUserID, p.AuthorID); err != nil {
		return apperror.NewPermissionDenied("only the author can delete a post")
	}

	if err := uc.postRepo.Delete(ctx, p.ID); err != nil {
		return err
	}

	uc.feedCache.Invalidate(ctx)

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeDeleted,
			PostID:    p.ID,
			AuthorID:  p.AuthorID,
			ActorID:   input.ActingUserID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'deleted' event", err, zap.String("post_id", p.ID.String()))
		}
	}()

	return nil
}
