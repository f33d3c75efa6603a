package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/adapters/event"
	"github.com/savconnect/savconnect-api/internal/domain/identity"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/internal/domain/user"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

// EventPublisher is the slice of the Kafka producer the post usecases
// need. Publishing is fire-and-forget; a broker outage never fails the
// request.
type EventPublisher interface {
	PublishPostEvent(ctx context.Context, payload event.PostEventPayload) error
}

type CreatePostUseCase struct {
	postRepo  post.Repository
	userRepo  user.Repository
	publisher EventPublisher
	feedCache FeedCache
	logger    logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, publisher EventPublisher, cache FeedCache, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:  pRepo,
		userRepo:  uRepo,
		publisher: publisher,
		feedCache: cache,
		logger:    log,
	}
}

type CreatePostInput struct {
	AuthorID uuid.UUID
	Text     string
}

type CreatePostOutput struct {
	Post *post.Post
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.AuthorID.String())
		}
		return nil, err
	}

	author := identity.Identity{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	newPost, err := post.New(author, input.Text, time.Now().UTC())
	if err != nil {
		if errors.Is(err, post.ErrEmptyText) {
			return nil, apperror.NewMissingField("text")
		}
		return nil, apperror.NewInvalidInput("invalid post", err)
	}

	if err := uc.postRepo.Save(ctx, newPost); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeCreated,
			PostID:    newPost.ID,
			AuthorID:  newPost.AuthorID,
			ActorID:   newPost.AuthorID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'created' event", err, zap.String("post_id", newPost.ID.String()))
		}
	}()

	return &CreatePostOutput{Post: newPost}, nil
}
