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

type AddCommentUseCase struct {
	postRepo  post.Repository
	userRepo  user.Repository
	publisher EventPublisher
	feedCache FeedCache
	logger    logger.Logger
}

func NewAddCommentUseCase(pRepo post.Repository, uRepo user.Repository, publisher EventPublisher, cache FeedCache, log logger.Logger) *AddCommentUseCase {
	return &AddCommentUseCase{
		postRepo:  pRepo,
		userRepo:  uRepo,
		publisher: publisher,
		feedCache: cache,
		logger:    log,
	}
}

type AddCommentInput struct {
	PostID       uuid.UUID
	ActingUserID uuid.UUID
	Text         string
}

type AddCommentOutput struct {
	Post      *post.Post
	CommentID uuid.UUID
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, input AddCommentInput) (*AddCommentOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.ActingUserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.ActingUserID.String())
		}
		return nil, err
	}

	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		return nil, err
	}

	author := identity.Identity{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	commentID, err := p.AddComment(author, input.Text, time.Now().UTC())
	if err != nil {
		if errors.Is(err, post.ErrEmptyText) {
			return nil, apperror.NewMissingField("text")
		}
		return nil, apperror.NewInvalidInput("invalid comment", err)
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	go func() {
		err := uc.publisher.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType: event.PostEventTypeCommented,
			PostID:    p.ID,
			AuthorID:  p.AuthorID,
			ActorID:   input.ActingUserID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'commented' event", err, zap.String("post_id", p.ID.String()))
		}
	}()

	return &AddCommentOutput{Post: p, CommentID: commentID}, nil
}
