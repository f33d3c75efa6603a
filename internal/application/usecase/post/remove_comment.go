package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/domain/identity"
	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type RemoveCommentUseCase struct {
	postRepo  post.Repository
	feedCache FeedCache
	logger    logger.Logger
}

func NewRemoveCommentUseCase(pRepo post.Repository, cache FeedCache, log logger.Logger) *RemoveCommentUseCase {
	return &RemoveCommentUseCase{
		postRepo:  pRepo,
		feedCache: cache,
		logger:    log,
	}
}

type RemoveCommentInput struct {
	PostID       uuid.UUID
	CommentID    uuid.UUID
	ActingUserID uuid.UUID
}

type RemoveCommentOutput struct {
	Post *post.Post
}

func (uc *RemoveCommentUseCase) Execute(ctx context.Context, input RemoveCommentInput) (*RemoveCommentOutput, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		return nil, err
	}

	if err := p.RemoveComment(input.CommentID, input.ActingUserID); err != nil {
		switch {
		case errors.Is(err, post.ErrCommentNotFound):
			return nil, apperror.NewNotFound("comment", input.CommentID.String())
		case errors.Is(err, identity.ErrNotOwner):
			return nil, apperror.NewPermissionDenied("only the comment's author can remove it")
		}
		return nil, err
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	return &RemoveCommentOutput{Post: p}, nil
}
