package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/domain/post"
	"github.com/savconnect/savconnect-api/pkg/apperror"
)

type GetPostUseCase struct {
	postRepo post.Repository
}

func NewGetPostUseCase(pRepo post.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: pRepo}
}

type GetPostInput struct {
	PostID uuid.UUID
}

type GetPostOutput struct {
	Post *post.Post
}

func (uc *GetPostUseCase) Execute(ctx context.Context, input GetPostInput) (*GetPostOutput, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		return nil, err
	}
	return &GetPostOutput{Post: p}, nil
}
