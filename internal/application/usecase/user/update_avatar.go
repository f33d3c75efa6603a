package user

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/application/service"
	"github.com/savconnect/savconnect-api/internal/domain/user"
	"github.com/savconnect/savconnect-api/pkg/apperror"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type UpdateAvatarUseCase struct {
	userRepo user.Repository
	uploader service.Uploader
	logger   logger.Logger
}

func NewUpdateAvatarUseCase(repo user.Repository, uploader service.Uploader, log logger.Logger) *UpdateAvatarUseCase {
	return &UpdateAvatarUseCase{
		userRepo: repo,
		uploader: uploader,
		logger:   log,
	}
}

type UpdateAvatarInput struct {
	UserID uuid.UUID
	File   io.Reader
}

type UpdateAvatarOutput struct {
	AvatarURL string
}

// Execute uploads the image and records its URL on the user. Posts and
// comments written before this keep the avatar they snapshotted.
func (uc *UpdateAvatarUseCase) Execute(ctx context.Context, input UpdateAvatarInput) (*UpdateAvatarOutput, error) {
	folder := fmt.Sprintf("users/%s", input.UserID.String())

	url, err := uc.uploader.Upload(ctx, input.File, folder, "avatar")
	if err != nil {
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	if err := uc.userRepo.UpdateAvatar(ctx, input.UserID, url); err != nil {
		return nil, err
	}

	return &UpdateAvatarOutput{AvatarURL: url}, nil
}
