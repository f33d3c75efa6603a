package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/domain/notification"
	"github.com/savconnect/savconnect-api/pkg/apperror"
)

type MarkReadUseCase struct {
	notificationRepo notification.Repository
}

func NewMarkReadUseCase(repo notification.Repository) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: repo}
}

type MarkReadInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	err := uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.UserID)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return apperror.NewNotFound("notification", input.NotificationID.String())
		}
		return err
	}
	return nil
}
