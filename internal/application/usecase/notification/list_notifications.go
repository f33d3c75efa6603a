package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/savconnect/savconnect-api/internal/domain/notification"
)

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
}

func NewListNotificationsUseCase(repo notification.Repository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: repo}
}

type ListNotificationsInput struct {
	UserID uuid.UUID
	Page   int
	Limit  int
}

type ListNotificationsOutput struct {
	Notifications []*notification.Notification
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}
	offset := (input.Page - 1) * input.Limit

	items, err := uc.notificationRepo.ListByUser(ctx, input.UserID, input.Limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListNotificationsOutput{Notifications: items}, nil
}
