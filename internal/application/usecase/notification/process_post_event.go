package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/adapters/event"
	"github.com/savconnect/savconnect-api/internal/domain/notification"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

type ProcessPostEventUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Logger
}

func NewProcessPostEventUseCase(repo notification.Repository, log logger.Logger) *ProcessPostEventUseCase {
	return &ProcessPostEventUseCase{
		notificationRepo: repo,
		logger:           log,
	}
}

// Execute turns a post event into a notification for the post's author.
// Events with no audience (creates, deletes, unlikes, self-actions) are
// acknowledged without writing anything.
func (uc *ProcessPostEventUseCase) Execute(ctx context.Context, payload event.PostEventPayload) error {
	var kind notification.Kind
	switch payload.EventType {
	case event.PostEventTypeLiked:
		kind = notification.KindPostLiked
	case event.PostEventTypeCommented:
		kind = notification.KindPostCommented
	default:
		return nil
	}

	if payload.ActorID == payload.AuthorID {
		return nil
	}

	createdAt := payload.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	n := &notification.Notification{
		ID:        uuid.New(),
		UserID:    payload.AuthorID,
		Kind:      kind,
		PostID:    payload.PostID,
		ActorID:   payload.ActorID,
		CreatedAt: createdAt,
	}

	if err := uc.notificationRepo.Save(ctx, n); err != nil {
		return err
	}

	uc.logger.Debug("notification recorded",
		zap.String("kind", string(kind)),
		zap.String("user_id", n.UserID.String()),
		zap.String("post_id", n.PostID.String()),
	)
	return nil
}
