package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Kind string

const (
	KindPostLiked     Kind = "post_liked"
	KindPostCommented Kind = "post_commented"
)

// Notification is a worker-side projection of post events: the author of
// a post is notified when someone else likes or comments on it.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Kind      Kind       `json:"kind"`
	PostID    uuid.UUID  `json:"post_id"`
	ActorID   uuid.UUID  `json:"actor_id"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
