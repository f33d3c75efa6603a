package persistence

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/savconnect/savconnect-api/internal/domain/notification"
)

type postgresNotificationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresNotificationRepo(db *pgxpool.Pool) notification.Repository {
	return &postgresNotificationRepo{db: db}
}

func (r *postgresNotificationRepo) Save(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, kind, post_id, actor_id, created_at, read_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, n.ID, n.UserID, n.Kind, n.PostID, n.ActorID, n.CreatedAt, n.ReadAt)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *postgresNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*notification.Notification, error) {
	builder := psql.Select("id", "user_id", "kind", "post_id", "actor_id", "created_at", "read_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	items := make([]*notification.Notification, 0)
	for rows.Next() {
		n := &notification.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.PostID, &n.ActorID, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return items, nil
}

func (r *postgresNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `UPDATE notifications SET read_at = $3 WHERE id = $1 AND user_id = $2 AND read_at IS NULL`
	cmdTag, err := r.db.Exec(ctx, query, id, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}
