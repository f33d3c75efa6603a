package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/savconnect/savconnect-api/internal/config"
)

const (
	TopicPostEvents = "post.events"
)

type PostEventType string

const (
	PostEventTypeCreated   PostEventType = "created"
	PostEventTypeDeleted   PostEventType = "deleted"
	PostEventTypeLiked     PostEventType = "liked"
	PostEventTypeUnliked   PostEventType = "unliked"
	PostEventTypeCommented PostEventType = "commented"
)

// PostEventPayload is the message shape on the post.events topic. ActorID
// is the user who performed the action; AuthorID is the post's owner, so
// the worker can address notifications without a lookup.
type PostEventPayload struct {
	EventType  PostEventType `json:"event_type"`
	PostID     uuid.UUID     `json:"post_id"`
	AuthorID   uuid.UUID     `json:"author_id"`
	ActorID    uuid.UUID     `json:"actor_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

type KafkaProducerClient struct {
	PostEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	postWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPostEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		PostEventsWriter: postWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload PostEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal post event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.PostID.String()),
		Value: value,
	}

	if err := c.PostEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot write post event to Kafka: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.PostEventsWriter != nil {
		c.PostEventsWriter.Close()
	}
}
