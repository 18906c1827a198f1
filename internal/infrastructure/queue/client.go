package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Enqueuer is the producer-side contract services depend on, so tests can
// swap in a fake without Redis.
type Enqueuer interface {
	EnqueueAIRatingGenerate(ctx context.Context, poemID uuid.UUID) error
}

// Client wraps the asynq producer.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

var _ Enqueuer = (*Client)(nil)

func (c *Client) EnqueueAIRatingGenerate(ctx context.Context, poemID uuid.UUID) error {
	task, err := NewAIRatingGenerateTask(poemID)
	if err != nil {
		return err
	}

	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue("default"), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TypeAIRatingGenerate, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
