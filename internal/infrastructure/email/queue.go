package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultQueueKey = "cragbase:mail:deliveries"

// Queue is a FIFO of envelopes kept in a Redis list.
type Queue struct {
	client *redis.Client
	key    string
}

func NewQueue(client *redis.Client, key string) *Queue {
	if key == "" {
		key = DefaultQueueKey
	}
	return &Queue{client: client, key: key}
}

func (q *Queue) Enqueue(ctx context.Context, env *Envelope) error {
	if env.EnqueuedAt.IsZero() {
		env.EnqueuedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	return nil
}

// Dequeue waits up to timeout for an envelope. It returns nil, nil when the
// queue stayed empty.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*Envelope, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue email: %w", err)
	}

	// BRPOP replies with [key, value].
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected dequeue reply of length %d", len(res))
	}

	var env Envelope
	if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	return &env, nil
}

func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read queue length: %w", err)
	}
	return n, nil
}
