package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	outboxPendingKey    = "outbox:pending"
	outboxEventKeyPfx   = "outbox:event:"
	outboxEventRetained = 7 * 24 * time.Hour
)

// redisOutbox keeps the event body under a per-event key and the delivery
// order in a pending list. Redis is the only local store this service runs
// with, so it also carries the outbox.
type redisOutbox struct {
	rdb *redis.Client
}

func NewRedisOutboxRepository(rdb *redis.Client) OutboxRepository {
	return &redisOutbox{rdb: rdb}
}

func (r *redisOutbox) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, outboxEventKeyPfx+event.ID, payload, outboxEventRetained)
	pipe.RPush(ctx, outboxPendingKey, event.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisOutbox) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	ids, err := r.rdb.LRange(ctx, outboxPendingKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	events := make([]OutboxEvent, 0, len(ids))
	for _, id := range ids {
		val, err := r.rdb.Get(ctx, outboxEventKeyPfx+id).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Body expired; drop the dangling id.
				r.rdb.LRem(ctx, outboxPendingKey, 1, id)
				continue
			}
			return nil, err
		}

		var event OutboxEvent
		if err := json.Unmarshal([]byte(val), &event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *redisOutbox) MarkSent(ctx context.Context, id string) error {
	pipe := r.rdb.TxPipeline()
	pipe.LRem(ctx, outboxPendingKey, 1, id)
	pipe.Del(ctx, outboxEventKeyPfx+id)
	_, err := pipe.Exec(ctx)
	return err
}

// MarkFailed bumps the retry counter and requeues the event at the tail so
// one poisoned event cannot block the list head.
func (r *redisOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	val, err := r.rdb.Get(ctx, outboxEventKeyPfx+id).Result()
	if err != nil {
		return err
	}

	var event OutboxEvent
	if err := json.Unmarshal([]byte(val), &event); err != nil {
		return err
	}
	event.Status = OutboxStatusFailed
	event.RetryCount++

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, outboxEventKeyPfx+id, payload, outboxEventRetained)
	pipe.LRem(ctx, outboxPendingKey, 1, id)
	pipe.RPush(ctx, outboxPendingKey, id)
	_, err = pipe.Exec(ctx)
	return err
}
