// Package redis implements the reminder tracker on a Redis instance.
// Dedupe entries are plain TTL keys, so the tracker needs no cleanup job
// and loses nothing worse than an extra reminder if Redis restarts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// ReminderTracker implements ports.ReminderTracker using TTL keys.
type ReminderTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReminderTracker creates a tracker against the given Redis address.
// ttl is the window during which a store order will not be reminded again.
func NewReminderTracker(addr string, ttl time.Duration) *ReminderTracker {
	return &ReminderTracker{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// AlreadyReminded reports whether a reminder for the store order was sent
// within the TTL window.
func (t *ReminderTracker) AlreadyReminded(ctx context.Context, storeOrderID kernel.UUID) (bool, error) {
	_, err := t.client.Get(ctx, t.key(storeOrderID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkReminded records that a reminder was just sent.
func (t *ReminderTracker) MarkReminded(ctx context.Context, storeOrderID kernel.UUID) error {
	return t.client.Set(ctx, t.key(storeOrderID), time.Now().UTC().Format(time.RFC3339), t.ttl).Err()
}

// Close releases the underlying Redis connection.
func (t *ReminderTracker) Close() error {
	return t.client.Close()
}

func (t *ReminderTracker) key(storeOrderID kernel.UUID) string {
	return fmt.Sprintf("marketplace:pending-reminder:%s", storeOrderID.String())
}
