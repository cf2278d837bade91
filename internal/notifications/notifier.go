// Package notifications provides real-time notification delivery and management.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"strconv"

	"moodwave/internal/models"
	"moodwave/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Notifier provides helpers to publish notifications into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends a notification payload to a user's channel.
func (n *Notifier) PublishUser(
	ctx context.Context, userID uint, payload string,
) error {
	if n.rdb == nil {
		return nil
	}
	channel := fmt.Sprintf("notifications:user:%d", userID)
	return n.rdb.Publish(ctx, channel, payload).Err()
}

// PublishNotification marshals a stored notification and publishes it to the
// recipient's channel so connected clients see it without polling.
func (n *Notifier) PublishNotification(ctx context.Context, notif *models.Notification) error {
	if n.rdb == nil || notif == nil {
		return nil
	}
	payload, err := json.Marshal(notif)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	observability.NotificationsPublished.WithLabelValues(string(notif.Type)).Inc()
	return n.PublishUser(ctx, notif.UserID, string(payload))
}

// PublishBroadcast sends a notification payload to all connected users.
func (n *Notifier) PublishBroadcast(ctx context.Context, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, "notifications:broadcast", payload).Err()
}

// StartPatternSubscriber subscribes to pattern `notifications:user:*` and calls onMessage
// for each incoming message. onMessage receives channel and payload.
func (n *Notifier) StartPatternSubscriber(
	ctx context.Context, onMessage func(channel string, payload string),
) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "notifications:user:*", "notifications:broadcast")
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("PANIC in PatternSubscriber: %v\n%s", r, debug.Stack())
						}
					}()
					onMessage(msg.Channel, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uint) string {
	return "notifications:user:" + strconv.FormatUint(uint64(userID), 10)
}
