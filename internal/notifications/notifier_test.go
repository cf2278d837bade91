package notifications

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"moodwave/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishUser(t *testing.T) {
	// Notifier with nil Redis should return nil error (fail-open/noop)
	n := NewNotifier(nil)
	err := n.PublishUser(context.Background(), 1, "test payload")
	assert.NoError(t, err)
}

func TestUserChannel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		userID   uint
		expected string
	}{
		{1, "notifications:user:1"},
		{100, "notifications:user:100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, UserChannel(tt.userID))
	}
}

func TestNotifier_PublishNotificationRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 1)
	require.NoError(t, n.StartPatternSubscriber(ctx, func(_ string, payload string) {
		payloads <- payload
	}))

	notif := &models.Notification{
		ID:         7,
		UserID:     42,
		FromUserID: 9,
		Type:       models.NotificationTypeFriendRequest,
		Data:       map[string]any{"name": "Sam"},
	}
	require.NoError(t, n.PublishNotification(context.Background(), notif))

	select {
	case payload := <-payloads:
		var got models.Notification
		require.NoError(t, json.Unmarshal([]byte(payload), &got))
		assert.Equal(t, uint(42), got.UserID)
		assert.Equal(t, models.NotificationTypeFriendRequest, got.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published notification")
	}
}

func TestNotifier_StartPatternSubscriber_StopsOnCancel(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var received int32
	payloads := make(chan string, 2)
	require.NoError(t, n.StartPatternSubscriber(ctx, func(_ string, payload string) {
		atomic.AddInt32(&received, 1)
		payloads <- payload
	}))

	require.NoError(t, n.PublishUser(context.Background(), 1, "before-cancel"))
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&received) >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)

	// Drain the pre-cancel message to avoid false positives.
	select {
	case <-payloads:
	default:
	}

	require.NoError(t, n.PublishUser(context.Background(), 1, "after-cancel"))
	assert.Never(t, func() bool {
		select {
		case payload := <-payloads:
			return payload == "after-cancel"
		default:
			return false
		}
	}, 200*time.Millisecond, 10*time.Millisecond)
}
