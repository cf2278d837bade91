package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var out payload
	ok, err := GetJSON(ctx, "user:1:analytics", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	SetJSON(ctx, "user:1:analytics", payload{Name: "happy", Count: 3}, time.Minute)

	ok, err = GetJSON(ctx, "user:1:analytics", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "happy", Count: 3}, out)
}

func TestGetJSONCorruptEntry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("user:2:suggestions", "{not json"))

	var out map[string]any
	ok, err := GetJSON(ctx, "user:2:suggestions", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// Corrupt entry is evicted
	assert.False(t, mr.Exists("user:2:suggestions"))
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"happy", "calm"}, nil
	}

	first, err := Aside(ctx, "user:3:moodhistory", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"happy", "calm"}, first)
	assert.Equal(t, 1, calls)

	second, err := Aside(ctx, "user:3:moodhistory", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second read should be served from cache")
}

func TestAsideNilClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := Aside(ctx, "user:4:analytics", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Aside(ctx, "user:4:analytics", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls, "without redis every read hits the loader")
}

func TestInvalidateMoodDerived(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	SetJSON(ctx, MoodHistoryKey(9), []string{"sad"}, time.Minute)
	SetJSON(ctx, SuggestionsKey(9), []string{}, time.Minute)
	SetJSON(ctx, AnalyticsKey(9), map[string]int{"sad": 1}, time.Minute)

	InvalidateMoodDerived(ctx, 9)

	assert.False(t, mr.Exists(MoodHistoryKey(9)))
	assert.False(t, mr.Exists(SuggestionsKey(9)))
	assert.False(t, mr.Exists(AnalyticsKey(9)))
}
