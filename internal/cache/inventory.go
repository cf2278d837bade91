package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	MoodCatalogKey    = "moods:catalog"
	MoodHistoryPrefix = "user:%d:moodhistory"
	SuggestionsPrefix = "user:%d:suggestions"
	AnalyticsPrefix   = "user:%d:analytics"
	FeedSummaryPrefix = "user:%d:feedsummary"
	MusicSearchPrefix = "music:search:%s"
	NotifCountPrefix  = "user:%d:notifcount"
)

const (
	UserTTL        = 5 * time.Minute
	MoodCatalogTTL = 30 * time.Minute
	MoodHistoryTTL = 2 * time.Minute
	SuggestionsTTL = 5 * time.Minute
	AnalyticsTTL   = 5 * time.Minute
	FeedSummaryTTL = 2 * time.Minute
	MusicSearchTTL = 6 * time.Hour
	NotifCountTTL  = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func MoodHistoryKey(userID uint) string {
	return fmt.Sprintf(MoodHistoryPrefix, userID)
}

func SuggestionsKey(userID uint) string {
	return fmt.Sprintf(SuggestionsPrefix, userID)
}

func AnalyticsKey(userID uint) string {
	return fmt.Sprintf(AnalyticsPrefix, userID)
}

func FeedSummaryKey(userID uint) string {
	return fmt.Sprintf(FeedSummaryPrefix, userID)
}

func MusicSearchKey(query string) string {
	return fmt.Sprintf(MusicSearchPrefix, query)
}

func NotifCountKey(userID uint) string {
	return fmt.Sprintf(NotifCountPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateMoodDerived drops the poster's own mood-derived views after a
// write to mood_logs. Feed summaries are keyed per viewer, so the friends'
// cached summaries are left to expire via FeedSummaryTTL instead.
func InvalidateMoodDerived(ctx context.Context, userID uint) {
	Invalidate(ctx, MoodHistoryKey(userID))
	Invalidate(ctx, SuggestionsKey(userID))
	Invalidate(ctx, AnalyticsKey(userID))
}

func InvalidateMoodCatalog(ctx context.Context) {
	Invalidate(ctx, MoodCatalogKey)
}

func InvalidateNotifCount(ctx context.Context, userID uint) {
	Invalidate(ctx, NotifCountKey(userID))
}
