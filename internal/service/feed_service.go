package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"moodwave/internal/cache"
	"moodwave/internal/models"
	"moodwave/internal/notifications"
	"moodwave/internal/repository"
)

// FeedService provides the activity feed: mood posts with nested comments
// and replies, visible to the owner and their connected friends.
type FeedService struct {
	feedRepo  repository.FeedRepository
	connRepo  repository.ConnectionRepository
	notifRepo repository.NotificationRepository
	notifier  *notifications.Notifier
}

// NewFeedService returns a new FeedService.
func NewFeedService(
	feedRepo repository.FeedRepository,
	connRepo repository.ConnectionRepository,
	notifRepo repository.NotificationRepository,
	notifier *notifications.Notifier,
) *FeedService {
	return &FeedService{
		feedRepo:  feedRepo,
		connRepo:  connRepo,
		notifRepo: notifRepo,
		notifier:  notifier,
	}
}

const feedPageSize = 50

// visibleOwners returns the user plus their connected friends.
func (s *FeedService) visibleOwners(ctx context.Context, userID uint) ([]uint, error) {
	friendIDs, err := s.connRepo.GetConnectedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append([]uint{userID}, friendIDs...), nil
}

// GetFeed returns the newest feed items from the user and their friends.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, offset int) ([]models.FeedItem, error) {
	owners, err := s.visibleOwners(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.feedRepo.ListForOwners(ctx, owners, feedPageSize, offset)
}

// AddComment appends a comment to a visible feed item and notifies the
// item's owner when the commenter is someone else.
func (s *FeedService) AddComment(ctx context.Context, userID, feedItemID uint, text string) (*models.FeedComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(text) > 1000 {
		return nil, models.NewValidationError("Comment too long (max 1000 characters)")
	}

	item, err := s.feedRepo.GetItemByID(ctx, feedItemID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVisible(ctx, userID, item.OwnerID); err != nil {
		return nil, err
	}

	comment := &models.FeedComment{
		FeedItemID: feedItemID,
		UserID:     userID,
		Text:       text,
	}
	if err := s.feedRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	if item.OwnerID != userID {
		s.notifyFeed(ctx, item.OwnerID, userID, models.NotificationTypeComment, map[string]any{
			"feed_item_id": feedItemID,
			"comment_id":   comment.ID,
		})
	}

	return s.feedRepo.GetCommentByID(ctx, comment.ID)
}

// AddReply appends a reply under a comment and notifies the comment's author
// when the replier is someone else.
func (s *FeedService) AddReply(ctx context.Context, userID, feedItemID, commentID uint, text string) (*models.FeedReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Reply text is required")
	}
	if len(text) > 1000 {
		return nil, models.NewValidationError("Reply too long (max 1000 characters)")
	}

	item, err := s.feedRepo.GetItemByID(ctx, feedItemID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVisible(ctx, userID, item.OwnerID); err != nil {
		return nil, err
	}

	comment, err := s.feedRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.FeedItemID != feedItemID {
		return nil, models.NewValidationError("Comment does not belong to this feed item")
	}

	reply := &models.FeedReply{
		CommentID: commentID,
		UserID:    userID,
		Text:      text,
	}
	if err := s.feedRepo.AddReply(ctx, reply); err != nil {
		return nil, err
	}

	if comment.UserID != userID {
		s.notifyFeed(ctx, comment.UserID, userID, models.NotificationTypeReply, map[string]any{
			"feed_item_id": feedItemID,
			"comment_id":   commentID,
			"reply_id":     reply.ID,
		})
	}

	return reply, nil
}

// FeedSummary is a histogram of the network's recent moods with a short
// human-readable line.
type FeedSummary struct {
	Counts  []SingleMoodCount `json:"counts"`
	Summary string            `json:"summary"`
	Since   time.Time         `json:"since"`
}

// Summarize builds a 7-day mood histogram over the user's network feed.
func (s *FeedService) Summarize(ctx context.Context, userID uint) (*FeedSummary, error) {
	return cache.Aside(ctx, cache.FeedSummaryKey(userID), cache.FeedSummaryTTL, func() (*FeedSummary, error) {
		owners, err := s.visibleOwners(ctx, userID)
		if err != nil {
			return nil, err
		}
		since := time.Now().UTC().AddDate(0, 0, -7)
		items, err := s.feedRepo.ListSince(ctx, owners, since)
		if err != nil {
			return nil, err
		}

		histogram := make(map[string]int)
		for _, item := range items {
			for _, name := range item.MoodNames {
				histogram[strings.ToLower(name)]++
			}
		}

		counts := make([]SingleMoodCount, 0, len(histogram))
		for mood, count := range histogram {
			counts = append(counts, SingleMoodCount{Mood: mood, Count: count})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].Count != counts[j].Count {
				return counts[i].Count > counts[j].Count
			}
			return counts[i].Mood < counts[j].Mood
		})

		summary := "No mood activity in your circle this week."
		if len(counts) > 0 {
			summary = fmt.Sprintf("Your circle has mostly been feeling %s this week (%d times).",
				counts[0].Mood, counts[0].Count)
		}

		return &FeedSummary{Counts: counts, Summary: summary, Since: since}, nil
	})
}

// requireVisible checks that ownerID's feed is visible to userID: it is their
// own feed or they are connected.
func (s *FeedService) requireVisible(ctx context.Context, userID, ownerID uint) error {
	if userID == ownerID {
		return nil
	}
	conn, err := s.connRepo.GetBetweenUsers(ctx, userID, ownerID)
	if err != nil {
		return err
	}
	if conn == nil || conn.Status != models.ConnectionStatusConnected {
		return models.NewUnauthorizedError("You can only interact with feeds of your connections")
	}
	return nil
}

// notifyFeed persists and publishes a feed notification, never failing the
// triggering request.
func (s *FeedService) notifyFeed(ctx context.Context, toUserID, fromUserID uint, typ models.NotificationType, data map[string]any) {
	notif := &models.Notification{
		UserID:     toUserID,
		FromUserID: fromUserID,
		Type:       typ,
		Data:       data,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return
	}
	if s.notifier != nil {
		_ = s.notifier.PublishNotification(ctx, notif)
	}
}
