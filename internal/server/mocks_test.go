package server

import (
	"context"
	"time"

	"moodwave/internal/models"
	"moodwave/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ListWithLogCounts(ctx context.Context, limit, offset int) ([]repository.UserWithLogCount, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.UserWithLogCount), args.Error(1)
}

// MockMoodLogRepository is a mock of the MoodLogRepository interface
type MockMoodLogRepository struct {
	mock.Mock
}

func (m *MockMoodLogRepository) Create(ctx context.Context, log *models.MoodLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockMoodLogRepository) GetByID(ctx context.Context, id uint) (*models.MoodLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoodLog), args.Error(1)
}

func (m *MockMoodLogRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.MoodLog, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MoodLog), args.Error(1)
}

func (m *MockMoodLogRepository) ListByUserWithMoods(ctx context.Context, userID uint) ([]models.MoodLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MoodLog), args.Error(1)
}

func (m *MockMoodLogRepository) ListAll(ctx context.Context, limit, offset int) ([]models.MoodLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MoodLog), args.Error(1)
}

func (m *MockMoodLogRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMoodLogRepository) MoodCountsByUser(ctx context.Context, userID uint) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockMoodLogRepository) MoodCountsForOthers(ctx context.Context, excludeUserID uint) (map[uint]map[string]int, error) {
	args := m.Called(ctx, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]map[string]int), args.Error(1)
}

func (m *MockMoodLogRepository) DeleteByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockConnectionRepository is a mock of the ConnectionRepository interface
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockConnectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	args := m.Called(ctx, userID1, userID2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionRepository) GetConnectedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockConnectionRepository) GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockConnectionRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Connection), args.Error(1)
}

func (m *MockConnectionRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Connection), args.Error(1)
}

func (m *MockConnectionRepository) RelatedStatuses(ctx context.Context, userID uint) (map[uint]models.ConnectionStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]models.ConnectionStatus), args.Error(1)
}

func (m *MockConnectionRepository) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	args := m.Called(ctx, connectionID, status)
	return args.Error(0)
}

func (m *MockConnectionRepository) ResetRequest(ctx context.Context, connectionID, requesterID, addresseeID uint) error {
	args := m.Called(ctx, connectionID, requesterID, addresseeID)
	return args.Error(0)
}

func (m *MockConnectionRepository) Delete(ctx context.Context, connectionID uint) error {
	args := m.Called(ctx, connectionID)
	return args.Error(0)
}

func (m *MockConnectionRepository) RemoveBetween(ctx context.Context, userID1, userID2 uint) error {
	args := m.Called(ctx, userID1, userID2)
	return args.Error(0)
}

// MockFeedRepository is a mock of the FeedRepository interface
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) CreateItem(ctx context.Context, item *models.FeedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFeedRepository) GetItemByID(ctx context.Context, id uint) (*models.FeedItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedItem), args.Error(1)
}

func (m *MockFeedRepository) ListForOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.FeedItem, error) {
	args := m.Called(ctx, ownerIDs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

func (m *MockFeedRepository) ListSince(ctx context.Context, ownerIDs []uint, since time.Time) ([]models.FeedItem, error) {
	args := m.Called(ctx, ownerIDs, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

func (m *MockFeedRepository) AddComment(ctx context.Context, comment *models.FeedComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockFeedRepository) GetCommentByID(ctx context.Context, id uint) (*models.FeedComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedComment), args.Error(1)
}

func (m *MockFeedRepository) AddReply(ctx context.Context, reply *models.FeedReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

// MockNotificationRepository is a mock of the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notif *models.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMoodRepository is a mock of the MoodRepository interface
type MockMoodRepository struct {
	mock.Mock
}

func (m *MockMoodRepository) List(ctx context.Context) ([]models.Mood, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mood), args.Error(1)
}

func (m *MockMoodRepository) GetByID(ctx context.Context, id uint) (*models.Mood, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mood), args.Error(1)
}

func (m *MockMoodRepository) GetByNames(ctx context.Context, names []string) ([]models.Mood, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mood), args.Error(1)
}

func (m *MockMoodRepository) Create(ctx context.Context, mood *models.Mood) error {
	args := m.Called(ctx, mood)
	return args.Error(0)
}

func (m *MockMoodRepository) Update(ctx context.Context, mood *models.Mood) error {
	args := m.Called(ctx, mood)
	return args.Error(0)
}

func (m *MockMoodRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
