package repository

import (
	"context"
	"errors"

	"moodwave/internal/cache"
	"moodwave/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notif *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notif).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNotifCount(ctx, notif.UserID)
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notif models.Notification
	if err := r.db.WithContext(ctx).Preload("FromUser").First(&notif, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Notification", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &notif, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	var notifs []models.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("FromUser").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifs, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	count, err := cache.Aside(ctx, cache.NotifCountKey(userID), cache.NotifCountTTL, func() (int64, error) {
		var c int64
		if err := r.db.WithContext(ctx).
			Model(&models.Notification{}).
			Where("user_id = ? AND read = ?", userID, false).
			Count(&c).Error; err != nil {
			return 0, models.NewInternalError(err)
		}
		return c, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	var notif models.Notification
	if err := r.db.WithContext(ctx).First(&notif, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Notification", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNotifCount(ctx, notif.UserID)
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNotifCount(ctx, userID)
	return nil
}
