package repository

import (
	"context"
	"errors"
	"time"

	"moodwave/internal/models"

	"gorm.io/gorm"
)

// FeedRepository defines persistence operations for feed items, comments and
// replies.
type FeedRepository interface {
	CreateItem(ctx context.Context, item *models.FeedItem) error
	GetItemByID(ctx context.Context, id uint) (*models.FeedItem, error)
	ListForOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.FeedItem, error)
	ListSince(ctx context.Context, ownerIDs []uint, since time.Time) ([]models.FeedItem, error)
	AddComment(ctx context.Context, comment *models.FeedComment) error
	GetCommentByID(ctx context.Context, id uint) (*models.FeedComment, error)
	AddReply(ctx context.Context, reply *models.FeedReply) error
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository returns a new FeedRepository implementation.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) CreateItem(ctx context.Context, item *models.FeedItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *feedRepository) GetItemByID(ctx context.Context, id uint) (*models.FeedItem, error) {
	var item models.FeedItem
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Comments.User").
		Preload("Comments.Replies.User").
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Feed item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *feedRepository) ListForOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.FeedItem, error) {
	if len(ownerIDs) == 0 {
		return []models.FeedItem{}, nil
	}
	var items []models.FeedItem
	if err := r.db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Preload("Owner").
		Preload("Comments.User").
		Preload("Comments.Replies.User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *feedRepository) ListSince(ctx context.Context, ownerIDs []uint, since time.Time) ([]models.FeedItem, error) {
	if len(ownerIDs) == 0 {
		return []models.FeedItem{}, nil
	}
	var items []models.FeedItem
	if err := r.db.WithContext(ctx).
		Where("owner_id IN ? AND created_at >= ?", ownerIDs, since).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *feedRepository) AddComment(ctx context.Context, comment *models.FeedComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *feedRepository) GetCommentByID(ctx context.Context, id uint) (*models.FeedComment, error) {
	var comment models.FeedComment
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *feedRepository) AddReply(ctx context.Context, reply *models.FeedReply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
