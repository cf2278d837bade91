package repository

import (
	"context"

	"moodwave/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikedSongRepository defines persistence operations for liked songs.
type LikedSongRepository interface {
	Add(ctx context.Context, song *models.LikedSong) error
	ListByUser(ctx context.Context, userID uint) ([]models.LikedSong, error)
	Remove(ctx context.Context, userID uint, videoID string) error
	IsLiked(ctx context.Context, userID uint, videoID string) (bool, error)
}

type likedSongRepository struct {
	db *gorm.DB
}

// NewLikedSongRepository returns a new LikedSongRepository implementation.
func NewLikedSongRepository(db *gorm.DB) LikedSongRepository {
	return &likedSongRepository{db: db}
}

// Add inserts the song, ignoring the write when the user already liked it so
// repeated likes stay idempotent.
func (r *likedSongRepository) Add(ctx context.Context, song *models.LikedSong) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoNothing: true,
		}).
		Create(song).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likedSongRepository) ListByUser(ctx context.Context, userID uint) ([]models.LikedSong, error) {
	var songs []models.LikedSong
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&songs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return songs, nil
}

func (r *likedSongRepository) Remove(ctx context.Context, userID uint, videoID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.LikedSong{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likedSongRepository) IsLiked(ctx context.Context, userID uint, videoID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikedSong{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
