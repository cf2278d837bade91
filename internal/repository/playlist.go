package repository

import (
	"context"
	"errors"

	"moodwave/internal/models"

	"gorm.io/gorm"
)

// PlaylistRepository defines persistence operations for saved playlists.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *models.SavedPlaylist) error
	GetByID(ctx context.Context, id uint) (*models.SavedPlaylist, error)
	ListByUser(ctx context.Context, userID uint) ([]models.SavedPlaylist, error)
	Update(ctx context.Context, playlist *models.SavedPlaylist) error
	Delete(ctx context.Context, id uint) error
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository returns a new PlaylistRepository implementation.
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.SavedPlaylist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id uint) (*models.SavedPlaylist, error) {
	var playlist models.SavedPlaylist
	if err := r.db.WithContext(ctx).First(&playlist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Playlist", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &playlist, nil
}

func (r *playlistRepository) ListByUser(ctx context.Context, userID uint) ([]models.SavedPlaylist, error) {
	var playlists []models.SavedPlaylist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&playlists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return playlists, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.SavedPlaylist) error {
	if err := r.db.WithContext(ctx).Save(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.SavedPlaylist{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
