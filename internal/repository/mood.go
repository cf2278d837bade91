package repository

import (
	"context"
	"errors"
	"strings"

	"moodwave/internal/cache"
	"moodwave/internal/models"

	"gorm.io/gorm"
)

// MoodRepository defines persistence operations for the mood catalog.
type MoodRepository interface {
	List(ctx context.Context) ([]models.Mood, error)
	GetByID(ctx context.Context, id uint) (*models.Mood, error)
	GetByNames(ctx context.Context, names []string) ([]models.Mood, error)
	Create(ctx context.Context, mood *models.Mood) error
	Update(ctx context.Context, mood *models.Mood) error
	Delete(ctx context.Context, id uint) error
}

type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository returns a new MoodRepository implementation.
func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) List(ctx context.Context) ([]models.Mood, error) {
	return cache.Aside(ctx, cache.MoodCatalogKey, cache.MoodCatalogTTL, func() ([]models.Mood, error) {
		var moods []models.Mood
		if err := r.db.WithContext(ctx).Order("id").Find(&moods).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return moods, nil
	})
}

func (r *moodRepository) GetByID(ctx context.Context, id uint) (*models.Mood, error) {
	var mood models.Mood
	if err := r.db.WithContext(ctx).First(&mood, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Mood", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &mood, nil
}

// GetByNames resolves lowercased mood names to catalog rows. Unknown names
// are silently absent from the result, callers decide whether that is an
// error.
func (r *moodRepository) GetByNames(ctx context.Context, names []string) ([]models.Mood, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(n)))
	}
	var moods []models.Mood
	if err := r.db.WithContext(ctx).Where("LOWER(name) IN ?", lowered).Find(&moods).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return moods, nil
}

func (r *moodRepository) Create(ctx context.Context, mood *models.Mood) error {
	if err := r.db.WithContext(ctx).Create(mood).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Mood already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodCatalog(ctx)
	return nil
}

func (r *moodRepository) Update(ctx context.Context, mood *models.Mood) error {
	if err := r.db.WithContext(ctx).Save(mood).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodCatalog(ctx)
	return nil
}

func (r *moodRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Mood{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodCatalog(ctx)
	return nil
}
