package service

import (
	"context"
	"strings"

	"moodwave/internal/models"
	"moodwave/internal/repository"
	"moodwave/internal/validation"
)

// MoodService exposes the mood catalog.
type MoodService struct {
	moodRepo repository.MoodRepository
}

// NewMoodService returns a new MoodService.
func NewMoodService(moodRepo repository.MoodRepository) *MoodService {
	return &MoodService{moodRepo: moodRepo}
}

// ListMoods returns the full mood catalog.
func (s *MoodService) ListMoods(ctx context.Context) ([]models.Mood, error) {
	return s.moodRepo.List(ctx)
}

// GetMoodByID returns a single catalog entry.
func (s *MoodService) GetMoodByID(ctx context.Context, id uint) (*models.Mood, error) {
	return s.moodRepo.GetByID(ctx, id)
}

// CreateMood adds a catalog entry. Display casing is kept as given; all
// matching elsewhere is case-insensitive.
func (s *MoodService) CreateMood(ctx context.Context, mood *models.Mood) error {
	mood.Name = strings.TrimSpace(mood.Name)
	if err := validation.ValidateMoodName(strings.ToLower(mood.Name)); err != nil {
		return models.NewValidationError(err.Error())
	}
	if mood.ColorCode != "" {
		if err := validation.ValidateColorCode(mood.ColorCode); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return s.moodRepo.Create(ctx, mood)
}
