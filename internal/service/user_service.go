package service

import (
	"context"

	"moodwave/internal/models"
	"moodwave/internal/repository"
)

// UserService provides user lookup and the admin surface.
type UserService struct {
	userRepo    repository.UserRepository
	moodLogRepo repository.MoodLogRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, moodLogRepo repository.MoodLogRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		moodLogRepo: moodLogRepo,
	}
}

// GetUserByID returns the user with the given ID.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsersWithLogCounts returns users joined with their mood log counts.
// Admin only.
func (s *UserService) ListUsersWithLogCounts(ctx context.Context, limit, offset int) ([]repository.UserWithLogCount, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	return s.userRepo.ListWithLogCounts(ctx, limit, offset)
}

// ListAllMoodLogs returns the latest mood logs across all users. Admin only.
func (s *UserService) ListAllMoodLogs(ctx context.Context, limit, offset int) ([]models.MoodLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	return s.moodLogRepo.ListAll(ctx, limit, offset)
}

// DeleteUser hard-deletes a user and all rows they own. Admin only; this is
// the system's single cascading deletion rule.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, id)
}
