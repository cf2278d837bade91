// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"moodwave/internal/cache"
	"moodwave/internal/models"

	"gorm.io/gorm"
)

// UserWithLogCount is a user row joined with their mood log count, used by
// the admin user listing.
type UserWithLogCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	LogCount  int64  `json:"log_count"`
	CreatedAt string `json:"created_at"`
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	DeleteCascade(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	ListWithLogCounts(ctx context.Context, limit, offset int) ([]UserWithLogCount, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := cache.Aside(ctx, cache.UserKey(id), cache.UserTTL, func() (models.User, error) {
		var u models.User
		if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return u, models.NewNotFoundError("User", id)
			}
			return u, models.NewInternalError(err)
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505, SQLite "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// DeleteCascade hard-deletes a user and every row they own. Used by the admin
// surface; regular account deletion soft-deletes via Delete.
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM mood_log_moods WHERE mood_log_id IN (SELECT id FROM mood_logs WHERE user_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.MoodLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requester_id = ? OR addressee_id = ?", id, id).Delete(&models.Connection{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM feed_replies WHERE user_id = ? OR comment_id IN (SELECT id FROM feed_comments WHERE feed_item_id IN (SELECT id FROM feed_items WHERE owner_id = ?))", id, id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM feed_comments WHERE user_id = ? OR feed_item_id IN (SELECT id FROM feed_items WHERE owner_id = ?)", id, id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.FeedItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR from_user_id = ?", id, id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.SavedPlaylist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.LikedSong{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	cache.InvalidateMoodDerived(ctx, id)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("id").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) ListWithLogCounts(ctx context.Context, limit, offset int) ([]UserWithLogCount, error) {
	var rows []UserWithLogCount
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.name, users.email, users.is_admin, users.created_at, COALESCE(l.cnt, 0) AS log_count").
		Joins("LEFT JOIN (SELECT user_id, COUNT(*) AS cnt FROM mood_logs GROUP BY user_id) l ON l.user_id = users.id").
		Where("users.deleted_at IS NULL").
		Order("users.id").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}
