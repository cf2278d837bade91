package repository

import (
	"context"
	"errors"

	"moodwave/internal/cache"
	"moodwave/internal/models"

	"gorm.io/gorm"
)

// MoodLogRepository defines persistence operations for mood logs.
type MoodLogRepository interface {
	Create(ctx context.Context, log *models.MoodLog) error
	GetByID(ctx context.Context, id uint) (*models.MoodLog, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.MoodLog, error)
	ListByUserWithMoods(ctx context.Context, userID uint) ([]models.MoodLog, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.MoodLog, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	MoodCountsByUser(ctx context.Context, userID uint) (map[string]int, error)
	MoodCountsForOthers(ctx context.Context, excludeUserID uint) (map[uint]map[string]int, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

type moodLogRepository struct {
	db *gorm.DB
}

// NewMoodLogRepository returns a new MoodLogRepository implementation.
func NewMoodLogRepository(db *gorm.DB) MoodLogRepository {
	return &moodLogRepository{db: db}
}

func (r *moodLogRepository) Create(ctx context.Context, log *models.MoodLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodDerived(ctx, log.UserID)
	return nil
}

func (r *moodLogRepository) GetByID(ctx context.Context, id uint) (*models.MoodLog, error) {
	var log models.MoodLog
	if err := r.db.WithContext(ctx).
		Preload("Mood").
		Preload("Moods").
		First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Mood log", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &log, nil
}

func (r *moodLogRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Mood").
		Preload("Moods").
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

// ListByUserWithMoods returns every log for the user with mood rows attached.
// Used by the analytics aggregator, which needs the full history.
func (r *moodLogRepository) ListByUserWithMoods(ctx context.Context, userID uint) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Mood").
		Preload("Moods").
		Order("timestamp ASC").
		Find(&logs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

func (r *moodLogRepository) ListAll(ctx context.Context, limit, offset int) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	if err := r.db.WithContext(ctx).
		Preload("Mood").
		Preload("Moods").
		Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return logs, nil
}

func (r *moodLogRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MoodLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

type moodCountRow struct {
	UserID uint
	Name   string
	Count  int
}

// moodCountsQuery aggregates lowercased mood-name frequencies per user in a
// single pass. Single-mood logs come from the mood_id column, combined logs
// contribute one count per constituent via the join table.
const moodCountsQuery = `
SELECT user_id, name, SUM(cnt) AS count FROM (
	SELECT ml.user_id AS user_id, LOWER(m.name) AS name, COUNT(*) AS cnt
	  FROM mood_logs ml
	  JOIN moods m ON m.id = ml.mood_id
	 WHERE ml.mood_id IS NOT NULL AND %s
	 GROUP BY ml.user_id, LOWER(m.name)
	UNION ALL
	SELECT ml.user_id AS user_id, LOWER(m.name) AS name, COUNT(*) AS cnt
	  FROM mood_logs ml
	  JOIN mood_log_moods mlm ON mlm.mood_log_id = ml.id
	  JOIN moods m ON m.id = mlm.mood_id
	 WHERE %s
	 GROUP BY ml.user_id, LOWER(m.name)
) t GROUP BY user_id, name`

func (r *moodLogRepository) MoodCountsByUser(ctx context.Context, userID uint) (map[string]int, error) {
	var rows []moodCountRow
	query := sprintfQuery(moodCountsQuery, "ml.user_id = ?")
	if err := r.db.WithContext(ctx).Raw(query, userID, userID).Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Name] += row.Count
	}
	return counts, nil
}

// MoodCountsForOthers aggregates mood-name frequencies for every user except
// excludeUserID, grouped by user, in one query rather than per-user fan-out.
func (r *moodLogRepository) MoodCountsForOthers(ctx context.Context, excludeUserID uint) (map[uint]map[string]int, error) {
	var rows []moodCountRow
	query := sprintfQuery(moodCountsQuery, "ml.user_id <> ?")
	if err := r.db.WithContext(ctx).Raw(query, excludeUserID, excludeUserID).Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	profiles := make(map[uint]map[string]int)
	for _, row := range rows {
		if profiles[row.UserID] == nil {
			profiles[row.UserID] = make(map[string]int)
		}
		profiles[row.UserID][row.Name] += row.Count
	}
	return profiles, nil
}

func (r *moodLogRepository) DeleteByUser(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM mood_log_moods WHERE mood_log_id IN (SELECT id FROM mood_logs WHERE user_id = ?)", userID,
		).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.MoodLog{}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMoodDerived(ctx, userID)
	return nil
}
