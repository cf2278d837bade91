package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodLogRepository_MoodCountsByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodLogRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id", "name", "count"}).
		AddRow(1, "happy", 3).
		AddRow(1, "calm", 2).
		AddRow(1, "tired", 1)
	mock.ExpectQuery(`SELECT user_id, name, SUM\(cnt\) AS count`).
		WithArgs(1, 1).
		WillReturnRows(rows)

	counts, err := repo.MoodCountsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"happy": 3, "calm": 2, "tired": 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodLogRepository_MoodCountsByUser_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodLogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT user_id, name, SUM\(cnt\) AS count`).
		WithArgs(7, 7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "count"}))

	counts, err := repo.MoodCountsByUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodLogRepository_MoodCountsForOthers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodLogRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id", "name", "count"}).
		AddRow(2, "happy", 4).
		AddRow(2, "sad", 1).
		AddRow(3, "calm", 2)
	mock.ExpectQuery(`SELECT user_id, name, SUM\(cnt\) AS count`).
		WithArgs(1, 1).
		WillReturnRows(rows)

	profiles, err := repo.MoodCountsForOthers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]map[string]int{
		2: {"happy": 4, "sad": 1},
		3: {"calm": 2},
	}, profiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodLogRepository_CountByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMoodLogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "mood_logs"`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := repo.CountByUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
