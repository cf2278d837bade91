package seed

import (
	"fmt"
	"log"

	"moodwave/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures the demo seeder.
type Options struct {
	NumUsers       int
	LogsPerUser    int
	MaxDays        int
	ConnectDensity float64
	ShouldClean    bool
}

// DefaultOptions returns a small but lively demo dataset configuration.
func DefaultOptions() Options {
	return Options{
		NumUsers:       20,
		LogsPerUser:    15,
		MaxDays:        30,
		ConnectDensity: 0.25,
	}
}

// Run populates the database with demo users, mood histories, a friendship
// mesh, and feed chatter. The built-in mood catalog is installed first.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts = DefaultOptions()
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("seed: clean failed: %w", err)
		}
	}

	if err := Moods(db); err != nil {
		return fmt.Errorf("seed: mood catalog: %w", err)
	}
	var catalog []models.Mood
	if err := db.Find(&catalog).Error; err != nil {
		return err
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed: user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	logs := 0
	for _, user := range users {
		n := 1 + factory.rng.Intn(opts.LogsPerUser)
		for i := 0; i < n; i++ {
			if _, err := factory.CreateMoodLog(user, factory.PickMoods(catalog), opts.MaxDays); err != nil {
				return fmt.Errorf("seed: mood log for user %d: %w", user.ID, err)
			}
			logs++
		}
	}
	log.Printf("seeded %d mood logs", logs)

	edges := 0
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if factory.rng.Float64() > opts.ConnectDensity {
				continue
			}
			status := models.ConnectionStatusConnected
			switch factory.rng.Intn(5) {
			case 0:
				status = models.ConnectionStatusPending
			case 1:
				status = models.ConnectionStatusRejected
			}
			if _, err := factory.CreateConnection(users[i], users[j], status); err != nil {
				return fmt.Errorf("seed: connection: %w", err)
			}
			edges++
		}
	}
	log.Printf("seeded %d connections", edges)

	if err := seedFeedChatter(db, factory, users); err != nil {
		return err
	}
	return nil
}

// seedFeedChatter adds comments and replies from connected friends so the
// demo feed looks alive.
func seedFeedChatter(db *gorm.DB, factory *Factory, users []*models.User) error {
	var items []models.FeedItem
	if err := db.Order("created_at DESC").Limit(60).Find(&items).Error; err != nil {
		return err
	}

	comments := 0
	for _, item := range items {
		if factory.rng.Intn(2) == 0 {
			continue
		}
		commenter := users[factory.rng.Intn(len(users))]
		comment := models.FeedComment{
			FeedItemID: item.ID,
			UserID:     commenter.ID,
			Text:       gofakeit.Sentence(8),
		}
		if err := db.Create(&comment).Error; err != nil {
			return err
		}
		comments++

		if factory.rng.Intn(3) == 0 {
			replier := users[factory.rng.Intn(len(users))]
			reply := models.FeedReply{
				CommentID: comment.ID,
				UserID:    replier.ID,
				Text:      gofakeit.Sentence(6),
			}
			if err := db.Create(&reply).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("seeded %d feed comments", comments)
	return nil
}

// clean removes all seeded rows, dependents first.
func clean(db *gorm.DB) error {
	tables := []string{
		"mood_log_moods",
		"mood_logs",
		"feed_replies",
		"feed_comments",
		"feed_items",
		"notifications",
		"connections",
		"saved_playlists",
		"liked_songs",
		"moods",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
