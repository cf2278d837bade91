// Package bootstrap wires up the runtime dependencies shared by the server
// and the seed command.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"moodwave/internal/cache"
	"moodwave/internal/config"
	"moodwave/internal/database"
	"moodwave/internal/models"
	"moodwave/internal/seed"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally seeds the built-in mood
// catalog.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	// Connect DB
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureAdminUser(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap admin user: %w", err)
	}

	if opts.SeedBuiltIns {
		if err := seed.Moods(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in moods: %w", err)
		}
	}

	return db, r, nil
}

// ensureAdminUser creates or promotes the configured admin account. A no-op
// unless both ADMIN_EMAIL and ADMIN_PASSWORD are set.
func ensureAdminUser(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	email := strings.TrimSpace(strings.ToLower(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Where("email = ?", email).First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Name:     "Admin",
				Email:    email,
				Password: string(hashedPassword),
				IsAdmin:  true,
			}
			return tx.Create(&admin).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&models.User{}).
				Where("id = ?", admin.ID).
				Update("is_admin", true).Error
		}
	}); err != nil {
		return err
	}

	log.Printf("admin user ensured for %s", email)
	return nil
}
