package models

import "time"

// Mood is a catalog entry describing one canonical mood.
// The catalog is reference data: seeded once, read by nearly everything,
// never mutated by request handlers.
type Mood struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	ColorCode   string    `gorm:"default:'#ffffff'" json:"color_code"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
