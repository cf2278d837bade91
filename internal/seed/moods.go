// Package seed provides the built-in mood catalog plus demo-data helpers
// for development and testing.
package seed

import (
	"moodwave/internal/models"

	"gorm.io/gorm"
)

// BuiltinMoods is the canonical catalog installed on startup. Names are
// stored with display casing; matching everywhere else is case-insensitive.
var BuiltinMoods = []models.Mood{
	{Name: "Happy", Description: "Upbeat and positive", ColorCode: "#f5c518", Icon: "sun"},
	{Name: "Sad", Description: "Down or blue", ColorCode: "#4a6fa5", Icon: "cloud-rain"},
	{Name: "Angry", Description: "Frustrated or irritated", ColorCode: "#d64545", Icon: "flame"},
	{Name: "Calm", Description: "Relaxed and at ease", ColorCode: "#7fb9a3", Icon: "leaf"},
	{Name: "Excited", Description: "Energized and eager", ColorCode: "#ef7b45", Icon: "zap"},
	{Name: "Tired", Description: "Low energy or drained", ColorCode: "#8d8d99", Icon: "moon"},
	{Name: "Anxious", Description: "Worried or uneasy", ColorCode: "#9b6fb0", Icon: "wind"},
	{Name: "Content", Description: "Quietly satisfied", ColorCode: "#6aa84f", Icon: "coffee"},
}

// Moods installs the built-in catalog, leaving existing rows untouched so
// repeated startups stay idempotent.
func Moods(db *gorm.DB) error {
	for _, mood := range BuiltinMoods {
		var count int64
		if err := db.Model(&models.Mood{}).
			Where("LOWER(name) = LOWER(?)", mood.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		mood := mood
		if err := db.Create(&mood).Error; err != nil {
			return err
		}
	}
	return nil
}
