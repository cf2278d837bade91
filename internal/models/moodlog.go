package models

import "time"

// MoodLogMethod tags how a mood log was produced.
type MoodLogMethod string

const (
	// MoodLogMethodManual indicates the user picked the mood themselves.
	MoodLogMethodManual MoodLogMethod = "manual"
	// MoodLogMethodWebcam indicates the mood came from on-device expression inference.
	MoodLogMethodWebcam MoodLogMethod = "webcam"
	// MoodLogMethodCombined indicates a multi-mood log.
	MoodLogMethodCombined MoodLogMethod = "combined"
)

// MoodLog records a single mood event for a user.
// Exactly one of MoodID (single-mood log) or Moods (combined log, two or more
// distinct moods) is populated. Logs are immutable after creation; they are only
// removed by the cascading delete when the owning user is deleted.
type MoodLog struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	UserID     uint          `gorm:"not null;index" json:"user_id"`
	MoodID     *uint         `json:"mood_id,omitempty"`
	Moods      []Mood        `gorm:"many2many:mood_log_moods" json:"moods,omitempty"`
	Method     MoodLogMethod `gorm:"type:varchar(20);default:'manual'" json:"method"`
	Confidence *float64      `json:"confidence"`
	Timestamp  time.Time     `gorm:"index" json:"timestamp"`
	CreatedAt  time.Time     `json:"created_at"`

	User User  `gorm:"foreignKey:UserID" json:"-"`
	Mood *Mood `gorm:"foreignKey:MoodID" json:"mood,omitempty"`
}

// TableName specifies the table name for GORM
func (MoodLog) TableName() string {
	return "mood_logs"
}

// MoodNames returns every mood name referenced by the log, single or combined.
func (l *MoodLog) MoodNames() []string {
	if l.Mood != nil {
		return []string{l.Mood.Name}
	}
	names := make([]string, 0, len(l.Moods))
	for _, m := range l.Moods {
		names = append(names, m.Name)
	}
	return names
}

// IsCombined reports whether the log references more than one mood.
func (l *MoodLog) IsCombined() bool {
	return len(l.Moods) > 1
}
