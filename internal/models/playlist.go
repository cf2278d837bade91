package models

import "time"

// Track is one playable song reference inside a playlist.
type Track struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
}

// SavedPlaylist is a user-owned collection of tracks, tagged with the mood
// names it was generated from. Mood names are stored normalized: trimmed,
// de-duplicated case-insensitively, placeholders removed.
type SavedPlaylist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Moods     []string  `gorm:"serializer:json" json:"moods"`
	Tracks    []Track   `gorm:"serializer:json" json:"tracks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (SavedPlaylist) TableName() string {
	return "saved_playlists"
}
