package models

import "time"

// LikedSong is a single track a user has saved to their liked list.
// The (user, video) pair is unique so repeated saves are idempotent.
type LikedSong struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_liked_user_video" json:"user_id"`
	VideoID      string    `gorm:"not null;uniqueIndex:idx_liked_user_video" json:"video_id"`
	Title        string    `json:"title"`
	Thumbnail    string    `json:"thumbnail"`
	ChannelTitle string    `json:"channel_title"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (LikedSong) TableName() string {
	return "liked_songs"
}
