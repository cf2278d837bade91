package models

import "time"

// FeedItemType identifies what kind of activity a feed item represents.
type FeedItemType string

const (
	// FeedItemTypeMood is a mood-log activity post.
	FeedItemTypeMood FeedItemType = "mood"
)

// FeedItem is an append-only activity entry on a user's feed, visible to the
// owner and their connected friends.
type FeedItem struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	OwnerID   uint         `gorm:"not null;index" json:"owner_id"`
	Type      FeedItemType `gorm:"type:varchar(20);not null" json:"type"`
	MoodNames []string     `gorm:"serializer:json" json:"mood_names"`
	Caption   string       `json:"caption"`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`

	Owner    User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Comments []FeedComment `gorm:"foreignKey:FeedItemID" json:"comments"`
}

// TableName specifies the table name for GORM
func (FeedItem) TableName() string {
	return "feed_items"
}

// FeedComment is a comment on a feed item.
type FeedComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FeedItemID uint      `gorm:"not null;index" json:"feed_item_id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	Text       string    `gorm:"not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`

	User    User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []FeedReply `gorm:"foreignKey:CommentID" json:"replies"`
}

// TableName specifies the table name for GORM
func (FeedComment) TableName() string {
	return "feed_comments"
}

// FeedReply is a reply nested under a feed comment.
type FeedReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"not null;index" json:"comment_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (FeedReply) TableName() string {
	return "feed_replies"
}
