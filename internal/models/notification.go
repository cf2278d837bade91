package models

import "time"

// NotificationType identifies what social action produced a notification.
type NotificationType string

const (
	// NotificationTypeFriendRequest is sent to the addressee of a friend request.
	NotificationTypeFriendRequest NotificationType = "friend_request"
	// NotificationTypeFriendAccept is sent to the requester when accepted.
	NotificationTypeFriendAccept NotificationType = "friend_accept"
	// NotificationTypeComment is sent to a feed item's owner on a new comment.
	NotificationTypeComment NotificationType = "comment"
	// NotificationTypeReply is sent to a comment's author on a new reply.
	NotificationTypeReply NotificationType = "reply"
)

// Notification is a durable per-user notification row created as a side effect
// of social actions. Real-time fan-out happens separately over Redis pub/sub.
type Notification struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index" json:"user_id"`
	FromUserID uint             `json:"from_user_id"`
	Type       NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Data       map[string]any   `gorm:"serializer:json" json:"data"`
	Read       bool             `gorm:"default:false" json:"read"`
	CreatedAt  time.Time        `gorm:"index" json:"created_at"`

	FromUser User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
