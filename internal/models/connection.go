package models

import "time"

// ConnectionStatus represents the status of a friendship edge.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a friend request awaiting a response.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusConnected indicates an accepted friendship.
	ConnectionStatusConnected ConnectionStatus = "connected"
	// ConnectionStatusRejected indicates a declined friend request.
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// Connection is a friendship edge between two users, stored as a directed
// (requester, addressee) pair. The unique index keeps retries idempotent;
// lookups always consider both directions so at most one edge exists per
// unordered pair.
type Connection struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_connection_users" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;uniqueIndex:idx_connection_users" json:"addressee_id"`
	Status      ConnectionStatus `gorm:"type:varchar(20);default:'pending';index:idx_connections_status" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// TableName specifies the table name for GORM
func (Connection) TableName() string {
	return "connections"
}

// OtherUserID returns the user on the far side of the edge from userID.
func (c *Connection) OtherUserID(userID uint) uint {
	if c.RequesterID == userID {
		return c.AddresseeID
	}
	return c.RequesterID
}
