package repository

import (
	"context"
	"errors"

	"moodwave/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository defines the interface for friend connection data operations
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error)
	GetConnectedUsers(ctx context.Context, userID uint) ([]models.User, error)
	GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error)
	GetPendingRequests(ctx context.Context, userID uint) ([]models.Connection, error)
	GetSentRequests(ctx context.Context, userID uint) ([]models.Connection, error)
	RelatedStatuses(ctx context.Context, userID uint) (map[uint]models.ConnectionStatus, error)
	UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error
	ResetRequest(ctx context.Context, connectionID, requesterID, addresseeID uint) error
	Delete(ctx context.Context, connectionID uint) error
	RemoveBetween(ctx context.Context, userID1, userID2 uint) error
}

// connectionRepository implements ConnectionRepository
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Connection already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		First(&conn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	var conn models.Connection

	// Find connection where users are either requester/addressee in any order
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Preload("Requester").
		Preload("Addressee").
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No connection exists
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetConnectedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User

	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN connections c ON (users.id = c.requester_id OR users.id = c.addressee_id)").
		Where("c.status = ? AND (c.requester_id = ? OR c.addressee_id = ?) AND users.id != ?",
			models.ConnectionStatusConnected, userID, userID, userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return users, nil
}

func (r *connectionRepository) GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Table("connections").
		Select("CASE WHEN requester_id = ? THEN addressee_id ELSE requester_id END", userID).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)",
			models.ConnectionStatusConnected, userID, userID).
		Scan(&ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *connectionRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection

	// Pending requests where user is the addressee
	if err := r.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Preload("Requester").
		Preload("Addressee").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return conns, nil
}

func (r *connectionRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection

	// Pending requests where user is the requester
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Preload("Requester").
		Preload("Addressee").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return conns, nil
}

// RelatedStatuses returns the connection status keyed by the other user's ID
// for every connection the user participates in, regardless of direction.
func (r *connectionRepository) RelatedStatuses(ctx context.Context, userID uint) (map[uint]models.ConnectionStatus, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	statuses := make(map[uint]models.ConnectionStatus, len(conns))
	for _, c := range conns {
		statuses[c.OtherUserID(userID)] = c.Status
	}
	return statuses, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", connectionID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ResetRequest repurposes an existing edge as a fresh pending request,
// reversing its direction when the new requester sits on the other side.
// Updating in place keeps the pair at a single row.
func (r *connectionRepository) ResetRequest(ctx context.Context, connectionID, requesterID, addresseeID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", connectionID).
		Updates(map[string]interface{}{
			"requester_id": requesterID,
			"addressee_id": addresseeID,
			"status":       models.ConnectionStatusPending,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, connectionID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Connection{}, connectionID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) RemoveBetween(ctx context.Context, userID1, userID2 uint) error {
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Delete(&models.Connection{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
