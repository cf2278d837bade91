package service

import (
	"context"
	"log/slog"

	"moodwave/internal/middleware"
	"moodwave/internal/models"
	"moodwave/internal/notifications"
	"moodwave/internal/repository"
)

// FriendService provides friend-request and connection business logic.
type FriendService struct {
	connRepo  repository.ConnectionRepository
	userRepo  repository.UserRepository
	notifRepo repository.NotificationRepository
	notifier  *notifications.Notifier
}

// NewFriendService returns a new FriendService.
func NewFriendService(
	connRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	notifier *notifications.Notifier,
) *FriendService {
	return &FriendService{
		connRepo:  connRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		notifier:  notifier,
	}
}

// SendFriendRequest sends a friend request to the target user.
func (s *FriendService) SendFriendRequest(ctx context.Context, userID, targetUserID uint) (*models.Connection, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.connRepo.GetBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.ConnectionStatusConnected:
			return nil, models.NewValidationError("You are already connected")
		case models.ConnectionStatusPending:
			if existing.RequesterID == userID {
				return nil, models.NewValidationError("Friend request already sent")
			}
			return nil, models.NewValidationError("You already have a pending friend request from this user")
		}

		// Rejected edge: reuse the row so the pair never grows a second edge,
		// reversing direction when the other side is retrying.
		if err := s.connRepo.ResetRequest(ctx, existing.ID, userID, targetUserID); err != nil {
			return nil, err
		}

		s.notify(ctx, targetUserID, userID, models.NotificationTypeFriendRequest, map[string]any{
			"connection_id": existing.ID,
		})

		return s.connRepo.GetByID(ctx, existing.ID)
	}

	conn := &models.Connection{
		RequesterID: userID,
		AddresseeID: targetUserID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}

	s.notify(ctx, targetUserID, userID, models.NotificationTypeFriendRequest, map[string]any{
		"connection_id": conn.ID,
	})

	return s.connRepo.GetByID(ctx, conn.ID)
}

// GetPendingRequests returns pending friend requests for the user.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.connRepo.GetPendingRequests(ctx, userID)
}

// GetSentRequests returns friend requests sent by the user.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.connRepo.GetSentRequests(ctx, userID)
}

// AcceptFriendRequest accepts a pending friend request.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint) (*models.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if conn.AddresseeID != userID {
		return nil, models.NewUnauthorizedError("You can only accept friend requests sent to you")
	}
	if conn.Status != models.ConnectionStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.connRepo.UpdateStatus(ctx, requestID, models.ConnectionStatusConnected); err != nil {
		return nil, err
	}

	s.notify(ctx, conn.RequesterID, userID, models.NotificationTypeFriendAccept, map[string]any{
		"connection_id": conn.ID,
	})

	return s.connRepo.GetByID(ctx, requestID)
}

// RejectFriendRequest rejects or cancels a pending friend request.
func (s *FriendService) RejectFriendRequest(ctx context.Context, userID, requestID uint) (*models.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if conn.AddresseeID != userID && conn.RequesterID != userID {
		return nil, models.NewUnauthorizedError("You can only reject or cancel your own pending requests")
	}
	if conn.Status != models.ConnectionStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.connRepo.UpdateStatus(ctx, requestID, models.ConnectionStatusRejected); err != nil {
		return nil, err
	}

	return conn, nil
}

// RemoveFriend deletes the connection between the user and a friend.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	conn, err := s.connRepo.GetBetweenUsers(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if conn == nil || conn.Status != models.ConnectionStatusConnected {
		return models.NewNotFoundError("Connection", friendID)
	}
	return s.connRepo.RemoveBetween(ctx, userID, friendID)
}

// GetFriends returns the list of connected users for the user.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.connRepo.GetConnectedUsers(ctx, userID)
}

// RelatedStatuses returns connection status keyed by the other user's ID.
func (s *FriendService) RelatedStatuses(ctx context.Context, userID uint) (map[uint]models.ConnectionStatus, error) {
	return s.connRepo.RelatedStatuses(ctx, userID)
}

// notify persists a notification row and publishes it. Notification failure
// never fails the triggering request.
func (s *FriendService) notify(ctx context.Context, toUserID, fromUserID uint, typ models.NotificationType, data map[string]any) {
	notif := &models.Notification{
		UserID:     toUserID,
		FromUserID: fromUserID,
		Type:       typ,
		Data:       data,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to persist notification",
			slog.String("type", string(typ)),
			slog.String("error", err.Error()),
		)
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishNotification(ctx, notif); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to publish notification",
				slog.String("type", string(typ)),
				slog.String("error", err.Error()),
			)
		}
	}
}
