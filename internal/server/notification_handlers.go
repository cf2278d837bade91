package server

import (
	"github.com/gofiber/fiber/v2"

	"moodwave/internal/models"
)

// GetNotifications handles GET /api/notifications
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 50)

	notifs, err := s.notifRepo.ListByUser(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notifs)
}

// GetUnreadNotificationCount handles GET /api/notifications/unread-count
func (s *Server) GetUnreadNotificationCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	count, err := s.notifRepo.CountUnread(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// MarkNotificationRead handles POST /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	notifID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notif, err := s.notifRepo.GetByID(c.Context(), notifID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if notif.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only read your own notifications"))
	}

	if err := s.notifRepo.MarkRead(c.Context(), notifID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.notifRepo.MarkAllRead(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
