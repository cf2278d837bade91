package server

import (
	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	conn, err := s.friendService.SendFriendRequest(c.Context(), userID, targetUserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(conn)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.GetPendingRequests(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetSentRequests handles GET /api/friends/requests/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.GetSentRequests(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	conn, err := s.friendService.AcceptFriendRequest(c.Context(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(conn)
}

// RejectFriendRequest handles POST /api/friends/requests/:requestId/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	conn, err := s.friendService.RejectFriendRequest(c.Context(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(conn)
}

// RemoveFriend handles DELETE /api/friends/:userId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	friendID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Friend removed"})
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(friends)
}

// GetFriendStatuses handles GET /api/friends/statuses, returning the
// connection status keyed by the other user's ID.
func (s *Server) GetFriendStatuses(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	statuses, err := s.friendService.RelatedStatuses(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(statuses)
}
