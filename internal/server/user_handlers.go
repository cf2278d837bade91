package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:userId, returning only public
// profile fields.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user.Public())
}

// AdminGetUsers handles GET /api/admin/users with per-user mood log counts.
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	users, err := s.userService.ListUsersWithLogCounts(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// AdminGetMoodLogs handles GET /api/admin/moodlogs
func (s *Server) AdminGetMoodLogs(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	logs, err := s.userService.ListAllMoodLogs(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

// AdminDeleteUser handles DELETE /api/admin/users/:id, removing the user and
// every row they own.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), targetID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
