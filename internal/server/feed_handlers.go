package server

import (
	"moodwave/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 50)

	items, err := s.feedService.GetFeed(c.Context(), userID, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

// GetFeedSummary handles GET /api/feed/summary
func (s *Server) GetFeedSummary(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	summary, err := s.feedService.Summarize(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}

// AddFeedComment handles POST /api/feed/:feedId/comments
func (s *Server) AddFeedComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	feedItemID, err := s.parseID(c, "feedId")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.feedService.AddComment(c.Context(), userID, feedItemID, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// AddFeedReply handles POST /api/feed/:feedId/comments/:commentId/replies
func (s *Server) AddFeedReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	feedItemID, err := s.parseID(c, "feedId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.feedService.AddReply(c.Context(), userID, feedItemID, commentID, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}
