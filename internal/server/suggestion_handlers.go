package server

import (
	"moodwave/internal/models"
	"moodwave/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSuggestions handles GET /api/social/suggestions/:userId. The scoring
// engine returns its raw top candidates; connection filtering happens here so
// the engine stays independent of the social graph.
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(c.Context(), targetUserID); err != nil {
		return respondServiceError(c, err)
	}

	suggestions, err := s.suggestionService.Suggest(c.Context(), targetUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	statuses, err := s.connRepo.RelatedStatuses(c.Context(), targetUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	filtered := make([]service.Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if suggestion.User.ID == targetUserID {
			continue
		}
		switch statuses[suggestion.User.ID] {
		case models.ConnectionStatusConnected, models.ConnectionStatusPending:
			continue
		}
		filtered = append(filtered, suggestion)
	}

	return c.JSON(filtered)
}

// GetAnalytics handles GET /api/analytics/:userId
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	result, err := s.analyticsService.Aggregate(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
