package server

import (
	"strings"

	"moodwave/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSongsForMood handles GET /api/music/moods/:moodId
func (s *Server) GetSongsForMood(c *fiber.Ctx) error {
	moodID, err := s.parseID(c, "moodId")
	if err != nil {
		return nil
	}

	mood, err := s.moodService.GetMoodByID(c.Context(), moodID)
	if err != nil {
		return respondServiceError(c, err)
	}

	tracks := s.music.SongsForMood(c.Context(), mood.Name)
	return c.JSON(fiber.Map{
		"mood":   mood.Name,
		"tracks": tracks,
	})
}

// GetCombinedSongs handles GET /api/music/combined?moods=a,b
func (s *Server) GetCombinedSongs(c *fiber.Ctx) error {
	raw := c.Query("moods")
	var moods []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			moods = append(moods, m)
		}
	}
	if len(moods) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At least one mood is required"))
	}

	tracks := s.music.SongsForMoods(c.Context(), moods)
	return c.JSON(fiber.Map{
		"moods":  moods,
		"tracks": tracks,
	})
}
