package server

import (
	"moodwave/internal/models"
	"moodwave/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMoods handles GET /api/moods
func (s *Server) GetMoods(c *fiber.Ctx) error {
	moods, err := s.moodService.ListMoods(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(moods)
}

// GetMood handles GET /api/moods/:moodId
func (s *Server) GetMood(c *fiber.Ctx) error {
	moodID, err := s.parseID(c, "moodId")
	if err != nil {
		return nil
	}

	mood, err := s.moodService.GetMoodByID(c.Context(), moodID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mood)
}

// LogMood handles POST /api/moods/log. Moods may be referenced by id or by
// name; the service normalizes the union into a canonical set.
func (s *Server) LogMood(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		MoodID     *uint    `json:"mood_id"`
		MoodIDs    []uint   `json:"mood_ids"`
		MoodNames  []string `json:"mood_names"`
		Method     string   `json:"method"`
		Confidence *float64 `json:"confidence"`
		Caption    string   `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	log, err := s.moodLogService.LogMood(c.Context(), service.LogMoodInput{
		UserID:     userID,
		MoodID:     req.MoodID,
		MoodIDs:    req.MoodIDs,
		MoodNames:  req.MoodNames,
		Method:     req.Method,
		Confidence: req.Confidence,
		Caption:    req.Caption,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// GetMoodHistory handles GET /api/moods/history
func (s *Server) GetMoodHistory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 100)

	logs, err := s.moodLogService.History(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

// AdminCreateMood handles POST /api/admin/moods
func (s *Server) AdminCreateMood(c *fiber.Ctx) error {
	var mood models.Mood
	if err := c.BodyParser(&mood); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.moodService.CreateMood(c.Context(), &mood); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mood)
}
