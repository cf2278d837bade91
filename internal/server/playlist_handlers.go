package server

import (
	"moodwave/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SavePlaylist handles POST /api/playlists
func (s *Server) SavePlaylist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name   string         `json:"name"`
		Moods  []string       `json:"moods"`
		Tracks []models.Track `json:"tracks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.SavePlaylist(c.Context(), userID, req.Name, req.Moods, req.Tracks)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(playlist)
}

// GetPlaylists handles GET /api/playlists
func (s *Server) GetPlaylists(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	playlists, err := s.playlistService.ListPlaylists(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(playlists)
}

// RenamePlaylist handles PUT /api/playlists/:id
func (s *Server) RenamePlaylist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.RenamePlaylist(c.Context(), userID, playlistID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(playlist)
}

// DeletePlaylist handles DELETE /api/playlists/:id
func (s *Server) DeletePlaylist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.playlistService.DeletePlaylist(c.Context(), userID, playlistID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Playlist deleted"})
}

// LikeSong handles POST /api/liked
func (s *Server) LikeSong(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var song models.LikedSong
	if err := c.BodyParser(&song); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	saved, err := s.playlistService.LikeSong(c.Context(), userID, song)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GetLikedSongs handles GET /api/liked
func (s *Server) GetLikedSongs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	songs, err := s.playlistService.ListLikedSongs(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(songs)
}

// UnlikeSong handles DELETE /api/liked/:videoId
func (s *Server) UnlikeSong(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	videoID := c.Params("videoId")

	if err := s.playlistService.UnlikeSong(c.Context(), userID, videoID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Song removed from liked list"})
}
