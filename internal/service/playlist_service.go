package service

import (
	"context"
	"strings"

	"moodwave/internal/models"
	"moodwave/internal/repository"
)

// PlaylistService manages saved playlists and liked songs.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	likedRepo    repository.LikedSongRepository
}

// NewPlaylistService returns a new PlaylistService.
func NewPlaylistService(playlistRepo repository.PlaylistRepository, likedRepo repository.LikedSongRepository) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		likedRepo:    likedRepo,
	}
}

// NormalizeMoods trims mood names, drops empties and placeholders, and
// de-duplicates case-insensitively, preserving first-seen order and casing.
func NormalizeMoods(moods []string) []string {
	seen := make(map[string]bool, len(moods))
	out := make([]string, 0, len(moods))
	for _, m := range moods {
		trimmed := strings.TrimSpace(m)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if key == "unknown" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// SavePlaylist persists a playlist for the user.
func (s *PlaylistService) SavePlaylist(ctx context.Context, userID uint, name string, moods []string, tracks []models.Track) (*models.SavedPlaylist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Playlist name is required")
	}
	if len(name) > 100 {
		return nil, models.NewValidationError("Playlist name too long (max 100 characters)")
	}
	if len(tracks) == 0 {
		return nil, models.NewValidationError("Playlist needs at least one track")
	}

	playlist := &models.SavedPlaylist{
		UserID: userID,
		Name:   name,
		Moods:  NormalizeMoods(moods),
		Tracks: tracks,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// ListPlaylists returns the user's saved playlists, newest first.
func (s *PlaylistService) ListPlaylists(ctx context.Context, userID uint) ([]models.SavedPlaylist, error) {
	return s.playlistRepo.ListByUser(ctx, userID)
}

// RenamePlaylist renames a playlist owned by the user.
func (s *PlaylistService) RenamePlaylist(ctx context.Context, userID, playlistID uint, name string) (*models.SavedPlaylist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Playlist name is required")
	}

	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only rename your own playlists")
	}

	playlist.Name = name
	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist removes a playlist owned by the user.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, userID, playlistID uint) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own playlists")
	}
	return s.playlistRepo.Delete(ctx, playlistID)
}

// LikeSong saves a track to the user's liked list. Idempotent per
// (user, video) pair.
func (s *PlaylistService) LikeSong(ctx context.Context, userID uint, song models.LikedSong) (*models.LikedSong, error) {
	if strings.TrimSpace(song.VideoID) == "" {
		return nil, models.NewValidationError("Video id is required")
	}
	song.UserID = userID
	if err := s.likedRepo.Add(ctx, &song); err != nil {
		return nil, err
	}
	return &song, nil
}

// ListLikedSongs returns the user's liked songs, newest first.
func (s *PlaylistService) ListLikedSongs(ctx context.Context, userID uint) ([]models.LikedSong, error) {
	return s.likedRepo.ListByUser(ctx, userID)
}

// UnlikeSong removes a track from the user's liked list.
func (s *PlaylistService) UnlikeSong(ctx context.Context, userID uint, videoID string) error {
	if strings.TrimSpace(videoID) == "" {
		return models.NewValidationError("Video id is required")
	}
	return s.likedRepo.Remove(ctx, userID, videoID)
}
