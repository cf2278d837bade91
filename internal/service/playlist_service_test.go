package service

import (
	"context"
	"reflect"
	"testing"

	"moodwave/internal/models"
)

func TestNormalizeMoods(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "Trims And Drops Empties",
			input: []string{" Happy ", "", "   "},
			want:  []string{"Happy"},
		},
		{
			name:  "Drops Placeholder",
			input: []string{"Happy", "Unknown", "unknown"},
			want:  []string{"Happy"},
		},
		{
			name:  "Dedupes Case Insensitively",
			input: []string{"Happy", "happy", "HAPPY", "Calm"},
			want:  []string{"Happy", "Calm"},
		},
		{
			name:  "Keeps First Seen Order",
			input: []string{"Calm", "Happy", "calm"},
			want:  []string{"Calm", "Happy"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMoods(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSavePlaylistValidation(t *testing.T) {
	svc := NewPlaylistService(noopPlaylistRepo(), noopLikedSongRepo())
	track := models.Track{VideoID: "abc", Title: "Song"}

	_, err := svc.SavePlaylist(context.Background(), 1, "  ", nil, []models.Track{track})
	expectValidationError(t, err)

	_, err = svc.SavePlaylist(context.Background(), 1, "Chill", nil, nil)
	expectValidationError(t, err)
}

func TestSavePlaylistNormalizes(t *testing.T) {
	playlists := noopPlaylistRepo()
	var saved *models.SavedPlaylist
	playlists.createFn = func(_ context.Context, p *models.SavedPlaylist) error {
		saved = p
		return nil
	}
	svc := NewPlaylistService(playlists, noopLikedSongRepo())

	got, err := svc.SavePlaylist(context.Background(), 1, "  Evening mix ",
		[]string{" Happy", "happy", "unknown"},
		[]models.Track{{VideoID: "abc", Title: "Song"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || got.Name != "Evening mix" || got.UserID != 1 {
		t.Fatalf("unexpected playlist %#v", got)
	}
	if !reflect.DeepEqual(got.Moods, []string{"Happy"}) {
		t.Fatalf("expected normalized moods, got %v", got.Moods)
	}
}

func TestRenamePlaylistOwnerOnly(t *testing.T) {
	playlists := noopPlaylistRepo()
	playlists.getByIDFn = func(_ context.Context, id uint) (*models.SavedPlaylist, error) {
		return &models.SavedPlaylist{ID: id, UserID: 2, Name: "Old"}, nil
	}
	svc := NewPlaylistService(playlists, noopLikedSongRepo())

	_, err := svc.RenamePlaylist(context.Background(), 1, 10, "New")
	expectUnauthorizedError(t, err)
}

func TestRenamePlaylist(t *testing.T) {
	playlists := noopPlaylistRepo()
	playlists.getByIDFn = func(_ context.Context, id uint) (*models.SavedPlaylist, error) {
		return &models.SavedPlaylist{ID: id, UserID: 1, Name: "Old"}, nil
	}
	var updated *models.SavedPlaylist
	playlists.updateFn = func(_ context.Context, p *models.SavedPlaylist) error {
		updated = p
		return nil
	}
	svc := NewPlaylistService(playlists, noopLikedSongRepo())

	got, err := svc.RenamePlaylist(context.Background(), 1, 10, " New ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil || got.Name != "New" {
		t.Fatalf("expected renamed playlist, got %#v", got)
	}
}

func TestDeletePlaylistOwnerOnly(t *testing.T) {
	playlists := noopPlaylistRepo()
	playlists.getByIDFn = func(_ context.Context, id uint) (*models.SavedPlaylist, error) {
		return &models.SavedPlaylist{ID: id, UserID: 2}, nil
	}
	playlists.deleteFn = func(context.Context, uint) error {
		t.Fatal("must not delete another user's playlist")
		return nil
	}
	svc := NewPlaylistService(playlists, noopLikedSongRepo())

	expectUnauthorizedError(t, svc.DeletePlaylist(context.Background(), 1, 10))
}

func TestLikeSong(t *testing.T) {
	liked := noopLikedSongRepo()
	var added *models.LikedSong
	liked.addFn = func(_ context.Context, song *models.LikedSong) error {
		added = song
		return nil
	}
	svc := NewPlaylistService(noopPlaylistRepo(), liked)

	got, err := svc.LikeSong(context.Background(), 3, models.LikedSong{VideoID: "abc", Title: "Song"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added == nil || got.UserID != 3 || got.VideoID != "abc" {
		t.Fatalf("unexpected liked song %#v", got)
	}
}

func TestLikeSongRequiresVideoID(t *testing.T) {
	svc := NewPlaylistService(noopPlaylistRepo(), noopLikedSongRepo())
	_, err := svc.LikeSong(context.Background(), 3, models.LikedSong{Title: "Song"})
	expectValidationError(t, err)
}

func TestUnlikeSongRequiresVideoID(t *testing.T) {
	svc := NewPlaylistService(noopPlaylistRepo(), noopLikedSongRepo())
	expectValidationError(t, svc.UnlikeSong(context.Background(), 3, "  "))
}
