package music

import (
	"strings"

	"moodwave/internal/models"
)

// fallbackCatalog holds a small deterministic playlist per built-in mood so
// the API keeps working without a YouTube key.
var fallbackCatalog = map[string][]models.Track{
	"happy": {
		{VideoID: "ZbZSe6N_BXs", Title: "Pharrell Williams - Happy", ChannelTitle: "Pharrell Williams"},
		{VideoID: "ru0K8uYEZWw", Title: "Queen - Don't Stop Me Now", ChannelTitle: "Queen Official"},
		{VideoID: "y6Sxv-sUYtM", Title: "Katrina & The Waves - Walking On Sunshine", ChannelTitle: "KatrinaWavesVEVO"},
	},
	"sad": {
		{VideoID: "hLQl3WQQoQ0", Title: "Adele - Someone Like You", ChannelTitle: "AdeleVEVO"},
		{VideoID: "4N3N1MlvVc4", Title: "Mad World - Gary Jules", ChannelTitle: "Gary Jules"},
		{VideoID: "8AHCfZTRGiI", Title: "Johnny Cash - Hurt", ChannelTitle: "Johnny Cash"},
	},
	"angry": {
		{VideoID: "WM8bTdBs-cw", Title: "Linkin Park - One Step Closer", ChannelTitle: "Linkin Park"},
		{VideoID: "04F4xlWSFh0", Title: "Rage Against The Machine - Killing In the Name", ChannelTitle: "RATMVEVO"},
		{VideoID: "CSvFpBOe8eY", Title: "Imagine Dragons - Believer", ChannelTitle: "ImagineDragonsVEVO"},
	},
	"calm": {
		{VideoID: "UfcAVejslrU", Title: "Ludovico Einaudi - Nuvole Bianche", ChannelTitle: "Ludovico Einaudi"},
		{VideoID: "2OEL4P1Rz04", Title: "Claude Debussy - Clair de Lune", ChannelTitle: "Classical Music"},
		{VideoID: "5qap5aO4i9A", Title: "lofi hip hop radio - beats to relax/study to", ChannelTitle: "Lofi Girl"},
	},
	"excited": {
		{VideoID: "OPf0YbXqDm0", Title: "Mark Ronson - Uptown Funk ft. Bruno Mars", ChannelTitle: "MarkRonsonVEVO"},
		{VideoID: "fJ9rUzIMcZQ", Title: "Queen - Bohemian Rhapsody", ChannelTitle: "Queen Official"},
		{VideoID: "kJQP7kiw5Fk", Title: "Luis Fonsi - Despacito ft. Daddy Yankee", ChannelTitle: "LuisFonsiVEVO"},
	},
	"tired": {
		{VideoID: "DWcJFNfaw9c", Title: "Billie Eilish - lovely (with Khalid)", ChannelTitle: "BillieEilishVEVO"},
		{VideoID: "bzSTpdcs-EI", Title: "Norah Jones - Don't Know Why", ChannelTitle: "NorahJonesVEVO"},
		{VideoID: "pAyKJAtDNCw", Title: "Bon Iver - Holocene", ChannelTitle: "boniver"},
	},
	"anxious": {
		{VideoID: "F2AitTPI5U0", Title: "Marconi Union - Weightless", ChannelTitle: "Just Music"},
		{VideoID: "1ZYbU82GVz4", Title: "Relaxing Piano Music", ChannelTitle: "Yellow Brick Cinema"},
		{VideoID: "inpok4MKVLM", Title: "5 Minute Meditation", ChannelTitle: "Goodful"},
	},
	"content": {
		{VideoID: "09R8_2nJtjg", Title: "Maroon 5 - Sugar", ChannelTitle: "Maroon5VEVO"},
		{VideoID: "iPUmE-tne5U", Title: "Jack Johnson - Better Together", ChannelTitle: "Jack Johnson"},
		{VideoID: "kbzWG2Ot7_A", Title: "Israel Kamakawiwo'ole - Over The Rainbow", ChannelTitle: "Mountain Apple Company"},
	},
}

// FallbackTracks returns the static playlist for the mood, or a generic set
// for moods outside the built-in catalog. Tracks are returned with URL and
// thumbnail fields filled in.
func FallbackTracks(mood string) []models.Track {
	tracks, ok := fallbackCatalog[strings.ToLower(strings.TrimSpace(mood))]
	if !ok {
		tracks = fallbackCatalog["calm"]
	}
	out := make([]models.Track, len(tracks))
	for i, t := range tracks {
		t.URL = "https://www.youtube.com/watch?v=" + t.VideoID
		t.Thumbnail = "https://img.youtube.com/vi/" + t.VideoID + "/mqdefault.jpg"
		out[i] = t
	}
	return out
}
