// Package music looks up mood-matched songs via the YouTube Data API, with a
// deterministic static fallback when the API is unreachable or unconfigured.
package music

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"moodwave/internal/cache"
	"moodwave/internal/models"
	"moodwave/internal/observability"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3/search"
	maxResults     = 10
)

// Client is a YouTube search client with an in-memory result cache backed by
// a shared Redis layer.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string

	// key = lowercased mood name
	cache   map[string][]models.Track
	cacheMu sync.RWMutex
}

// NewClient creates a new music client. An empty apiKey is valid; every
// lookup then serves the static fallback.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		cache:   make(map[string][]models.Track),
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SongsForMood returns tracks matching the mood. API failures and a missing
// key degrade to the static fallback rather than erroring.
func (c *Client) SongsForMood(ctx context.Context, mood string) []models.Track {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if mood == "" {
		return []models.Track{}
	}

	c.cacheMu.RLock()
	if cached, ok := c.cache[mood]; ok {
		c.cacheMu.RUnlock()
		observability.MusicLookups.WithLabelValues("cache", "ok").Inc()
		return cached
	}
	c.cacheMu.RUnlock()

	// Second-level cache shared across instances
	var shared []models.Track
	if ok, err := cache.GetJSON(ctx, cache.MusicSearchKey(mood), &shared); err == nil && ok {
		c.cacheMu.Lock()
		c.cache[mood] = shared
		c.cacheMu.Unlock()
		observability.MusicLookups.WithLabelValues("cache", "ok").Inc()
		return shared
	}

	if c.apiKey == "" {
		observability.MusicLookups.WithLabelValues("fallback", "no_key").Inc()
		return FallbackTracks(mood)
	}

	tracks, err := c.search(ctx, mood)
	if err != nil || len(tracks) == 0 {
		observability.MusicLookups.WithLabelValues("fallback", "error").Inc()
		return FallbackTracks(mood)
	}

	c.cacheMu.Lock()
	c.cache[mood] = tracks
	c.cacheMu.Unlock()
	cache.SetJSON(ctx, cache.MusicSearchKey(mood), tracks, cache.MusicSearchTTL)

	observability.MusicLookups.WithLabelValues("youtube", "ok").Inc()
	return tracks
}

// SongsForMoods merges per-mood results round-robin, de-duplicated by video
// id, capped at maxResults.
func (c *Client) SongsForMoods(ctx context.Context, moods []string) []models.Track {
	perMood := make([][]models.Track, 0, len(moods))
	for _, mood := range moods {
		if tracks := c.SongsForMood(ctx, mood); len(tracks) > 0 {
			perMood = append(perMood, tracks)
		}
	}

	seen := make(map[string]bool)
	merged := make([]models.Track, 0, maxResults)
	for i := 0; len(merged) < maxResults; i++ {
		advanced := false
		for _, tracks := range perMood {
			if i >= len(tracks) {
				continue
			}
			advanced = true
			track := tracks[i]
			if seen[track.VideoID] {
				continue
			}
			seen[track.VideoID] = true
			merged = append(merged, track)
			if len(merged) == maxResults {
				break
			}
		}
		if !advanced {
			break
		}
	}
	return merged
}

func (c *Client) search(ctx context.Context, mood string) ([]models.Track, error) {
	params := url.Values{
		"part":       {"snippet"},
		"type":       {"video"},
		"maxResults": {fmt.Sprint(maxResults)},
		"q":          {mood + " songs"},
		"key":        {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("music: youtube search returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("music: parsing search response: %w", err)
	}

	tracks := make([]models.Track, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		tracks = append(tracks, models.Track{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}
	return tracks, nil
}
