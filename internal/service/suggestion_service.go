package service

import (
	"context"
	"math"
	"sort"
	"time"

	"moodwave/internal/cache"
	"moodwave/internal/models"
	"moodwave/internal/observability"
	"moodwave/internal/repository"
)

// MoodProfile maps lowercased mood names to occurrence counts.
type MoodProfile map[string]int

// Total returns the sum of all counts in the profile.
func (p MoodProfile) Total() int {
	total := 0
	for _, c := range p {
		total += c
	}
	return total
}

// Suggestion is one ranked friend candidate.
type Suggestion struct {
	User        models.PublicProfile `json:"user"`
	Score       int                  `json:"score"`
	SharedMoods []string             `json:"sharedMoods"`
}

// SuggestionService ranks other users by mood-frequency overlap with a
// target user. It knows nothing about connection state; callers filter
// out already-connected, pending, and self entries.
type SuggestionService struct {
	moodLogRepo repository.MoodLogRepository
	userRepo    repository.UserRepository
}

// NewSuggestionService returns a new SuggestionService.
func NewSuggestionService(moodLogRepo repository.MoodLogRepository, userRepo repository.UserRepository) *SuggestionService {
	return &SuggestionService{
		moodLogRepo: moodLogRepo,
		userRepo:    userRepo,
	}
}

const (
	maxSuggestions = 10
	maxSharedMoods = 3
)

// ScoreAgainst computes the asymmetric overlap score of other against target:
// the integer percentage of the target's own mood activity that the other
// user also exhibits.
func ScoreAgainst(target, other MoodProfile) int {
	totalTarget := target.Total()
	if totalTarget == 0 {
		return 0
	}
	overlap := 0
	for name, targetCount := range target {
		if otherCount, ok := other[name]; ok {
			overlap += min(targetCount, otherCount)
		}
	}
	return int(math.Round(float64(overlap) / float64(totalTarget) * 100))
}

// SharedMoods returns up to three mood names present in both profiles,
// ordered by the pair's combined count for that mood, ties by name.
func SharedMoods(target, other MoodProfile) []string {
	type shared struct {
		name     string
		combined int
	}
	var moods []shared
	for name, targetCount := range target {
		if otherCount, ok := other[name]; ok {
			moods = append(moods, shared{name: name, combined: targetCount + otherCount})
		}
	}
	sort.Slice(moods, func(i, j int) bool {
		if moods[i].combined != moods[j].combined {
			return moods[i].combined > moods[j].combined
		}
		return moods[i].name < moods[j].name
	})
	if len(moods) > maxSharedMoods {
		moods = moods[:maxSharedMoods]
	}
	names := make([]string, len(moods))
	for i, m := range moods {
		names[i] = m.name
	}
	return names
}

// Suggest returns the top candidates for the target user, ranked by score
// descending, ties by user ID ascending. A target with no mood history
// short-circuits to an empty list without scanning other users. Results are
// cached; any mood log write for the user invalidates the entry.
func (s *SuggestionService) Suggest(ctx context.Context, targetUserID uint) ([]Suggestion, error) {
	return cache.Aside(ctx, cache.SuggestionsKey(targetUserID), cache.SuggestionsTTL,
		func() ([]Suggestion, error) {
			return s.compute(ctx, targetUserID)
		})
}

func (s *SuggestionService) compute(ctx context.Context, targetUserID uint) ([]Suggestion, error) {
	start := time.Now()

	target, err := s.moodLogRepo.MoodCountsByUser(ctx, targetUserID)
	if err != nil {
		observability.SuggestionComputations.WithLabelValues("error").Inc()
		return nil, err
	}
	if len(target) == 0 {
		observability.SuggestionComputations.WithLabelValues("empty_profile").Inc()
		return []Suggestion{}, nil
	}

	others, err := s.moodLogRepo.MoodCountsForOthers(ctx, targetUserID)
	if err != nil {
		observability.SuggestionComputations.WithLabelValues("error").Inc()
		return nil, err
	}

	type candidate struct {
		userID      uint
		score       int
		sharedMoods []string
	}
	candidates := make([]candidate, 0, len(others))
	for userID, profile := range others {
		candidates = append(candidates, candidate{
			userID:      userID,
			score:       ScoreAgainst(MoodProfile(target), MoodProfile(profile)),
			sharedMoods: SharedMoods(MoodProfile(target), MoodProfile(profile)),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].userID < candidates[j].userID
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		profile := models.PublicProfile{ID: c.userID, Name: "Unknown"}
		if user, err := s.userRepo.GetByID(ctx, c.userID); err == nil && user != nil {
			profile = user.Public()
		}
		shared := c.sharedMoods
		if shared == nil {
			shared = []string{}
		}
		suggestions = append(suggestions, Suggestion{
			User:        profile,
			Score:       c.score,
			SharedMoods: shared,
		})
	}

	observability.SuggestionComputations.WithLabelValues("ok").Inc()
	observability.SuggestionLatency.Observe(time.Since(start).Seconds())
	return suggestions, nil
}
