package service

import (
	"context"
	"sort"
	"strings"

	"moodwave/internal/cache"
	"moodwave/internal/models"
	"moodwave/internal/repository"
)

// SingleMoodCount is a per-individual-mood frequency entry.
type SingleMoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MultiMoodCount is a per-unique-combination frequency entry. Moods holds
// the combination's constituent names sorted alphabetically.
type MultiMoodCount struct {
	Moods []string `json:"moods"`
	Count int      `json:"count"`
}

// AnalyticsResult summarizes a user's mood-logging history.
type AnalyticsResult struct {
	Single    []SingleMoodCount `json:"single"`
	Multi     []MultiMoodCount  `json:"multi"`
	TotalLogs int               `json:"totalLogs"`
}

// AnalyticsService computes per-user mood breakdowns from historical logs.
// Read-only and idempotent.
type AnalyticsService struct {
	moodLogRepo repository.MoodLogRepository
}

// NewAnalyticsService returns a new AnalyticsService.
func NewAnalyticsService(moodLogRepo repository.MoodLogRepository) *AnalyticsService {
	return &AnalyticsService{moodLogRepo: moodLogRepo}
}

// Aggregate builds both breakdowns for the user. The single breakdown counts
// every individual mood name across single and combined logs, so a combined
// {happy, calm} log counts toward both names. The multi breakdown groups
// combined logs by their order-independent sorted-name key. Zero logs yields
// empty arrays, not an error. Results are cached; any mood log write for the
// user invalidates the entry.
func (s *AnalyticsService) Aggregate(ctx context.Context, userID uint) (*AnalyticsResult, error) {
	return cache.Aside(ctx, cache.AnalyticsKey(userID), cache.AnalyticsTTL,
		func() (*AnalyticsResult, error) {
			return s.aggregate(ctx, userID)
		})
}

func (s *AnalyticsService) aggregate(ctx context.Context, userID uint) (*AnalyticsResult, error) {
	logs, err := s.moodLogRepo.ListByUserWithMoods(ctx, userID)
	if err != nil {
		return nil, err
	}

	singleCounts := make(map[string]int)
	multiCounts := make(map[string]int)
	multiNames := make(map[string][]string)
	display := make(map[string]string)

	for _, log := range logs {
		names := moodNamesOf(log)
		keys := make([]string, 0, len(names))
		for _, name := range names {
			key := strings.ToLower(name)
			if _, seen := display[key]; !seen {
				display[key] = name
			}
			singleCounts[key]++
			keys = append(keys, key)
		}
		if len(keys) > 1 {
			sort.Strings(keys)
			key := strings.Join(keys, "|")
			multiCounts[key]++
			if _, seen := multiNames[key]; !seen {
				multiNames[key] = keys
			}
		}
	}

	single := make([]SingleMoodCount, 0, len(singleCounts))
	for key, count := range singleCounts {
		single = append(single, SingleMoodCount{Mood: display[key], Count: count})
	}
	sort.Slice(single, func(i, j int) bool {
		if single[i].Count != single[j].Count {
			return single[i].Count > single[j].Count
		}
		return single[i].Mood < single[j].Mood
	})

	type multiEntry struct {
		MultiMoodCount
		key string
	}
	entries := make([]multiEntry, 0, len(multiCounts))
	for key, count := range multiCounts {
		moods := make([]string, 0, len(multiNames[key]))
		for _, k := range multiNames[key] {
			moods = append(moods, display[k])
		}
		entries = append(entries, multiEntry{MultiMoodCount{Moods: moods, Count: count}, key})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].key < entries[j].key
	})
	multi := make([]MultiMoodCount, 0, len(entries))
	for _, e := range entries {
		multi = append(multi, e.MultiMoodCount)
	}

	return &AnalyticsResult{
		Single:    single,
		Multi:     multi,
		TotalLogs: len(logs),
	}, nil
}

// moodNamesOf resolves a log's referenced moods to their stored names,
// whichever of the single reference or the combined set is populated.
// Grouping is case-insensitive; the caller keys on lowercased names but
// reports the stored spelling.
func moodNamesOf(log models.MoodLog) []string {
	if log.Mood != nil {
		return []string{log.Mood.Name}
	}
	names := make([]string, 0, len(log.Moods))
	for _, m := range log.Moods {
		names = append(names, m.Name)
	}
	return names
}
