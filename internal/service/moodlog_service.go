package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"moodwave/internal/models"
	"moodwave/internal/observability"
	"moodwave/internal/repository"
)

// LogMoodInput is the boundary shape for a mood-logging request. Moods may
// be referenced by id or by name, mixed freely; normalization resolves the
// union into a canonical duplicate-free mood set.
type LogMoodInput struct {
	UserID     uint
	MoodID     *uint
	MoodIDs    []uint
	MoodNames  []string
	Method     string
	Confidence *float64
	Caption    string
}

// MoodLogService handles mood logging and history retrieval.
type MoodLogService struct {
	moodLogRepo repository.MoodLogRepository
	moodRepo    repository.MoodRepository
	feedRepo    repository.FeedRepository
}

// NewMoodLogService returns a new MoodLogService.
func NewMoodLogService(
	moodLogRepo repository.MoodLogRepository,
	moodRepo repository.MoodRepository,
	feedRepo repository.FeedRepository,
) *MoodLogService {
	return &MoodLogService{
		moodLogRepo: moodLogRepo,
		moodRepo:    moodRepo,
		feedRepo:    feedRepo,
	}
}

var validMethods = map[models.MoodLogMethod]bool{
	models.MoodLogMethodManual:   true,
	models.MoodLogMethodWebcam:   true,
	models.MoodLogMethodCombined: true,
}

// resolveMoods normalizes the id/name references in the input to catalog
// rows, deduplicated by mood id.
func (s *MoodLogService) resolveMoods(ctx context.Context, in LogMoodInput) ([]models.Mood, error) {
	ids := make(map[uint]bool)
	if in.MoodID != nil {
		ids[*in.MoodID] = true
	}
	for _, id := range in.MoodIDs {
		ids[id] = true
	}

	var moods []models.Mood
	for id := range ids {
		mood, err := s.moodRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		moods = append(moods, *mood)
	}

	if len(in.MoodNames) > 0 {
		byName, err := s.moodRepo.GetByNames(ctx, in.MoodNames)
		if err != nil {
			return nil, err
		}
		wanted := make(map[string]bool, len(in.MoodNames))
		for _, n := range in.MoodNames {
			wanted[strings.ToLower(strings.TrimSpace(n))] = true
		}
		resolved := make(map[string]bool, len(byName))
		for _, m := range byName {
			resolved[strings.ToLower(m.Name)] = true
			if !ids[m.ID] {
				ids[m.ID] = true
				moods = append(moods, m)
			}
		}
		for name := range wanted {
			if name != "" && !resolved[name] {
				return nil, models.NewValidationError("Unknown mood: " + name)
			}
		}
	}

	sort.Slice(moods, func(i, j int) bool { return moods[i].ID < moods[j].ID })
	return moods, nil
}

// LogMood validates and persists a mood log, then appends a "mood" item to
// the user's feed.
func (s *MoodLogService) LogMood(ctx context.Context, in LogMoodInput) (*models.MoodLog, error) {
	method := models.MoodLogMethod(strings.ToLower(strings.TrimSpace(in.Method)))
	if method == "" {
		method = models.MoodLogMethodManual
	}
	if !validMethods[method] {
		return nil, models.NewValidationError("Method must be one of manual, webcam, combined")
	}
	if in.Confidence != nil && (*in.Confidence < 0 || *in.Confidence > 1) {
		return nil, models.NewValidationError("Confidence must be between 0 and 1")
	}

	moods, err := s.resolveMoods(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(moods) == 0 {
		return nil, models.NewValidationError("At least one mood is required")
	}

	log := &models.MoodLog{
		UserID:     in.UserID,
		Method:     method,
		Confidence: in.Confidence,
		Timestamp:  time.Now().UTC(),
	}
	if len(moods) == 1 {
		id := moods[0].ID
		log.MoodID = &id
	} else {
		// A multi-mood set is a combined log regardless of the declared method
		log.Method = models.MoodLogMethodCombined
		log.Moods = moods
	}

	if err := s.moodLogRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	observability.MoodLogsCreated.WithLabelValues(string(log.Method)).Inc()

	names := make([]string, len(moods))
	for i, m := range moods {
		names[i] = m.Name
	}
	item := &models.FeedItem{
		OwnerID:   in.UserID,
		Type:      models.FeedItemTypeMood,
		MoodNames: names,
		Caption:   in.Caption,
	}
	if err := s.feedRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return s.moodLogRepo.GetByID(ctx, log.ID)
}

// History returns the user's mood logs, newest first.
func (s *MoodLogService) History(ctx context.Context, userID uint, limit, offset int) ([]models.MoodLog, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	return s.moodLogRepo.ListByUser(ctx, userID, limit, offset)
}
