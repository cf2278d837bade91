package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"moodwave/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the demo seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// demoPasswordHash is shared by all seeded users so demo logins stay cheap;
// the plaintext is "MoodWaveDemo1!".
var demoPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("MoodWaveDemo1!"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// CreateUser persists a user with fake but plausible identity fields.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Name:     name,
		Email:    gofakeit.Email(),
		Password: demoPasswordHash,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// pastTimestamp returns a time spread over the last maxDays days.
func (f *Factory) pastTimestamp(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 30
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().UTC().Add(-back)
}

// CreateMoodLog persists a log for the user referencing one or more catalog
// moods, with a matching feed item so the demo feed has content.
func (f *Factory) CreateMoodLog(user *models.User, moods []models.Mood, maxDays int) (*models.MoodLog, error) {
	if len(moods) == 0 {
		return nil, fmt.Errorf("seed: mood log needs at least one mood")
	}

	log := &models.MoodLog{
		UserID:    user.ID,
		Method:    models.MoodLogMethodManual,
		Timestamp: f.pastTimestamp(maxDays),
	}
	if len(moods) == 1 {
		id := moods[0].ID
		log.MoodID = &id
	} else {
		sort.Slice(moods, func(i, j int) bool { return moods[i].ID < moods[j].ID })
		log.Method = models.MoodLogMethodCombined
		log.Moods = moods
	}
	if f.rng.Intn(3) == 0 {
		log.Method = models.MoodLogMethodWebcam
		confidence := 0.5 + f.rng.Float64()*0.5
		log.Confidence = &confidence
		if len(moods) > 1 {
			log.Method = models.MoodLogMethodCombined
		}
	}
	if err := f.db.Create(log).Error; err != nil {
		return nil, err
	}

	names := make([]string, len(moods))
	for i, m := range moods {
		names[i] = m.Name
	}
	item := &models.FeedItem{
		OwnerID:   user.ID,
		Type:      models.FeedItemTypeMood,
		MoodNames: names,
		Caption:   gofakeit.Sentence(6),
		CreatedAt: log.Timestamp,
	}
	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// CreateConnection persists a friendship edge between two users.
func (f *Factory) CreateConnection(requester, addressee *models.User, status models.ConnectionStatus) (*models.Connection, error) {
	conn := &models.Connection{
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      status,
	}
	if err := f.db.Create(conn).Error; err != nil {
		return nil, err
	}
	return conn, nil
}

// PickMoods returns 1 or 2 random distinct catalog moods.
func (f *Factory) PickMoods(catalog []models.Mood) []models.Mood {
	if len(catalog) == 0 {
		return nil
	}
	first := f.rng.Intn(len(catalog))
	picked := []models.Mood{catalog[first]}
	if len(catalog) > 1 && f.rng.Intn(4) == 0 {
		second := f.rng.Intn(len(catalog))
		for second == first {
			second = f.rng.Intn(len(catalog))
		}
		picked = append(picked, catalog[second])
	}
	return picked
}
