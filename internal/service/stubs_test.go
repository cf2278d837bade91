package service

import (
	"context"
	"time"

	"moodwave/internal/models"
	"moodwave/internal/repository"
)

type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	createFn            func(context.Context, *models.User) error
	updateFn            func(context.Context, *models.User) error
	deleteFn            func(context.Context, uint) error
	deleteCascadeFn     func(context.Context, uint) error
	listFn              func(context.Context, int, int) ([]models.User, error)
	listWithLogCountsFn func(context.Context, int, int) ([]repository.UserWithLogCount, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListWithLogCounts(ctx context.Context, limit, offset int) ([]repository.UserWithLogCount, error) {
	return s.listWithLogCountsFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		deleteCascadeFn: func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		listWithLogCountsFn: func(context.Context, int, int) ([]repository.UserWithLogCount, error) {
			return nil, nil
		},
	}
}

type connRepoStub struct {
	createFn              func(context.Context, *models.Connection) error
	getByIDFn             func(context.Context, uint) (*models.Connection, error)
	getBetweenUsersFn     func(context.Context, uint, uint) (*models.Connection, error)
	getConnectedUsersFn   func(context.Context, uint) ([]models.User, error)
	getConnectedUserIDsFn func(context.Context, uint) ([]uint, error)
	getPendingRequestsFn  func(context.Context, uint) ([]models.Connection, error)
	getSentRequestsFn     func(context.Context, uint) ([]models.Connection, error)
	relatedStatusesFn     func(context.Context, uint) (map[uint]models.ConnectionStatus, error)
	updateStatusFn        func(context.Context, uint, models.ConnectionStatus) error
	resetRequestFn        func(context.Context, uint, uint, uint) error
	deleteFn              func(context.Context, uint) error
	removeBetweenFn       func(context.Context, uint, uint) error
}

func (s *connRepoStub) Create(ctx context.Context, conn *models.Connection) error {
	return s.createFn(ctx, conn)
}
func (s *connRepoStub) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	return s.getByIDFn(ctx, id)
}
func (s *connRepoStub) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	return s.getBetweenUsersFn(ctx, userID1, userID2)
}
func (s *connRepoStub) GetConnectedUsers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getConnectedUsersFn(ctx, userID)
}
func (s *connRepoStub) GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getConnectedUserIDsFn(ctx, userID)
}
func (s *connRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *connRepoStub) GetSentRequests(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.getSentRequestsFn(ctx, userID)
}
func (s *connRepoStub) RelatedStatuses(ctx context.Context, userID uint) (map[uint]models.ConnectionStatus, error) {
	return s.relatedStatusesFn(ctx, userID)
}
func (s *connRepoStub) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	return s.updateStatusFn(ctx, connectionID, status)
}
func (s *connRepoStub) ResetRequest(ctx context.Context, connectionID, requesterID, addresseeID uint) error {
	return s.resetRequestFn(ctx, connectionID, requesterID, addresseeID)
}
func (s *connRepoStub) Delete(ctx context.Context, connectionID uint) error {
	return s.deleteFn(ctx, connectionID)
}
func (s *connRepoStub) RemoveBetween(ctx context.Context, userID1, userID2 uint) error {
	return s.removeBetweenFn(ctx, userID1, userID2)
}

func noopConnRepo() *connRepoStub {
	return &connRepoStub{
		createFn:              func(context.Context, *models.Connection) error { return nil },
		getByIDFn:             func(context.Context, uint) (*models.Connection, error) { return &models.Connection{}, nil },
		getBetweenUsersFn:     func(context.Context, uint, uint) (*models.Connection, error) { return nil, nil },
		getConnectedUsersFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getConnectedUserIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		getPendingRequestsFn:  func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		getSentRequestsFn:     func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		relatedStatusesFn: func(context.Context, uint) (map[uint]models.ConnectionStatus, error) {
			return map[uint]models.ConnectionStatus{}, nil
		},
		updateStatusFn:  func(context.Context, uint, models.ConnectionStatus) error { return nil },
		resetRequestFn:  func(context.Context, uint, uint, uint) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		removeBetweenFn: func(context.Context, uint, uint) error { return nil },
	}
}

type moodLogRepoStub struct {
	createFn              func(context.Context, *models.MoodLog) error
	getByIDFn             func(context.Context, uint) (*models.MoodLog, error)
	listByUserFn          func(context.Context, uint, int, int) ([]models.MoodLog, error)
	listByUserWithMoodsFn func(context.Context, uint) ([]models.MoodLog, error)
	listAllFn             func(context.Context, int, int) ([]models.MoodLog, error)
	countByUserFn         func(context.Context, uint) (int64, error)
	moodCountsByUserFn    func(context.Context, uint) (map[string]int, error)
	moodCountsForOthersFn func(context.Context, uint) (map[uint]map[string]int, error)
	deleteByUserFn        func(context.Context, uint) error
}

func (s *moodLogRepoStub) Create(ctx context.Context, log *models.MoodLog) error {
	return s.createFn(ctx, log)
}
func (s *moodLogRepoStub) GetByID(ctx context.Context, id uint) (*models.MoodLog, error) {
	return s.getByIDFn(ctx, id)
}
func (s *moodLogRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.MoodLog, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *moodLogRepoStub) ListByUserWithMoods(ctx context.Context, userID uint) ([]models.MoodLog, error) {
	return s.listByUserWithMoodsFn(ctx, userID)
}
func (s *moodLogRepoStub) ListAll(ctx context.Context, limit, offset int) ([]models.MoodLog, error) {
	return s.listAllFn(ctx, limit, offset)
}
func (s *moodLogRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *moodLogRepoStub) MoodCountsByUser(ctx context.Context, userID uint) (map[string]int, error) {
	return s.moodCountsByUserFn(ctx, userID)
}
func (s *moodLogRepoStub) MoodCountsForOthers(ctx context.Context, excludeUserID uint) (map[uint]map[string]int, error) {
	return s.moodCountsForOthersFn(ctx, excludeUserID)
}
func (s *moodLogRepoStub) DeleteByUser(ctx context.Context, userID uint) error {
	return s.deleteByUserFn(ctx, userID)
}

func noopMoodLogRepo() *moodLogRepoStub {
	return &moodLogRepoStub{
		createFn: func(context.Context, *models.MoodLog) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.MoodLog, error) {
			return &models.MoodLog{ID: id}, nil
		},
		listByUserFn:          func(context.Context, uint, int, int) ([]models.MoodLog, error) { return nil, nil },
		listByUserWithMoodsFn: func(context.Context, uint) ([]models.MoodLog, error) { return nil, nil },
		listAllFn:             func(context.Context, int, int) ([]models.MoodLog, error) { return nil, nil },
		countByUserFn:         func(context.Context, uint) (int64, error) { return 0, nil },
		moodCountsByUserFn:    func(context.Context, uint) (map[string]int, error) { return map[string]int{}, nil },
		moodCountsForOthersFn: func(context.Context, uint) (map[uint]map[string]int, error) {
			return map[uint]map[string]int{}, nil
		},
		deleteByUserFn: func(context.Context, uint) error { return nil },
	}
}

type moodRepoStub struct {
	listFn       func(context.Context) ([]models.Mood, error)
	getByIDFn    func(context.Context, uint) (*models.Mood, error)
	getByNamesFn func(context.Context, []string) ([]models.Mood, error)
	createFn     func(context.Context, *models.Mood) error
	updateFn     func(context.Context, *models.Mood) error
	deleteFn     func(context.Context, uint) error
}

func (s *moodRepoStub) List(ctx context.Context) ([]models.Mood, error) { return s.listFn(ctx) }
func (s *moodRepoStub) GetByID(ctx context.Context, id uint) (*models.Mood, error) {
	return s.getByIDFn(ctx, id)
}
func (s *moodRepoStub) GetByNames(ctx context.Context, names []string) ([]models.Mood, error) {
	return s.getByNamesFn(ctx, names)
}
func (s *moodRepoStub) Create(ctx context.Context, mood *models.Mood) error {
	return s.createFn(ctx, mood)
}
func (s *moodRepoStub) Update(ctx context.Context, mood *models.Mood) error {
	return s.updateFn(ctx, mood)
}
func (s *moodRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

// catalogMoodRepo serves a fixed in-memory catalog by id and name.
func catalogMoodRepo(moods ...models.Mood) *moodRepoStub {
	byID := make(map[uint]models.Mood, len(moods))
	byName := make(map[string]models.Mood, len(moods))
	for _, m := range moods {
		byID[m.ID] = m
		byName[lower(m.Name)] = m
	}
	return &moodRepoStub{
		listFn: func(context.Context) ([]models.Mood, error) { return moods, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Mood, error) {
			m, ok := byID[id]
			if !ok {
				return nil, models.NewNotFoundError("Mood", id)
			}
			return &m, nil
		},
		getByNamesFn: func(_ context.Context, names []string) ([]models.Mood, error) {
			var out []models.Mood
			for _, n := range names {
				if m, ok := byName[lower(n)]; ok {
					out = append(out, m)
				}
			}
			return out, nil
		},
		createFn: func(context.Context, *models.Mood) error { return nil },
		updateFn: func(context.Context, *models.Mood) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

type feedRepoStub struct {
	createItemFn     func(context.Context, *models.FeedItem) error
	getItemByIDFn    func(context.Context, uint) (*models.FeedItem, error)
	listForOwnersFn  func(context.Context, []uint, int, int) ([]models.FeedItem, error)
	listSinceFn      func(context.Context, []uint, time.Time) ([]models.FeedItem, error)
	addCommentFn     func(context.Context, *models.FeedComment) error
	getCommentByIDFn func(context.Context, uint) (*models.FeedComment, error)
	addReplyFn       func(context.Context, *models.FeedReply) error
}

func (s *feedRepoStub) CreateItem(ctx context.Context, item *models.FeedItem) error {
	return s.createItemFn(ctx, item)
}
func (s *feedRepoStub) GetItemByID(ctx context.Context, id uint) (*models.FeedItem, error) {
	return s.getItemByIDFn(ctx, id)
}
func (s *feedRepoStub) ListForOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.FeedItem, error) {
	return s.listForOwnersFn(ctx, ownerIDs, limit, offset)
}
func (s *feedRepoStub) ListSince(ctx context.Context, ownerIDs []uint, since time.Time) ([]models.FeedItem, error) {
	return s.listSinceFn(ctx, ownerIDs, since)
}
func (s *feedRepoStub) AddComment(ctx context.Context, comment *models.FeedComment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *feedRepoStub) GetCommentByID(ctx context.Context, id uint) (*models.FeedComment, error) {
	return s.getCommentByIDFn(ctx, id)
}
func (s *feedRepoStub) AddReply(ctx context.Context, reply *models.FeedReply) error {
	return s.addReplyFn(ctx, reply)
}

func noopFeedRepo() *feedRepoStub {
	return &feedRepoStub{
		createItemFn: func(context.Context, *models.FeedItem) error { return nil },
		getItemByIDFn: func(_ context.Context, id uint) (*models.FeedItem, error) {
			return &models.FeedItem{ID: id}, nil
		},
		listForOwnersFn: func(context.Context, []uint, int, int) ([]models.FeedItem, error) { return nil, nil },
		listSinceFn:     func(context.Context, []uint, time.Time) ([]models.FeedItem, error) { return nil, nil },
		addCommentFn:    func(context.Context, *models.FeedComment) error { return nil },
		getCommentByIDFn: func(_ context.Context, id uint) (*models.FeedComment, error) {
			return &models.FeedComment{ID: id}, nil
		},
		addReplyFn: func(context.Context, *models.FeedReply) error { return nil },
	}
}

type notifRepoStub struct {
	createFn      func(context.Context, *models.Notification) error
	getByIDFn     func(context.Context, uint) (*models.Notification, error)
	listByUserFn  func(context.Context, uint, int, int) ([]models.Notification, error)
	countUnreadFn func(context.Context, uint) (int64, error)
	markReadFn    func(context.Context, uint) error
	markAllReadFn func(context.Context, uint) error
}

func (s *notifRepoStub) Create(ctx context.Context, notif *models.Notification) error {
	return s.createFn(ctx, notif)
}
func (s *notifRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notifRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *notifRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notifRepoStub) MarkRead(ctx context.Context, id uint) error {
	return s.markReadFn(ctx, id)
}
func (s *notifRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}

func noopNotifRepo() *notifRepoStub {
	return &notifRepoStub{
		createFn:      func(context.Context, *models.Notification) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Notification, error) { return &models.Notification{}, nil },
		listByUserFn:  func(context.Context, uint, int, int) ([]models.Notification, error) { return nil, nil },
		countUnreadFn: func(context.Context, uint) (int64, error) { return 0, nil },
		markReadFn:    func(context.Context, uint) error { return nil },
		markAllReadFn: func(context.Context, uint) error { return nil },
	}
}

type playlistRepoStub struct {
	createFn     func(context.Context, *models.SavedPlaylist) error
	getByIDFn    func(context.Context, uint) (*models.SavedPlaylist, error)
	listByUserFn func(context.Context, uint) ([]models.SavedPlaylist, error)
	updateFn     func(context.Context, *models.SavedPlaylist) error
	deleteFn     func(context.Context, uint) error
}

func (s *playlistRepoStub) Create(ctx context.Context, playlist *models.SavedPlaylist) error {
	return s.createFn(ctx, playlist)
}
func (s *playlistRepoStub) GetByID(ctx context.Context, id uint) (*models.SavedPlaylist, error) {
	return s.getByIDFn(ctx, id)
}
func (s *playlistRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.SavedPlaylist, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *playlistRepoStub) Update(ctx context.Context, playlist *models.SavedPlaylist) error {
	return s.updateFn(ctx, playlist)
}
func (s *playlistRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPlaylistRepo() *playlistRepoStub {
	return &playlistRepoStub{
		createFn:     func(context.Context, *models.SavedPlaylist) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.SavedPlaylist, error) { return &models.SavedPlaylist{ID: id}, nil },
		listByUserFn: func(context.Context, uint) ([]models.SavedPlaylist, error) { return nil, nil },
		updateFn:     func(context.Context, *models.SavedPlaylist) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type likedSongRepoStub struct {
	addFn        func(context.Context, *models.LikedSong) error
	listByUserFn func(context.Context, uint) ([]models.LikedSong, error)
	removeFn     func(context.Context, uint, string) error
	isLikedFn    func(context.Context, uint, string) (bool, error)
}

func (s *likedSongRepoStub) Add(ctx context.Context, song *models.LikedSong) error {
	return s.addFn(ctx, song)
}
func (s *likedSongRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.LikedSong, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *likedSongRepoStub) Remove(ctx context.Context, userID uint, videoID string) error {
	return s.removeFn(ctx, userID, videoID)
}
func (s *likedSongRepoStub) IsLiked(ctx context.Context, userID uint, videoID string) (bool, error) {
	return s.isLikedFn(ctx, userID, videoID)
}

func noopLikedSongRepo() *likedSongRepoStub {
	return &likedSongRepoStub{
		addFn:        func(context.Context, *models.LikedSong) error { return nil },
		listByUserFn: func(context.Context, uint) ([]models.LikedSong, error) { return nil, nil },
		removeFn:     func(context.Context, uint, string) error { return nil },
		isLikedFn:    func(context.Context, uint, string) (bool, error) { return false, nil },
	}
}
