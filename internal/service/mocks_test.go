package service

import (
	"context"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

// --- Tx ---

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.calls++
	return fn(nil)
}

// --- UserRepository ---

type mockUserRepo struct {
	createFn           func(ctx context.Context, u *models.User) error
	findByIDFn         func(ctx context.Context, id uint) (*models.User, error)
	findByExternalIDFn func(ctx context.Context, externalID string) (*models.User, error)
	updateIdentityFn   func(ctx context.Context, u *models.User) error
	updateRolesFn      func(ctx context.Context, tx *gorm.DB, u *models.User) error
	count              int64
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	u.ID = 1
	return nil
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	if m.findByExternalIDFn != nil {
		return m.findByExternalIDFn(ctx, externalID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) UpdateIdentity(ctx context.Context, u *models.User) error {
	if m.updateIdentityFn != nil {
		return m.updateIdentityFn(ctx, u)
	}
	return nil
}
func (m *mockUserRepo) UpdateRoles(ctx context.Context, tx *gorm.DB, u *models.User) error {
	if m.updateRolesFn != nil {
		return m.updateRolesFn(ctx, tx, u)
	}
	return nil
}
func (m *mockUserRepo) Count(ctx context.Context) (int64, error) { return m.count, nil }

// --- MusicianRepository ---

type mockMusicianRepo struct {
	createFn         func(ctx context.Context, tx *gorm.DB, m *models.Musician) error
	updateFn         func(ctx context.Context, m *models.Musician) error
	findByIDFn       func(ctx context.Context, id uint) (*models.Musician, error)
	findByUserIDFn   func(ctx context.Context, userID uint) (*models.Musician, error)
	findWithRatingFn func(ctx context.Context, id uint) (*models.MusicianWithRating, error)
	searchFn         func(ctx context.Context, f repository.MusicianFilter) ([]models.MusicianWithRating, int64, error)
	count            int64
}

func (m *mockMusicianRepo) Create(ctx context.Context, tx *gorm.DB, mu *models.Musician) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, mu)
	}
	mu.ID = 1
	return nil
}
func (m *mockMusicianRepo) Update(ctx context.Context, mu *models.Musician) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, mu)
	}
	return nil
}
func (m *mockMusicianRepo) FindByID(ctx context.Context, id uint) (*models.Musician, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockMusicianRepo) FindByUserID(ctx context.Context, userID uint) (*models.Musician, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockMusicianRepo) FindWithRating(ctx context.Context, id uint) (*models.MusicianWithRating, error) {
	if m.findWithRatingFn != nil {
		return m.findWithRatingFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockMusicianRepo) Search(ctx context.Context, f repository.MusicianFilter) ([]models.MusicianWithRating, int64, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, f)
	}
	return nil, 0, nil
}
func (m *mockMusicianRepo) Count(ctx context.Context) (int64, error) { return m.count, nil }

// --- BookerRepository ---

type mockBookerRepo struct {
	createFn       func(ctx context.Context, tx *gorm.DB, b *models.Booker) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Booker, error)
	findByUserIDFn func(ctx context.Context, userID uint) (*models.Booker, error)
	count          int64
}

func (m *mockBookerRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booker) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, b)
	}
	b.ID = 1
	return nil
}
func (m *mockBookerRepo) Update(ctx context.Context, b *models.Booker) error { return nil }
func (m *mockBookerRepo) FindByID(ctx context.Context, id uint) (*models.Booker, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookerRepo) FindByUserID(ctx context.Context, userID uint) (*models.Booker, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookerRepo) Count(ctx context.Context) (int64, error) { return m.count, nil }

// --- BookingRepository ---

type mockBookingRepo struct {
	createFn         func(ctx context.Context, tx *gorm.DB, b *models.Booking) error
	findByIDFn       func(ctx context.Context, id uint) (*models.Booking, error)
	findByClientFn   func(ctx context.Context, clientID uint, status *models.BookingStatus) ([]models.Booking, error)
	findByMusicianFn func(ctx context.Context, musicianID uint, status *models.BookingStatus) ([]models.Booking, error)
	updateStatusFn   func(ctx context.Context, tx *gorm.DB, id uint, from, to models.BookingStatus) (bool, error)
	countByStatus    map[models.BookingStatus]int64
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, b)
	}
	b.ID = 1
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByClient(ctx context.Context, clientID uint, status *models.BookingStatus) ([]models.Booking, error) {
	if m.findByClientFn != nil {
		return m.findByClientFn(ctx, clientID, status)
	}
	return nil, nil
}
func (m *mockBookingRepo) FindByMusician(ctx context.Context, musicianID uint, status *models.BookingStatus) ([]models.Booking, error) {
	if m.findByMusicianFn != nil {
		return m.findByMusicianFn(ctx, musicianID, status)
	}
	return nil, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, from, to models.BookingStatus) (bool, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, id, from, to)
	}
	return true, nil
}
func (m *mockBookingRepo) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	return m.countByStatus, nil
}

// --- NotificationRepository ---

type mockNotificationRepo struct {
	created       []*models.Notification
	createErr     error
	findFn        func(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error)
	markReadFn    func(ctx context.Context, userID, id uint) (bool, error)
	deleteFn      func(ctx context.Context, userID, id uint) (bool, error)
	unread        int64
	markedAllRead int64
}

func (m *mockNotificationRepo) Create(ctx context.Context, tx *gorm.DB, n *models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	n.ID = uint(len(m.created) + 1)
	m.created = append(m.created, n)
	return nil
}
func (m *mockNotificationRepo) FindForUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID, unreadOnly, limit)
	}
	return nil, nil
}
func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return m.unread, nil
}
func (m *mockNotificationRepo) MarkRead(ctx context.Context, userID, id uint) (bool, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, userID, id)
	}
	return true, nil
}
func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return m.markedAllRead, nil
}
func (m *mockNotificationRepo) Delete(ctx context.Context, userID, id uint) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return true, nil
}

// --- ReviewRepository ---

type mockReviewRepo struct {
	createFn func(ctx context.Context, tx *gorm.DB, r *models.Review) error
	reviews  []models.Review
	summary  models.RatingSummary
}

func (m *mockReviewRepo) Create(ctx context.Context, tx *gorm.DB, r *models.Review) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, r)
	}
	r.ID = 1
	return nil
}
func (m *mockReviewRepo) FindByMusician(ctx context.Context, musicianID uint) ([]models.Review, error) {
	return m.reviews, nil
}
func (m *mockReviewRepo) Summary(ctx context.Context, musicianID uint) (models.RatingSummary, error) {
	return m.summary, nil
}

// --- ConversationRepository ---

type mockConversationRepo struct {
	findOrCreateFn func(ctx context.Context, x, y uint) (*models.Conversation, error)
	findByIDFn     func(ctx context.Context, id uint) (*models.Conversation, error)
	forUser        []models.Conversation
	last           map[uint]models.Message
	listFn         func(ctx context.Context, convID, afterID uint, limit int) ([]models.Message, error)
	markedRead     []uint
	seenUpTo       []uint
	added          []*models.Message
}

func (m *mockConversationRepo) FindOrCreate(ctx context.Context, x, y uint) (*models.Conversation, error) {
	return m.findOrCreateFn(ctx, x, y)
}
func (m *mockConversationRepo) FindByID(ctx context.Context, id uint) (*models.Conversation, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockConversationRepo) FindForUser(ctx context.Context, userID uint) ([]models.Conversation, error) {
	return m.forUser, nil
}
func (m *mockConversationRepo) LastMessages(ctx context.Context, ids []uint) (map[uint]models.Message, error) {
	if m.last == nil {
		return map[uint]models.Message{}, nil
	}
	return m.last, nil
}
func (m *mockConversationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockConversationRepo) MarkRead(ctx context.Context, conv *models.Conversation, userID, seenUpTo uint) error {
	m.markedRead = append(m.markedRead, userID)
	m.seenUpTo = append(m.seenUpTo, seenUpTo)
	return nil
}
func (m *mockConversationRepo) AddMessage(ctx context.Context, conv *models.Conversation, msg *models.Message) error {
	msg.ID = uint(len(m.added) + 1)
	m.added = append(m.added, msg)
	return nil
}
func (m *mockConversationRepo) ListMessages(ctx context.Context, convID, afterID uint, limit int) ([]models.Message, error) {
	if m.listFn != nil {
		return m.listFn(ctx, convID, afterID, limit)
	}
	return nil, nil
}

// --- AdminRepository ---

type mockAdminRepo struct {
	admins   map[string]*models.Admin
	upserted *models.Admin
}

func (m *mockAdminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if a, ok := m.admins[username]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockAdminRepo) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	for _, a := range m.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockAdminRepo) Upsert(ctx context.Context, a *models.Admin) error {
	a.ID = 7
	m.upserted = a
	return nil
}

// --- AnnouncementRepository ---

type mockAnnouncementRepo struct {
	items  map[uint]*models.Announcement
	nextID uint
	active []models.Announcement
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	m.nextID++
	a.ID = m.nextID
	if m.items == nil {
		m.items = map[uint]*models.Announcement{}
	}
	m.items[a.ID] = a
	return nil
}
func (m *mockAnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	m.items[a.ID] = a
	return nil
}
func (m *mockAnnouncementRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}
func (m *mockAnnouncementRepo) FindByID(ctx context.Context, id uint) (*models.Announcement, error) {
	if a, ok := m.items[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockAnnouncementRepo) FindAll(ctx context.Context) ([]models.Announcement, error) {
	out := make([]models.Announcement, 0, len(m.items))
	for _, a := range m.items {
		out = append(out, *a)
	}
	return out, nil
}
func (m *mockAnnouncementRepo) FindActive(ctx context.Context, limit int) ([]models.Announcement, error) {
	if len(m.active) > limit {
		return m.active[:limit], nil
	}
	return m.active, nil
}

// --- MarketingRepository ---

type mockMarketingRepo struct {
	createSubscriberFn func(ctx context.Context, s *models.Subscriber) error
	suggestions        []*models.Suggestion
	subscribers        int64
	completed          int64
}

func (m *mockMarketingRepo) CreateSubscriber(ctx context.Context, s *models.Subscriber) error {
	if m.createSubscriberFn != nil {
		return m.createSubscriberFn(ctx, s)
	}
	return nil
}
func (m *mockMarketingRepo) CreateSuggestion(ctx context.Context, s *models.Suggestion) error {
	m.suggestions = append(m.suggestions, s)
	return nil
}
func (m *mockMarketingRepo) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	return nil, nil
}
func (m *mockMarketingRepo) ListSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	return nil, nil
}
func (m *mockMarketingRepo) CountSubscribers(ctx context.Context) (int64, error) {
	return m.subscribers, nil
}
func (m *mockMarketingRepo) CountSuggestions(ctx context.Context) (int64, error) {
	return int64(len(m.suggestions)), nil
}
func (m *mockMarketingRepo) CountCompletedBookings(ctx context.Context) (int64, error) {
	return m.completed, nil
}

// --- side channels ---

type recordingDispatcher struct {
	sent []*models.Notification
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, n *models.Notification) {
	d.sent = append(d.sent, n)
}

type realtimeEvent struct {
	userID uint
	kind   string
}

type recordingRealtime struct {
	events []realtimeEvent
}

func (r *recordingRealtime) Publish(userID uint, kind string, payload any) {
	r.events = append(r.events, realtimeEvent{userID: userID, kind: kind})
}

type recordingPublisher struct {
	keys     []string
	payloads []any
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, key string, payload any) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, payload)
	return p.err
}

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func (f *fakeRevoker) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if f.revoked == nil {
		f.revoked = map[string]time.Duration{}
	}
	if ttl > 0 {
		f.revoked[id] = ttl
	}
	return nil
}
func (f *fakeRevoker) IsRevoked(ctx context.Context, id string) (bool, error) {
	_, ok := f.revoked[id]
	return ok, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
