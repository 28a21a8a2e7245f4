package handler

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, client *models.User, req dto.CreateBookingRequest) (*models.Booking, error)
	getFn    func(ctx context.Context, user *models.User, id uint) (*models.Booking, error)
	listFn   func(ctx context.Context, user *models.User, side, status string) ([]models.Booking, error)
	updateFn func(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, client *models.User, req dto.CreateBookingRequest) (*models.Booking, error) {
	return m.createFn(ctx, client, req)
}
func (m *mockBookingService) GetBooking(ctx context.Context, user *models.User, id uint) (*models.Booking, error) {
	return m.getFn(ctx, user, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, user *models.User, side, status string) ([]models.Booking, error) {
	return m.listFn(ctx, user, side, status)
}
func (m *mockBookingService) UpdateStatus(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error) {
	return m.updateFn(ctx, user, id, status)
}

// --- Mock UserService ---

type mockUserService struct {
	addRoleFn    func(ctx context.Context, user *models.User, role models.Role) (*models.User, error)
	switchRoleFn func(ctx context.Context, user *models.User, role models.Role) (*models.User, error)
}

func (m *mockUserService) SyncFromClaims(ctx context.Context, claims *auth.ProviderClaims) (*models.User, error) {
	return nil, nil
}
func (m *mockUserService) GetUser(ctx context.Context, id uint) (*models.User, error) { return nil, nil }
func (m *mockUserService) AddRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error) {
	return m.addRoleFn(ctx, user, role)
}
func (m *mockUserService) SwitchRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error) {
	return m.switchRoleFn(ctx, user, role)
}

// --- Mock ProfileService ---

type mockProfileService struct {
	createMusicianFn func(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error)
	getMusicianFn    func(ctx context.Context, id uint) (*models.MusicianWithRating, error)
	searchFn         func(ctx context.Context, f *repository.MusicianFilter) ([]models.MusicianWithRating, int64, error)
	getOwnBookerFn   func(ctx context.Context, user *models.User) (*models.Booker, error)
	createBookerFn   func(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error)
	updateBookerFn   func(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error)
}

func (m *mockProfileService) CreateMusician(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error) {
	return m.createMusicianFn(ctx, user, req)
}
func (m *mockProfileService) UpdateMusician(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error) {
	return m.createMusicianFn(ctx, user, req)
}
func (m *mockProfileService) GetOwnMusician(ctx context.Context, user *models.User) (*models.Musician, error) {
	return nil, nil
}
func (m *mockProfileService) GetMusician(ctx context.Context, id uint) (*models.MusicianWithRating, error) {
	return m.getMusicianFn(ctx, id)
}
func (m *mockProfileService) SearchMusicians(ctx context.Context, f *repository.MusicianFilter) ([]models.MusicianWithRating, int64, error) {
	return m.searchFn(ctx, f)
}
func (m *mockProfileService) CreateBooker(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error) {
	return m.createBookerFn(ctx, user, req)
}
func (m *mockProfileService) UpdateBooker(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error) {
	return m.updateBookerFn(ctx, user, req)
}
func (m *mockProfileService) GetOwnBooker(ctx context.Context, user *models.User) (*models.Booker, error) {
	return m.getOwnBookerFn(ctx, user)
}
func (m *mockProfileService) GetBooker(ctx context.Context, id uint) (*models.Booker, error) {
	return nil, nil
}

// --- Mock ConversationService ---

type mockConversationService struct {
	startFn    func(ctx context.Context, user *models.User, participantID uint) (*models.ConversationSummary, error)
	messagesFn func(ctx context.Context, user *models.User, id, after uint, limit int) ([]models.Message, error)
	sendFn     func(ctx context.Context, user *models.User, id uint, text string) (*models.Message, error)
	unread     int64
}

func (m *mockConversationService) Start(ctx context.Context, user *models.User, participantID uint) (*models.ConversationSummary, error) {
	return m.startFn(ctx, user, participantID)
}
func (m *mockConversationService) List(ctx context.Context, user *models.User) ([]models.ConversationSummary, error) {
	return nil, nil
}
func (m *mockConversationService) UnreadCount(ctx context.Context, user *models.User) (int64, error) {
	return m.unread, nil
}
func (m *mockConversationService) Messages(ctx context.Context, user *models.User, id, after uint, limit int) ([]models.Message, error) {
	return m.messagesFn(ctx, user, id, after, limit)
}
func (m *mockConversationService) Send(ctx context.Context, user *models.User, id uint, text string) (*models.Message, error) {
	return m.sendFn(ctx, user, id, text)
}
func (m *mockConversationService) MarkRead(ctx context.Context, user *models.User, id uint) error {
	return nil
}

// --- Mock NotificationService ---

type mockNotificationService struct {
	listFn     func(ctx context.Context, user *models.User, unreadOnly bool, limit int) ([]models.Notification, error)
	markReadFn func(ctx context.Context, user *models.User, id uint) error
	deleted    []uint
}

func (m *mockNotificationService) List(ctx context.Context, user *models.User, unreadOnly bool, limit int) ([]models.Notification, error) {
	return m.listFn(ctx, user, unreadOnly, limit)
}
func (m *mockNotificationService) UnreadCount(ctx context.Context, user *models.User) (int64, error) {
	return 0, nil
}
func (m *mockNotificationService) MarkRead(ctx context.Context, user *models.User, id uint) error {
	return m.markReadFn(ctx, user, id)
}
func (m *mockNotificationService) MarkAllRead(ctx context.Context, user *models.User) (int64, error) {
	return 3, nil
}
func (m *mockNotificationService) Delete(ctx context.Context, user *models.User, id uint) error {
	if err := m.markReadFn(ctx, user, id); err != nil {
		return err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// --- Mock ReviewService ---

type mockReviewService struct {
	createFn func(ctx context.Context, author *models.User, musicianID uint, req dto.CreateReviewRequest) (*models.Review, error)
}

func (m *mockReviewService) Create(ctx context.Context, author *models.User, musicianID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	return m.createFn(ctx, author, musicianID, req)
}
func (m *mockReviewService) List(ctx context.Context, musicianID uint) ([]models.Review, models.RatingSummary, error) {
	return []models.Review{{ID: 1, Rating: 5}}, models.RatingSummary{AverageRating: 5, ReviewCount: 1}, nil
}

// --- Mock AdminService / AnnouncementService ---

type mockAdminService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *auth.AdminClaims, error)
	logoutFn func(ctx context.Context, claims *auth.AdminClaims) error
	stats    *models.PlatformStats
}

func (m *mockAdminService) Login(ctx context.Context, username, password string) (string, *auth.AdminClaims, error) {
	return m.loginFn(ctx, username, password)
}
func (m *mockAdminService) Logout(ctx context.Context, claims *auth.AdminClaims) error {
	return m.logoutFn(ctx, claims)
}
func (m *mockAdminService) Authenticate(ctx context.Context, token string) (*auth.AdminClaims, error) {
	return nil, nil
}
func (m *mockAdminService) Me(ctx context.Context, adminID uint) (*models.Admin, error) {
	return &models.Admin{ID: adminID, Username: "root"}, nil
}
func (m *mockAdminService) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	return nil, nil
}
func (m *mockAdminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	return m.stats, nil
}
func (m *mockAdminService) Subscribers(ctx context.Context) ([]models.Subscriber, error) {
	return nil, nil
}
func (m *mockAdminService) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	return nil, nil
}

type mockAnnouncementService struct {
	createFn func(ctx context.Context, adminID uint, req dto.AnnouncementRequest) (*models.Announcement, error)
	updateFn func(ctx context.Context, id uint, req dto.AnnouncementRequest) (*models.Announcement, error)
	active   []models.Announcement
}

func (m *mockAnnouncementService) Create(ctx context.Context, adminID uint, req dto.AnnouncementRequest) (*models.Announcement, error) {
	return m.createFn(ctx, adminID, req)
}
func (m *mockAnnouncementService) Update(ctx context.Context, id uint, req dto.AnnouncementRequest) (*models.Announcement, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockAnnouncementService) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockAnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	return m.active, nil
}
func (m *mockAnnouncementService) Active(ctx context.Context) ([]models.Announcement, error) {
	return m.active, nil
}

// --- Mock MarketingService ---

type mockMarketingService struct {
	subscribeFn func(ctx context.Context, email string) (*models.Subscriber, error)
}

func (m *mockMarketingService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	return m.subscribeFn(ctx, email)
}
func (m *mockMarketingService) Suggest(ctx context.Context, name, email, message string) (*models.Suggestion, error) {
	return &models.Suggestion{ID: 1, Name: name, Email: email, Message: message}, nil
}
func (m *mockMarketingService) Landing(ctx context.Context) (*models.LandingData, error) {
	return &models.LandingData{MusicianCount: 4}, nil
}
