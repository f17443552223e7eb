package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/repositories"
)

// ============================================
// Hand written repositories for the tests
// ============================================

type mockUserRepository struct {
	users map[uint]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*domain.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *domain.User) error {
	user.ID = uint(len(m.users) + 1)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) Update(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

type mockBookingRepository struct {
	bookings map[string]*domain.Booking
	fail     error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[string]*domain.Booking)}
}

func (m *mockBookingRepository) Create(_ context.Context, b *domain.Booking) error {
	if m.fail != nil {
		return m.fail
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	stored := *b
	m.bookings[b.ID] = &stored
	return nil
}

func (m *mockBookingRepository) ListByUser(_ context.Context, userID uint) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *b)
		}
	}
	// map order is random, the service sorts anyway
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockBookingRepository) GetForUser(_ context.Context, userID uint, id string) (*domain.Booking, error) {
	for _, b := range m.bookings {
		if b.UserID != nil && *b.UserID == userID && (b.ID == id || b.Reference == id) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockBookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.Status = status
	return nil
}

func (m *mockBookingRepository) CompletePast(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.Status == domain.BookingStatusConfirmed && b.CheckOut.Before(before) {
			b.Status = domain.BookingStatusCompleted
			n++
		}
	}
	return n, nil
}

type mockWishlistRepository struct {
	items   []domain.WishlistItem
	inserts int
}

func (m *mockWishlistRepository) List(_ context.Context, userID uint) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockWishlistRepository) Exists(ctx context.Context, userID uint, packageID int) (bool, error) {
	for _, item := range m.items {
		if item.UserID == userID && item.PackageID == packageID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockWishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	m.inserts++
	if exists, _ := m.Exists(ctx, item.UserID, item.PackageID); exists {
		return nil
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *mockWishlistRepository) Remove(_ context.Context, userID uint, packageID int) (bool, error) {
	for i, item := range m.items {
		if item.UserID == userID && item.PackageID == packageID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockInboxRepository struct {
	subscriptions map[string]domain.Subscription
	messages      []domain.ContactMessage
	fail          error
}

func newMockInboxRepository() *mockInboxRepository {
	return &mockInboxRepository{subscriptions: make(map[string]domain.Subscription)}
}

func (m *mockInboxRepository) Subscribe(_ context.Context, sub domain.Subscription) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.subscriptions[sub.Email]; !ok {
		m.subscriptions[sub.Email] = sub
	}
	return nil
}

func (m *mockInboxRepository) SaveContactMessage(_ context.Context, msg *domain.ContactMessage) error {
	if m.fail != nil {
		return m.fail
	}
	m.messages = append(m.messages, *msg)
	return nil
}

type mockTokenRepository struct {
	revoked map[string]time.Duration
}

func newMockTokenRepository() *mockTokenRepository {
	return &mockTokenRepository{revoked: make(map[string]time.Duration)}
}

func (m *mockTokenRepository) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.revoked[jti] = ttl
	return nil
}

func (m *mockTokenRepository) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := m.revoked[jti]
	return ok, nil
}

type mockCacheRepository struct {
	entries map[string][]domain.Package
	sets    int
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{entries: make(map[string][]domain.Package)}
}

func (m *mockCacheRepository) Get(key string) ([]domain.Package, bool) {
	p, ok := m.entries[key]
	return p, ok
}

func (m *mockCacheRepository) Set(key string, packages []domain.Package, _ time.Duration) {
	m.sets++
	m.entries[key] = packages
}

// recordingNotifier keeps every delivered message, or fails when told to
type recordingNotifier struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail bool
}

func (n *recordingNotifier) Deliver(_ context.Context, msg mailer.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("smtp unavailable")
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) last() mailer.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}
