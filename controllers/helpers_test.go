package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/repositories"
	"github.com/vishalpatil-45/Adventour/services"
	"github.com/vishalpatil-45/Adventour/storage"
	"github.com/vishalpatil-45/Adventour/utils"
)

// ============================================
// In-memory repositories behind the real services
// ============================================

type memUsers struct {
	users map[uint]*domain.User
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	user.ID = uint(len(m.users) + 1)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uint) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memUsers) Update(_ context.Context, user *domain.User) error {
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

type memBookings struct {
	bookings []*domain.Booking
}

func (m *memBookings) Create(_ context.Context, b *domain.Booking) error {
	b.CreatedAt = time.Now()
	stored := *b
	m.bookings = append(m.bookings, &stored)
	return nil
}

func (m *memBookings) ListByUser(_ context.Context, userID uint) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookings) GetForUser(_ context.Context, userID uint, id string) (*domain.Booking, error) {
	for _, b := range m.bookings {
		if b.UserID != nil && *b.UserID == userID && (b.ID == id || b.Reference == id) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memBookings) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	for _, b := range m.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *memBookings) CompletePast(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type memWishlist struct {
	items map[uint][]domain.WishlistItem
}

func (m *memWishlist) List(_ context.Context, userID uint) ([]domain.WishlistItem, error) {
	items := append([]domain.WishlistItem(nil), m.items[userID]...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].PackageID < items[j].PackageID })
	return items, nil
}

func (m *memWishlist) Exists(_ context.Context, userID uint, packageID int) (bool, error) {
	for _, it := range m.items[userID] {
		if it.PackageID == packageID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWishlist) Add(ctx context.Context, item *domain.WishlistItem) error {
	if ok, _ := m.Exists(ctx, item.UserID, item.PackageID); ok {
		return nil
	}
	m.items[item.UserID] = append(m.items[item.UserID], *item)
	return nil
}

func (m *memWishlist) Remove(_ context.Context, userID uint, packageID int) (bool, error) {
	items := m.items[userID]
	for i, it := range items {
		if it.PackageID == packageID {
			m.items[userID] = append(items[:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type recordingNotifier struct {
	sent []mailer.Message
	fail error
}

func (n *recordingNotifier) Deliver(_ context.Context, msg mailer.Message) error {
	if n.fail != nil {
		return n.fail
	}
	n.sent = append(n.sent, msg)
	return nil
}

// ============================================
// Router under test
// ============================================

type testApp struct {
	router   *gin.Engine
	notifier *recordingNotifier
	bookings *memBookings
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterValidators(v); err != nil {
			t.Fatal(err)
		}
	}

	catalog := repositories.NewDefaultCatalogRepository()
	notifier := &recordingNotifier{}
	bookingRepo := &memBookings{}

	catalogService := services.NewCatalogService(catalog, nil)
	bookingService := services.NewBookingService(bookingRepo, catalog, notifier)
	userService := services.NewUserService(
		&memUsers{users: map[uint]*domain.User{}},
		utils.NewTokenManager("test-secret", time.Hour),
		nil,
		storage.NewInlineStore(),
	)

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, Handlers{
		Packages: NewPackageController(catalogService),
		Bookings: NewBookingController(bookingService),
		Users:    NewUserController(userService, bookingService, services.NewExportService(bookingService)),
		Wishlist: NewWishlistController(services.NewWishlistService(&memWishlist{items: map[uint][]domain.WishlistItem{}}, catalog)),
		Contact:  NewContactController(services.NewInboxService(nil, notifier, "inbox@adventour.test")),
		Health:   NewHealthController(nil),
		Static:   NewStaticController(t.TempDir()),
	}, userService)

	return &testApp{router: r, notifier: notifier, bookings: bookingRepo}
}

func (a *testApp) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// signup creates an account and returns its token
func (a *testApp) signup(t *testing.T, email string) string {
	t.Helper()
	w := a.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"firstName":       "Asha",
		"lastName":        "Rao",
		"email":           email,
		"password":        "secret123",
		"confirmPassword": "secret123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: status %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}
