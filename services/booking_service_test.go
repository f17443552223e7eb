package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/repositories"
)

var fixedNow = time.UnixMilli(1700000123456)

func newTestBookingService() (*bookingService, *mockBookingRepository, *recordingNotifier) {
	repo := newMockBookingRepository()
	notifier := &recordingNotifier{}
	svc := NewBookingService(repo, repositories.NewDefaultCatalogRepository(), notifier).(*bookingService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, notifier
}

func validBooking() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PackageID: 2,
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Phone:     "+91 98765 43210",
		CheckIn:   "2025-12-20",
		CheckOut:  "2025-12-23",
		Guests:    2,
	}
}

func TestCreateBooking_Guest(t *testing.T) {
	svc, repo, notifier := newTestBookingService()

	resp, err := svc.CreateBooking(context.Background(), nil, validBooking())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "ADV123456", resp.BookingID)
	assert.Equal(t, "Booking confirmed successfully", resp.Message)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, 3, resp.Quote.Nights)
	assert.Equal(t, 4999*3, resp.Quote.BasePrice)

	// guests without an account are only mailed
	assert.Empty(t, repo.bookings)

	require.Len(t, notifier.sent, 1)
	msg := notifier.last()
	assert.Equal(t, mailer.KindBooking, msg.Kind)
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Equal(t, "Booking Confirmation - Adventour", msg.Subject)
	assert.Contains(t, msg.HTML, "ADV123456")
	assert.Contains(t, msg.HTML, "Dear Asha Rao")
}

func TestCreateBooking_MemberIsStored(t *testing.T) {
	svc, repo, _ := newTestBookingService()
	userID := uint(7)

	resp, err := svc.CreateBooking(context.Background(), &userID, validBooking())
	require.NoError(t, err)

	require.Len(t, repo.bookings, 1)
	for _, b := range repo.bookings {
		assert.Equal(t, resp.BookingID, b.Reference)
		assert.Equal(t, userID, *b.UserID)
		assert.Equal(t, "Mountain Cabin Retreat", b.Title)
		assert.Equal(t, "Kashmir, India", b.Location)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
		assert.Equal(t, resp.Quote.Total, b.TotalPrice)
		assert.Equal(t, 1, b.Rooms)
	}
}

func TestCreateBooking_MissingFieldsInOrder(t *testing.T) {
	svc, _, notifier := newTestBookingService()

	tests := []struct {
		field string
		clear func(*dto.CreateBookingRequest)
	}{
		{"firstName", func(r *dto.CreateBookingRequest) { r.FirstName = "" }},
		{"lastName", func(r *dto.CreateBookingRequest) { r.LastName = "  " }},
		{"email", func(r *dto.CreateBookingRequest) { r.Email = "" }},
		{"phone", func(r *dto.CreateBookingRequest) { r.Phone = "" }},
		{"checkIn", func(r *dto.CreateBookingRequest) { r.CheckIn = "" }},
		{"checkOut", func(r *dto.CreateBookingRequest) { r.CheckOut = "" }},
		{"guests", func(r *dto.CreateBookingRequest) { r.Guests = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			req := validBooking()
			tt.clear(&req)

			_, err := svc.CreateBooking(context.Background(), nil, req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, "Missing required field: "+tt.field, err.Error())
		})
	}

	// only the first missing field is reported
	_, err := svc.CreateBooking(context.Background(), nil, dto.CreateBookingRequest{Phone: "123"})
	assert.EqualError(t, err, "Missing required field: firstName")
	assert.Empty(t, notifier.sent)
}

func TestCreateBooking_InvalidFields(t *testing.T) {
	svc, _, _ := newTestBookingService()

	tests := []struct {
		name   string
		modify func(*dto.CreateBookingRequest)
		want   string
	}{
		{"email", func(r *dto.CreateBookingRequest) { r.Email = "asha@example" }, "Please enter a valid email address"},
		{"phone", func(r *dto.CreateBookingRequest) { r.Phone = "0123" }, "Please enter a valid phone number"},
		{"date", func(r *dto.CreateBookingRequest) { r.CheckIn = "20/12/2025" }, "Please enter a valid date (YYYY-MM-DD)"},
		{"order", func(r *dto.CreateBookingRequest) { r.CheckOut = r.CheckIn }, "Check-out date must be after check-in date"},
		{"card", func(r *dto.CreateBookingRequest) { r.CardNumber = "1234" }, "Please enter a valid card number"},
		{"cvv", func(r *dto.CreateBookingRequest) { r.CVV = "12a" }, "Please enter a valid CVV"},
		{"expiry", func(r *dto.CreateBookingRequest) { r.ExpiryDate = "13/30" }, "Please enter a valid expiry date (MM/YY)"},
		{"guests", func(r *dto.CreateBookingRequest) { r.Guests = -1 }, "guests must be at least 1"},
		{"add-on", func(r *dto.CreateBookingRequest) { r.AddOns = []string{"yacht"} }, "Unknown add-on: yacht"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.modify(&req)

			_, err := svc.CreateBooking(context.Background(), nil, req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "got %v", err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestCreateBooking_ValidPayment(t *testing.T) {
	svc, _, _ := newTestBookingService()

	req := validBooking()
	req.CardNumber = "4111 1111 1111 1111"
	req.CVV = "123"
	req.ExpiryDate = "09/29"

	_, err := svc.CreateBooking(context.Background(), nil, req)
	assert.NoError(t, err)
}

func TestCreateBooking_UnknownPackage(t *testing.T) {
	svc, _, _ := newTestBookingService()

	req := validBooking()
	req.PackageID = 7

	_, err := svc.CreateBooking(context.Background(), nil, req)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestCreateBooking_NoPackageUsesDefaultPrice(t *testing.T) {
	svc, repo, _ := newTestBookingService()
	userID := uint(3)

	req := validBooking()
	req.PackageID = 0

	resp, err := svc.CreateBooking(context.Background(), &userID, req)
	require.NoError(t, err)
	assert.Equal(t, DefaultPricePerNight, resp.Quote.PricePerNight)

	for _, b := range repo.bookings {
		assert.Equal(t, fallbackBookingTitle, b.Title)
	}
}

func TestCreateBooking_MailFailure(t *testing.T) {
	svc, repo, notifier := newTestBookingService()
	notifier.fail = true
	userID := uint(1)

	_, err := svc.CreateBooking(context.Background(), &userID, validBooking())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMailDelivery)
	assert.False(t, IsValidationError(err))
	assert.Empty(t, repo.bookings)
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	svc, repo, notifier := newTestBookingService()
	repo.fail = errors.New("connection refused")
	userID := uint(1)
	hook := logtest.NewGlobal()
	defer hook.Reset()

	_, err := svc.CreateBooking(context.Background(), &userID, validBooking())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))

	// the mail went out, so the reference must be in the logs
	require.Len(t, notifier.sent, 1)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.ErrorLevel, entry.Level)
	assert.Equal(t, "confirmation mailed but booking not saved", entry.Message)
	assert.Equal(t, "ADV123456", entry.Data["booking_id"])
	assert.Equal(t, userID, entry.Data["user_id"])
}

func TestQuote(t *testing.T) {
	svc, _, notifier := newTestBookingService()

	quote, err := svc.Quote(context.Background(), dto.QuoteRequest{
		PackageID: 1,
		CheckIn:   "2025-03-01",
		CheckOut:  "2025-03-03",
		Guests:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, 6750, quote.Total)
	assert.Empty(t, notifier.sent)

	_, err = svc.Quote(context.Background(), dto.QuoteRequest{CheckIn: "2025-03-01", CheckOut: "2025-03-03"})
	assert.EqualError(t, err, "Missing required field: guests")
}

func seedBooking(repo *mockBookingRepository, userID uint, id, title, location string, created time.Time, status domain.BookingStatus) {
	uid := userID
	repo.bookings[id] = &domain.Booking{
		ID:        id,
		Reference: "ADV" + id,
		UserID:    &uid,
		Title:     title,
		Location:  location,
		CheckIn:   created.AddDate(0, 0, 10),
		CheckOut:  created.AddDate(0, 0, 12),
		Status:    status,
		CreatedAt: created,
	}
}

func TestListUserBookings_FiltersAndSorts(t *testing.T) {
	svc, repo, _ := newTestBookingService()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	seedBooking(repo, 1, "a", "Tropical Villa", "Bali, Indonesia", base, domain.BookingStatusConfirmed)
	seedBooking(repo, 1, "b", "Booking", "Goa, India", base.AddDate(0, 0, 1), domain.BookingStatusConfirmed)
	seedBooking(repo, 1, "c", "", "Goa, India", base.AddDate(0, 0, 2), domain.BookingStatusConfirmed)
	seedBooking(repo, 1, "d", "Luxury Beach Villa", " ", base.AddDate(0, 0, 3), domain.BookingStatusConfirmed)
	seedBooking(repo, 1, "e", "5-Star Luxury Resort", "Dubai, UAE", base.AddDate(0, 0, 4), domain.BookingStatusCancelled)
	seedBooking(repo, 2, "f", "Tropical Villa", "Bali, Indonesia", base.AddDate(0, 0, 5), domain.BookingStatusConfirmed)

	bookings, err := svc.ListUserBookings(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	assert.Equal(t, "e", bookings[0].ID)
	assert.Equal(t, "a", bookings[1].ID)
}

func TestCancelBooking(t *testing.T) {
	svc, repo, _ := newTestBookingService()
	seedBooking(repo, 1, "a", "Tropical Villa", "Bali, Indonesia", fixedNow, domain.BookingStatusConfirmed)

	booking, err := svc.CancelBooking(context.Background(), 1, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	assert.Equal(t, domain.BookingStatusCancelled, repo.bookings["a"].Status)

	// twice is fine, and the booking is still there
	booking, err = svc.CancelBooking(context.Background(), 1, "ADVa")
	require.NoError(t, err)
	assert.True(t, booking.IsCancelled())
	assert.Len(t, repo.bookings, 1)

	_, err = svc.CancelBooking(context.Background(), 2, "a")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.CancelBooking(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCompletePastBookings(t *testing.T) {
	svc, repo, _ := newTestBookingService()
	past := fixedNow.AddDate(0, 0, -30)

	seedBooking(repo, 1, "old", "Tropical Villa", "Bali, Indonesia", past, domain.BookingStatusConfirmed)
	seedBooking(repo, 1, "cancelled", "Tropical Villa", "Bali, Indonesia", past, domain.BookingStatusCancelled)
	seedBooking(repo, 1, "future", "Tropical Villa", "Bali, Indonesia", fixedNow, domain.BookingStatusConfirmed)

	n, err := svc.CompletePastBookings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), n)
	assert.Equal(t, domain.BookingStatusCompleted, repo.bookings["old"].Status)
	assert.Equal(t, domain.BookingStatusCancelled, repo.bookings["cancelled"].Status)
	assert.Equal(t, domain.BookingStatusConfirmed, repo.bookings["future"].Status)
}
