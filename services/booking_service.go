package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/metrics"
	"github.com/vishalpatil-45/Adventour/repositories"
	"github.com/vishalpatil-45/Adventour/utils"
)

// fallbackBookingTitle is stored when a booking names no package. The account
// page hides bookings with this title.
const fallbackBookingTitle = "Booking"

// BookingService handles the booking form and the bookings shown on the
// account page.
type BookingService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.PriceQuote, error)
	// CreateBooking confirms a booking and mails the guest. userID is nil for
	// guests without an account; their booking is not stored.
	CreateBooking(ctx context.Context, userID *uint, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID uint) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, userID uint, id string) (*domain.Booking, error)
	CompletePastBookings(ctx context.Context) (int64, error)
}

type bookingService struct {
	bookings repositories.BookingRepository
	catalog  repositories.CatalogRepository
	notifier mailer.Notifier
	validate *validator.Validate
	now      func() time.Time
}

// NewBookingService creates a BookingService
func NewBookingService(bookings repositories.BookingRepository, catalog repositories.CatalogRepository, notifier mailer.Notifier) BookingService {
	return &bookingService{
		bookings: bookings,
		catalog:  catalog,
		notifier: notifier,
		validate: utils.NewValidator(),
		now:      time.Now,
	}
}

func (s *bookingService) Quote(_ context.Context, req dto.QuoteRequest) (*dto.PriceQuote, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.ValidationMessage(err)}
	}
	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	pkg, err := s.lookupPackage(req.PackageID.Int())
	if err != nil {
		return nil, err
	}
	return CalculateQuote(QuoteInput{
		PricePerNight: pkg.Price,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        req.Guests.Int(),
		Children:      req.Children.Int(),
		Rooms:         req.Rooms.Int(),
		AddOns:        req.AddOns,
	})
}

func (s *bookingService) CreateBooking(ctx context.Context, userID *uint, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	// 1. Required fields, reported in form order
	if field := firstMissingField(req); field != "" {
		return nil, invalidf("Missing required field: %s", field)
	}

	// 2. Field formats
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.ValidationMessage(err)}
	}
	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// 3. Price
	pkg, err := s.lookupPackage(req.PackageID.Int())
	if err != nil {
		return nil, err
	}
	quote, err := CalculateQuote(QuoteInput{
		PricePerNight: pkg.Price,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        req.Guests.Int(),
		Children:      req.Children.Int(),
		Rooms:         req.Rooms.Int(),
		AddOns:        req.AddOns,
	})
	if err != nil {
		return nil, err
	}

	reference := s.newReference()

	// 4. Confirmation mail. The booking only counts once the guest was told.
	msg, err := mailer.BookingConfirmation(mailer.BookingMail{
		To:        strings.TrimSpace(req.Email),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BookingID: reference,
		Title:     pkg.Title,
		Location:  pkg.Location,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests.Int(),
		Rooms:     quote.Rooms,
		Total:     quote.Total,
	})
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Deliver(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	// 5. Keep it on the account when signed in
	account := "guest"
	if userID != nil {
		account = "member"
		title := pkg.Title
		if title == "" {
			title = fallbackBookingTitle
		}
		booking := &domain.Booking{
			ID:         uuid.NewString(),
			Reference:  reference,
			UserID:     userID,
			PackageID:  pkg.ID,
			Title:      title,
			Image:      pkg.Image,
			Location:   pkg.Location,
			FirstName:  strings.TrimSpace(req.FirstName),
			LastName:   strings.TrimSpace(req.LastName),
			Email:      strings.TrimSpace(req.Email),
			Phone:      strings.TrimSpace(req.Phone),
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Guests:     req.Guests.Int(),
			Rooms:      quote.Rooms,
			Nights:     quote.Nights,
			TotalPrice: quote.Total,
			Status:     domain.BookingStatusConfirmed,
		}
		if err := s.bookings.Create(ctx, booking); err != nil {
			// the guest already holds the confirmation mail for this reference
			log.WithError(err).WithFields(log.Fields{
				"booking_id": reference,
				"user_id":    *userID,
				"email":      booking.Email,
			}).Error("confirmation mailed but booking not saved")
			return nil, fmt.Errorf("save booking %s: %w", reference, err)
		}
	}
	metrics.BookingsCreated.WithLabelValues(account).Inc()

	log.WithFields(log.Fields{
		"booking_id": reference,
		"package_id": pkg.ID,
		"total":      quote.Total,
		"account":    account,
	}).Info("booking confirmed")

	return &dto.BookingResponse{
		Success:   true,
		BookingID: reference,
		Message:   "Booking confirmed successfully",
		Quote:     quote,
	}, nil
}

// ListUserBookings returns the bookings worth showing, most recent first
func (s *bookingService) ListUserBookings(ctx context.Context, userID uint) ([]domain.Booking, error) {
	all, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		title := strings.TrimSpace(b.Title)
		if title == "" || title == fallbackBookingTitle || strings.TrimSpace(b.Location) == "" {
			continue
		}
		bookings = append(bookings, b)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookingTime(bookings[i]).After(bookingTime(bookings[j]))
	})
	return bookings, nil
}

// CancelBooking marks the booking cancelled. It is kept so the account page
// can still show it; cancelling again changes nothing.
func (s *bookingService) CancelBooking(ctx context.Context, userID uint, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.IsCancelled() {
		return booking, nil
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled
	metrics.BookingsCancelled.Inc()

	log.WithFields(log.Fields{"booking_id": booking.Reference, "user_id": userID}).Info("booking cancelled")
	return booking, nil
}

// CompletePastBookings closes confirmed bookings whose check-out day is over
func (s *bookingService) CompletePastBookings(ctx context.Context) (int64, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	n, err := s.bookings.CompletePast(ctx, today)
	if err != nil {
		return 0, err
	}
	metrics.BookingsCompleted.Add(float64(n))
	return n, nil
}

// lookupPackage resolves the package a booking is for. Zero means none was
// chosen and the default nightly price applies.
func (s *bookingService) lookupPackage(id int) (domain.Package, error) {
	if id == 0 {
		return domain.Package{Price: DefaultPricePerNight}, nil
	}
	pkg, ok := s.catalog.GetByID(id)
	if !ok {
		return domain.Package{}, ErrPackageNotFound
	}
	return pkg, nil
}

// newReference is "ADV" and the last six digits of the epoch milliseconds
func (s *bookingService) newReference() string {
	ms := strconv.FormatInt(s.now().UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "ADV" + ms
}

func firstMissingField(req dto.CreateBookingRequest) string {
	fields := []struct {
		name    string
		present bool
	}{
		{"firstName", strings.TrimSpace(req.FirstName) != ""},
		{"lastName", strings.TrimSpace(req.LastName) != ""},
		{"email", strings.TrimSpace(req.Email) != ""},
		{"phone", strings.TrimSpace(req.Phone) != ""},
		{"checkIn", strings.TrimSpace(req.CheckIn) != ""},
		{"checkOut", strings.TrimSpace(req.CheckOut) != ""},
		{"guests", req.Guests != 0},
	}
	for _, f := range fields {
		if !f.present {
			return f.name
		}
	}
	return ""
}

func parseStay(checkInRaw, checkOutRaw string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInRaw)
	if err != nil {
		return time.Time{}, time.Time{}, invalidf("Please enter a valid date (YYYY-MM-DD)")
	}
	checkOut, err := utils.ParseDate(checkOutRaw)
	if err != nil {
		return time.Time{}, time.Time{}, invalidf("Please enter a valid date (YYYY-MM-DD)")
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, invalidf("Check-out date must be after check-in date")
	}
	return checkIn, checkOut, nil
}

func bookingTime(b domain.Booking) time.Time {
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt
	}
	return b.CheckIn
}
