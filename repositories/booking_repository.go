package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vishalpatil-45/Adventour/domain"
	"gorm.io/gorm"
)

// BookingRepository stores the bookings made by signed-in users
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	GetForUser(ctx context.Context, userID uint, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	// CompletePast marks confirmed bookings whose check-out is before the
	// given day as completed and returns how many changed.
	CompletePast(ctx context.Context, before time.Time) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a MySQL backed BookingRepository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}

// GetForUser finds a booking by id or reference, scoped to its owner
func (r *bookingRepository) GetForUser(ctx context.Context, userID uint, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND (id = ? OR reference = ?)", userID, id, id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update booking %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookingRepository) CompletePast(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status = ? AND check_out < ?", domain.BookingStatusConfirmed, before).
		Update("status", domain.BookingStatusCompleted)
	if res.Error != nil {
		return 0, fmt.Errorf("complete past bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}
