package domain

import "time"

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking is a confirmed stay. UserID is nil for bookings made without an
// account; those are only confirmed by email.
type Booking struct {
	ID         string        `gorm:"primaryKey;size:36" json:"id"`
	Reference  string        `gorm:"size:16;index" json:"bookingId"`
	UserID     *uint         `gorm:"index" json:"userId,omitempty"`
	PackageID  int           `json:"packageId,omitempty"`
	Title      string        `gorm:"size:255" json:"title"`
	Image      string        `gorm:"size:512" json:"image"`
	Location   string        `gorm:"size:255" json:"location"`
	FirstName  string        `gorm:"size:100" json:"firstName"`
	LastName   string        `gorm:"size:100" json:"lastName"`
	Email      string        `gorm:"size:255" json:"email"`
	Phone      string        `gorm:"size:32" json:"phone"`
	CheckIn    time.Time     `gorm:"type:date" json:"checkIn"`
	CheckOut   time.Time     `gorm:"type:date" json:"checkOut"`
	Guests     int           `json:"guests"`
	Rooms      int           `json:"rooms"`
	Nights     int           `json:"nights"`
	TotalPrice int           `json:"totalPrice"`
	Status     BookingStatus `gorm:"type:varchar(20);index" json:"status"`
	CreatedAt  time.Time     `json:"bookingDate"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// TableName sets the MySQL table name
func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled reports whether the booking was cancelled
func (b Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
