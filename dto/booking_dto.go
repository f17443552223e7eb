package dto

// CreateBookingRequest is the booking form, posted as JSON or form-encoded.
// The required set matches what the booking endpoint has always enforced; the
// rest is optional.
type CreateBookingRequest struct {
	PackageID  FlexInt  `json:"packageId" form:"packageId"`
	FirstName  string   `json:"firstName" form:"firstName"`
	LastName   string   `json:"lastName" form:"lastName"`
	Email      string   `json:"email" form:"email" binding:"omitempty,emailaddr"`
	Phone      string   `json:"phone" form:"phone" binding:"omitempty,phone"`
	CheckIn    string   `json:"checkIn" form:"checkIn" binding:"omitempty,isodate"`
	CheckOut   string   `json:"checkOut" form:"checkOut" binding:"omitempty,isodate"`
	Guests     FlexInt  `json:"guests" form:"guests" binding:"omitempty,min=1"`
	Children   FlexInt  `json:"children" form:"children" binding:"omitempty,min=0"`
	Rooms      FlexInt  `json:"rooms" form:"rooms" binding:"omitempty,min=1"`
	AddOns     []string `json:"addOns" form:"addOns"`
	CardNumber string   `json:"cardNumber" form:"cardNumber" binding:"omitempty,cardnumber"`
	ExpiryDate string   `json:"expiryDate" form:"expiryDate" binding:"omitempty,expiry"`
	CVV        string   `json:"cvv" form:"cvv" binding:"omitempty,cvv"`
	Requests   string   `json:"specialRequests" form:"specialRequests"`
}

// QuoteRequest asks for a price without booking
type QuoteRequest struct {
	PackageID FlexInt  `json:"packageId"`
	CheckIn   string   `json:"checkIn" binding:"required,isodate"`
	CheckOut  string   `json:"checkOut" binding:"required,isodate"`
	Guests    FlexInt  `json:"guests" binding:"required,min=1"`
	Children  FlexInt  `json:"children" binding:"omitempty,min=0"`
	Rooms     FlexInt  `json:"rooms" binding:"omitempty,min=1"`
	AddOns    []string `json:"addOns"`
}

// PriceQuote is the booking summary shown next to the form
type PriceQuote struct {
	PricePerNight  int     `json:"pricePerNight"`
	Nights         int     `json:"nights"`
	Rooms          int     `json:"rooms"`
	WeightedGuests float64 `json:"weightedGuests"`
	BasePrice      int     `json:"basePrice"`
	ExtraGuestFee  int     `json:"extraGuestFee"`
	AddOns         int     `json:"addOns"`
	Subtotal       int     `json:"subtotal"`
	ServiceFee     int     `json:"serviceFee"`
	Taxes          int     `json:"taxes"`
	Total          int     `json:"total"`
}

// BookingResponse is returned once a booking is confirmed
type BookingResponse struct {
	Success   bool        `json:"success"`
	BookingID string      `json:"bookingId"`
	Message   string      `json:"message"`
	Quote     *PriceQuote `json:"quote,omitempty"`
}

// AddWishlistRequest adds a catalog package to the wishlist
type AddWishlistRequest struct {
	PackageID FlexInt `json:"packageId" binding:"required"`
}
