package services

import (
	"math"
	"strings"
	"time"

	"github.com/vishalpatil-45/Adventour/dto"
)

// DefaultPricePerNight is used when a booking does not name a package
const DefaultPricePerNight = 2700

const (
	guestsPerRoom    = 2
	childWeight      = 0.5
	extraGuestRate   = 0.25
	serviceFeeRate   = 0.10
	taxRate          = 0.15
	breakfastPerRoom = 500
)

// flat add-ons, charged once per booking
var flatAddOns = map[string]int{
	"airport-transfer": 1500,
	"spa":              2500,
	"travel-insurance": 999,
}

// QuoteInput is everything the price depends on
type QuoteInput struct {
	PricePerNight int
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Rooms         int
	AddOns        []string
}

// CountNights returns the whole nights between two dates, rounding a partial
// day up. It is never below one.
func CountNights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// CalculateQuote prices a stay. Every room sleeps two weighted guests, a child
// counts as half a guest, and each guest over that pays a quarter of the
// nightly price.
func CalculateQuote(in QuoteInput) (*dto.PriceQuote, error) {
	price := in.PricePerNight
	if price <= 0 {
		price = DefaultPricePerNight
	}
	rooms := in.Rooms
	if rooms < 1 {
		rooms = 1
	}
	adults := in.Adults
	if adults < 1 {
		adults = 1
	}
	children := in.Children
	if children < 0 {
		children = 0
	}

	nights := CountNights(in.CheckIn, in.CheckOut)
	weighted := float64(adults) + childWeight*float64(children)

	base := price * nights * rooms

	extraGuests := math.Max(0, weighted-float64(guestsPerRoom*rooms))
	extraFee := int(math.Round(extraGuests * float64(price) * extraGuestRate * float64(nights)))

	addOns := 0
	seen := make(map[string]bool, len(in.AddOns))
	for _, raw := range in.AddOns {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if name == "breakfast" {
			addOns += breakfastPerRoom * nights * rooms
			continue
		}
		amount, ok := flatAddOns[name]
		if !ok {
			return nil, invalidf("Unknown add-on: %s", raw)
		}
		addOns += amount
	}

	subtotal := base + extraFee + addOns
	fee := int(math.Round(float64(subtotal) * serviceFeeRate))
	taxes := int(math.Round(float64(subtotal) * taxRate))

	return &dto.PriceQuote{
		PricePerNight:  price,
		Nights:         nights,
		Rooms:          rooms,
		WeightedGuests: weighted,
		BasePrice:      base,
		ExtraGuestFee:  extraFee,
		AddOns:         addOns,
		Subtotal:       subtotal,
		ServiceFee:     fee,
		Taxes:          taxes,
		Total:          subtotal + fee + taxes,
	}, nil
}
