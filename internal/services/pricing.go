package services

import (
	"math"
	"strings"
	"time"

	"marhaba_app_echo/internal/models"
)

// BookingRequest is the tourist's booking form
type BookingRequest struct {
	CheckIn    string             `json:"checkIn"`
	CheckOut   string             `json:"checkOut"`
	RoomTypeID string             `json:"roomTypeId"`
	Companions []models.Companion `json:"companions"`
}

// QuoteResult is the priced and validated booking form
type QuoteResult struct {
	Nights    int              `json:"nights"`
	Total     float64          `json:"total"`
	Room      *models.RoomType `json:"roomType,omitempty"`
	Errors    FieldErrors      `json:"errors,omitempty"`
	CanSubmit bool             `json:"canSubmit"`
}

// Nights returns the number of nights between two YYYY-MM-DD dates, rounded
// up. It is 0 when either date is missing or invalid, or when checkOut is not
// after checkIn.
func Nights(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	start, err := time.Parse(models.DateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(models.DateLayout, checkOut)
	if err != nil {
		return 0
	}
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// SelectedRoom resolves the room choice of a hotel booking. An empty id picks
// the first room, mirroring the form's preselection.
func SelectedRoom(offer models.Offer, roomID string) *models.RoomType {
	if offer.Category != models.OfferCategoryHotel {
		return nil
	}
	if roomID == "" {
		if len(offer.RoomTypes) == 0 {
			return nil
		}
		r := offer.RoomTypes[0]
		return &r
	}
	if r, ok := offer.RoomByID(roomID); ok {
		return &r
	}
	return nil
}

// ValidateBooking checks the booking form against the offer. The dates error
// keeps the last failing rule.
func ValidateBooking(offer models.Offer, req BookingRequest) FieldErrors {
	errs := FieldErrors{}
	if offer.Category != models.OfferCategoryOrganizedTrip {
		if req.CheckIn == "" {
			errs["dates"] = "checkInRequired"
		}
		if req.CheckOut == "" {
			errs["dates"] = "checkOutRequired"
		}
		if Nights(req.CheckIn, req.CheckOut) <= 0 {
			errs["dates"] = "checkOutAfterIn"
		}
	}
	if offer.Category == models.OfferCategoryHotel && SelectedRoom(offer, req.RoomTypeID) == nil {
		errs["room"] = "selectRoomType"
	}
	for _, c := range req.Companions {
		if strings.TrimSpace(c.Name) == "" {
			errs["companions"] = "companionNameRequired"
			break
		}
	}
	return errs
}

// TotalPrice applies the category pricing rule. Hotels charge the room price
// per night regardless of companions.
func TotalPrice(offer models.Offer, nights, companions int, room *models.RoomType) float64 {
	people := float64(companions + 1)
	switch offer.Category {
	case models.OfferCategoryOrganizedTrip:
		return offer.PriceDZD * people
	case models.OfferCategoryHotel:
		if room != nil && nights > 0 {
			return room.PriceDZD * float64(nights)
		}
		return 0
	case models.OfferCategoryGuesthouse:
		if nights > 0 {
			return offer.PriceDZD * people * float64(nights)
		}
		return 0
	default:
		return 0
	}
}

// Quote validates and prices a booking form. Any validation failure forces the
// total to 0 and blocks submission.
func Quote(offer models.Offer, req BookingRequest) QuoteResult {
	nights := 0
	// trips have fixed dates, stay dates sent for them are ignored
	if offer.Category != models.OfferCategoryOrganizedTrip {
		nights = Nights(req.CheckIn, req.CheckOut)
	}
	room := SelectedRoom(offer, req.RoomTypeID)
	errs := ValidateBooking(offer, req)

	total := 0.0
	if len(errs) == 0 {
		total = TotalPrice(offer, nights, len(req.Companions), room)
	}

	result := QuoteResult{
		Nights:    nights,
		Total:     total,
		Room:      room,
		CanSubmit: len(errs) == 0 && total > 0,
	}
	if len(errs) > 0 {
		result.Errors = errs
	}
	return result
}
